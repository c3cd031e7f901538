package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{EnvCols, EnvRows, EnvCell, EnvSeed, EnvDelayMS} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Config{Cols: 256, Rows: 144, CellSize: 5}, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvCols, "32")
	t.Setenv(EnvRows, "24")
	t.Setenv(EnvCell, "12")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvDelayMS, "15")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Config{
		Cols:     32,
		Rows:     24,
		CellSize: 12,
		Seed:     42,
		Delay:    15 * time.Millisecond,
	}, cfg)
}

func TestLoad_Malformed(t *testing.T) {
	t.Setenv(EnvCols, "many")

	_, err := Load()
	require.ErrorIs(t, err, ErrBadValue)
}

func TestLoad_OutOfRange(t *testing.T) {
	cases := []struct{ key, val string }{
		{EnvCols, "0"},
		{EnvRows, "-3"},
		{EnvCell, "0"},
		{EnvDelayMS, "-1"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)

			_, err := Load()
			require.ErrorIs(t, err, ErrBadValue)
		})
	}
}
