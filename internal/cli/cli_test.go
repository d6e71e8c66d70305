package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	config, shouldExit, err := Parse([]string{"grid.hcl"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "grid.hcl", config.ManifestPath)
	assert.Equal(t, "prog", config.Program)
	assert.Equal(t, 0, config.Width)
	assert.Equal(t, "auto", config.Color)
	assert.True(t, config.CheckNames)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "warn", config.LogLevel)
}

func TestParse_ManifestFlagWinsOverPositional(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	config, shouldExit, err := Parse([]string{"-manifest", "a.hcl", "b.hcl"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "a.hcl", config.ManifestPath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	config, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{"bad color", []string{"-color", "sometimes", "grid.hcl"}},
		{"bad log format", []string{"-log-format", "xml", "grid.hcl"}},
		{"bad log level", []string{"-log-level", "loud", "grid.hcl"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			_, _, err := Parse(tc.args, out)

			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
