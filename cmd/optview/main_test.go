package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_InvalidManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL string with a syntax error that is guaranteed to fail during
	// the loading phase inside app.NewApp().
	invalidHCL := `
		option "flag" "verbose" {
			names = [
		// Missing closing bracket here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-width", "80", filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error for a malformed manifest")
	require.Contains(t, runErr.Error(), "failed to load manifest", "The error message should indicate the loading phase failed.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_RendersHelp(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	manifest := `
option "flag" "verbose" {
  names    = ["-v", "--verbose"]
  synopsis = "Enable verbose output."
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte(manifest), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-width", "80", "-color", "never", "-program", "demo", filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	err = run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	rendered := out.String()
	require.Contains(t, rendered, "Usage")
	require.Contains(t, rendered, "demo")
	require.Contains(t, rendered, "-v, --verbose")
	require.Contains(t, rendered, "Enable verbose output.")
}
