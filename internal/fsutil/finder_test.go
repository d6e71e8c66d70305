package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0700))
	for _, name := range []string{"b.hcl", "a.hcl", "c.txt", "nested/d.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	want := []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(sub, "d.hcl"),
	}
	assert.Equal(t, want, files)

	t.Run("missing root", func(t *testing.T) {
		_, err := FindFilesByExtension(filepath.Join(dir, "nope"), ".hcl")
		assert.Error(t, err)
	})
}
