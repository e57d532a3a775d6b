package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeWriteFileReplaces(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(p, []byte("old"), 0o644))
	require.NoError(t, SafeWriteFile(p, []byte("a,b\n1,2\n")))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestSafeWriteFileMissingDir(t *testing.T) {
	err := SafeWriteFile(filepath.Join(t.TempDir(), "nope", "out.csv"), []byte("x"))
	assert.Error(t, err)
}

func TestEnsureParent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "charts", "2024", "hist.png")
	require.NoError(t, EnsureParent(p))
	info, err := os.Stat(filepath.Dir(p))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.NoError(t, EnsureDir(""))
}
