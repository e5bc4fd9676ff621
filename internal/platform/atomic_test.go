package platform

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	err := replaceFile(path, 0o600, func(w io.Writer) error {
		_, err := io.WriteString(w, "[]\n")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestReplaceFile_FailedWriteKeepsTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	errBoom := errors.New("boom")
	err := replaceFile(path, 0o644, func(w io.Writer) error {
		if _, err := io.WriteString(w, "partial"); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, f := range files {
		assert.False(t, strings.HasPrefix(f.Name(), TempFilePrefix), f.Name())
	}
	assert.Len(t, files, 1)
}

func TestReplaceFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.json")
	err := replaceFile(path, 0o644, func(io.Writer) error { return nil })
	assert.ErrorIs(t, err, os.ErrNotExist)
}
