package fs

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReal_CreateOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reads.seq")
	fsys := NewReal()

	f, err := fsys.Create(path)
	require.NoError(t, err)
	_, err = f.Write([]byte{0, 1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(4), info.Size())

	f, err = fsys.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Seek(2, io.SeekStart)
	require.NoError(t, err)
	rest, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3}, rest)
}

func TestReal_OpenMissing(t *testing.T) {
	_, err := NewReal().Open(filepath.Join(t.TempDir(), "missing"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReal_WriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.qual")
	fsys := NewReal()

	require.NoError(t, fsys.WriteFileAtomic(path, bytes.NewReader([]byte("first"))))
	require.NoError(t, fsys.WriteFileAtomic(path, bytes.NewReader([]byte("second"))))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files may be left behind")
}

func TestReal_OpenFileAndRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels")
	fsys := NewReal()

	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, fsys.Remove(path))
	_, err = fsys.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}
