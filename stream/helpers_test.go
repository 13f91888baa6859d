package stream

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/packed"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected failure")

// faultyFile fails writes or syncs on demand.
type faultyFile struct {
	fs.File
	failWrite bool
	failSync  bool
	closes    int
}

func (f *faultyFile) Write(p []byte) (int, error) {
	if f.failWrite {
		return 0, errInjected
	}

	return f.File.Write(p)
}

func (f *faultyFile) Sync() error {
	if f.failSync {
		return errInjected
	}

	return f.File.Sync()
}

func (f *faultyFile) Close() error {
	f.closes++
	return f.File.Close()
}

func tempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func createFile(t *testing.T, path string) fs.File {
	t.Helper()

	f, err := fs.NewReal().Create(path)
	require.NoError(t, err)

	return f
}

func randomValues(rng *rand.Rand, n, codes int) []byte {
	values := make([]byte, n)
	for i := range values {
		values[i] = byte(rng.Intn(codes))
	}

	return values
}

// writeInPieces writes values through w in random sized calls with random flushes.
func writeInPieces(t *testing.T, rng *rand.Rand, w Writer, values []byte) {
	t.Helper()

	for off := 0; off < len(values); {
		n := min(rng.Intn(150)+1, len(values)-off)
		written, err := w.Write(values[off : off+n])
		require.NoError(t, err)
		require.Equal(t, n, written)
		off += n

		if rng.Intn(4) == 0 {
			require.NoError(t, w.Flush())
		}
	}
}

// readAll drains r with reads of varying size.
func readAll(t *testing.T, rng *rand.Rand, r ForwardStream) []byte {
	t.Helper()

	var out []byte
	buf := make([]byte, 300)
	for {
		if rng.Intn(3) == 0 {
			v, err := r.ReadByte()
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)
			out = append(out, v)

			continue
		}

		n, err := r.Read(buf[:rng.Intn(len(buf))+1])
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}

	return out
}

func dump(t *testing.T, arr packed.Dumper) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, arr.DumpPacked(&buf, arr.Len()))

	return buf.Bytes()
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return data
}
