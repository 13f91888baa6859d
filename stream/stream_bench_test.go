package stream

import (
	"io"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/arloliu/seqpack/fs"
)

const benchValues = 1 << 20

func BenchmarkBitwiseFileWriter(b *testing.B) {
	values := randomValues(rand.New(rand.NewSource(1)), benchValues, 5)
	fsys := fs.NewReal()
	path := filepath.Join(b.TempDir(), "bench.bw")

	b.SetBytes(benchValues)
	for b.Loop() {
		w, err := CreateBitwiseFile(fsys, path, 5)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := w.Write(values); err != nil {
			b.Fatal(err)
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompressedFileReader(b *testing.B) {
	values := randomValues(rand.New(rand.NewSource(1)), benchValues, 64)
	fsys := fs.NewReal()
	path := filepath.Join(b.TempDir(), "bench.cq")

	w, err := CreateCompressedFile(fsys, path, 63, false)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := w.Write(values); err != nil {
		b.Fatal(err)
	}
	if err := w.Close(); err != nil {
		b.Fatal(err)
	}

	buf := make([]byte, 4096)

	b.SetBytes(benchValues)
	for b.Loop() {
		r, err := OpenCompressedFile(fsys, path, 63, false, benchValues)
		if err != nil {
			b.Fatal(err)
		}
		for {
			_, err := r.Read(buf)
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
		}
		_ = r.Close()
	}
}
