// Package hash computes xxHash64 digests of packed byte streams.
//
// Two packed files hold the same values in the same layout exactly when their digests
// match, which makes the digest a cheap way to compare a streamed file against an
// in-memory dump without holding both in memory.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Sum returns the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest consumes r and returns the xxHash64 of its content and the number of bytes read.
func Digest(r io.Reader) (uint64, int64, error) {
	d := xxhash.New()

	n, err := io.Copy(d, r)
	if err != nil {
		return 0, n, err
	}

	return d.Sum64(), n, nil
}

// Writer is an io.Writer that hashes everything written to it.
type Writer struct {
	d *xxhash.Digest
	n int64
}

// NewWriter returns a hashing writer.
func NewWriter() *Writer {
	return &Writer{d: xxhash.New()}
}

// Write implements io.Writer. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	n, _ := w.d.Write(p)
	w.n += int64(n)

	return n, nil
}

// Sum64 returns the digest of the bytes written so far.
func (w *Writer) Sum64() uint64 {
	return w.d.Sum64()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int64 {
	return w.n
}
