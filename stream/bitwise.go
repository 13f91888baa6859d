package stream

import (
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/packed"
)

// BitwiseFileWriter streams values in [0, rng) into the bit-plane layout of
// packed.BitwiseArray.
type BitwiseFileWriter struct {
	chunkWriter
	bits int
}

var _ Writer = (*BitwiseFileWriter)(nil)

// NewBitwiseFileWriter creates a writer that takes ownership of f.
// f is closed when construction fails.
func NewBitwiseFileWriter(f fs.File, rng int, opts ...Option) (*BitwiseFileWriter, error) {
	cfg, err := newStreamConfig(opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	layout, err := packed.NewBitwiseLayout(rng, cfg.engine)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &BitwiseFileWriter{
		chunkWriter: newChunkWriter(f, layout),
		bits:        layout.Bits(),
	}, nil
}

// CreateBitwiseFile creates or truncates path and returns a writer for it.
func CreateBitwiseFile(fsys fs.FS, path string, rng int, opts ...Option) (*BitwiseFileWriter, error) {
	f, err := fsys.Create(path)
	if err != nil {
		return nil, err
	}

	return NewBitwiseFileWriter(f, rng, opts...)
}

// Bits returns the number of bits per value.
func (w *BitwiseFileWriter) Bits() int {
	return w.bits
}

// BitwiseFileReader reads files written by BitwiseFileWriter or BitwiseArray.DumpPacked.
type BitwiseFileReader struct {
	*chunkReader
	bits int
}

var (
	_ ForwardStream  = (*BitwiseFileReader)(nil)
	_ SeekableStream = (*BitwiseFileReader)(nil)
)

// NewBitwiseFileReader creates a reader that takes ownership of f.
//
// elementCount is the logical number of values, or UnknownLength. f is closed when
// construction fails.
func NewBitwiseFileReader(f fs.File, rng int, elementCount int64, opts ...Option) (*BitwiseFileReader, error) {
	cfg, err := newStreamConfig(opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	layout, err := packed.NewBitwiseLayout(rng, cfg.engine)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	cr, err := newChunkReader(f, layout, elementCount, cfg.seekable)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &BitwiseFileReader{chunkReader: cr, bits: layout.Bits()}, nil
}

// OpenBitwiseFile opens path and returns a reader for it.
func OpenBitwiseFile(fsys fs.FS, path string, rng int, elementCount int64, opts ...Option) (*BitwiseFileReader, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}

	return NewBitwiseFileReader(f, rng, elementCount, opts...)
}

// Bits returns the number of bits per value.
func (r *BitwiseFileReader) Bits() int {
	return r.bits
}
