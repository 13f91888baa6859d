package stream

import (
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/packed"
)

// CompressedFileWriter streams values into the digit layout of packed.CompressedArray.
//
// In extended mode every value above maxValue is stored as the escape code.
type CompressedFileWriter struct {
	chunkWriter
	digits *packed.CompressedLayout
}

var _ Writer = (*CompressedFileWriter)(nil)

// NewCompressedFileWriter creates a writer that takes ownership of f.
// f is closed when construction fails.
func NewCompressedFileWriter(f fs.File, maxValue int, extended bool, opts ...Option) (*CompressedFileWriter, error) {
	cfg, err := newStreamConfig(opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	layout, err := packed.NewCompressedLayout(maxValue, extended, cfg.engine)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &CompressedFileWriter{chunkWriter: newChunkWriter(f, layout), digits: layout}, nil
}

// CreateCompressedFile creates or truncates path and returns a writer for it.
func CreateCompressedFile(fsys fs.FS, path string, maxValue int, extended bool, opts ...Option) (*CompressedFileWriter, error) {
	f, err := fsys.Create(path)
	if err != nil {
		return nil, err
	}

	return NewCompressedFileWriter(f, maxValue, extended, opts...)
}

// MaxValue returns the largest value stored as itself.
func (w *CompressedFileWriter) MaxValue() int {
	return w.digits.MaxValue()
}

// Extended reports whether values above MaxValue are stored as the escape code.
func (w *CompressedFileWriter) Extended() bool {
	return w.digits.Extended()
}

// CompressedFileReader reads files written by CompressedFileWriter or
// CompressedArray.DumpPacked.
type CompressedFileReader struct {
	*chunkReader
	digits *packed.CompressedLayout
}

var (
	_ ForwardStream  = (*CompressedFileReader)(nil)
	_ SeekableStream = (*CompressedFileReader)(nil)
)

// NewCompressedFileReader creates a reader that takes ownership of f.
//
// elementCount is the logical number of values, or UnknownLength. f is closed when
// construction fails.
func NewCompressedFileReader(f fs.File, maxValue int, extended bool, elementCount int64, opts ...Option) (*CompressedFileReader, error) {
	cfg, err := newStreamConfig(opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	layout, err := packed.NewCompressedLayout(maxValue, extended, cfg.engine)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	cr, err := newChunkReader(f, layout, elementCount, cfg.seekable)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &CompressedFileReader{chunkReader: cr, digits: layout}, nil
}

// OpenCompressedFile opens path and returns a reader for it.
func OpenCompressedFile(fsys fs.FS, path string, maxValue int, extended bool, elementCount int64, opts ...Option) (*CompressedFileReader, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}

	return NewCompressedFileReader(f, maxValue, extended, elementCount, opts...)
}

// MaxValue returns the largest value stored as itself.
func (r *CompressedFileReader) MaxValue() int {
	return r.digits.MaxValue()
}

// Extended reports whether the file reserves an escape code.
func (r *CompressedFileReader) Extended() bool {
	return r.digits.Extended()
}
