package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/internal/pool"
)

// RawFileWriter stores one byte per value without packing or padding.
type RawFileWriter struct {
	fileSink
	written int64
}

var _ Writer = (*RawFileWriter)(nil)

// NewRawFileWriter creates a writer that takes ownership of f.
func NewRawFileWriter(f fs.File, opts ...Option) (*RawFileWriter, error) {
	if _, err := newStreamConfig(opts); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &RawFileWriter{fileSink: newFileSink(f)}, nil
}

// CreateRawFile creates or truncates path and returns a writer for it.
func CreateRawFile(fsys fs.FS, path string, opts ...Option) (*RawFileWriter, error) {
	f, err := fsys.Create(path)
	if err != nil {
		return nil, err
	}

	return NewRawFileWriter(f, opts...)
}

// Write stages the values of p.
func (w *RawFileWriter) Write(p []byte) (int, error) {
	if err := w.usable(); err != nil {
		return 0, err
	}

	w.staging.B = append(w.staging.B, p...)
	if err := w.drainIfFull(); err != nil {
		return 0, err
	}
	w.written += int64(len(p))

	return len(p), nil
}

// Flush writes the staged values and syncs the file.
func (w *RawFileWriter) Flush() error {
	if err := w.usable(); err != nil {
		return err
	}

	return w.sync()
}

// Close flushes and closes the file. Calling Close again returns errs.ErrClosed.
func (w *RawFileWriter) Close() error {
	return w.close()
}

// ValuesWritten returns the number of values accepted so far.
func (w *RawFileWriter) ValuesWritten() int64 {
	return w.written
}

// RawFileReader reads files holding one byte per value.
type RawFileReader struct {
	f        fs.File
	length   int64
	pos      int64
	seekable bool
	closed   bool

	buf      []byte
	cleanup  func()
	bufStart int64
	bufLen   int

	// fileOffset is the byte offset of the file cursor, or -1 when unknown.
	fileOffset int64
}

var (
	_ ForwardStream  = (*RawFileReader)(nil)
	_ SeekableStream = (*RawFileReader)(nil)
)

// NewRawFileReader creates a reader that takes ownership of f.
//
// elementCount is the logical number of values, or UnknownLength for the file size.
func NewRawFileReader(f fs.File, elementCount int64, opts ...Option) (*RawFileReader, error) {
	cfg, err := newStreamConfig(opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if elementCount == UnknownLength {
		info, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("stat raw file: %w", err)
		}
		elementCount = info.Size()
	}

	if elementCount < 0 {
		_ = f.Close()
		return nil, fmt.Errorf("%w: negative element count %d", errs.ErrIndexOutOfRange, elementCount)
	}

	buf, cleanup := pool.GetByteSlice(readWindowBytes)

	return &RawFileReader{
		f:        f,
		length:   elementCount,
		seekable: cfg.seekable,
		buf:      buf,
		cleanup:  cleanup,
	}, nil
}

// OpenRawFile opens path and returns a reader for it.
func OpenRawFile(fsys fs.FS, path string, elementCount int64, opts ...Option) (*RawFileReader, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}

	return NewRawFileReader(f, elementCount, opts...)
}

// Len returns the logical number of values in the stream.
func (r *RawFileReader) Len() int64 {
	return r.length
}

// Position returns the index of the next value to be read.
func (r *RawFileReader) Position() int64 {
	return r.pos
}

func (r *RawFileReader) bufHas(pos int64) bool {
	return pos >= r.bufStart && pos < r.bufStart+int64(r.bufLen)
}

func (r *RawFileReader) fill(pos int64) error {
	r.bufLen = 0

	if r.fileOffset != pos {
		if _, err := r.f.Seek(pos, io.SeekStart); err != nil {
			r.fileOffset = -1
			return fmt.Errorf("seek raw file to %d: %w", pos, err)
		}
		r.fileOffset = pos
	}

	want := int(min(int64(len(r.buf)), r.length-pos))

	n, err := io.ReadAtLeast(r.f, r.buf[:want], 1)
	if err != nil {
		r.fileOffset = -1
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: value %d: %w", errs.ErrTruncated, pos, io.ErrUnexpectedEOF)
		}

		return fmt.Errorf("read raw file: %w", err)
	}

	r.fileOffset = pos + int64(n)
	r.bufStart = pos
	r.bufLen = n

	return nil
}

// Read fills p with the next values. It returns 0, io.EOF after the last value.
func (r *RawFileReader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, errs.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if r.pos >= r.length {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) && r.pos < r.length {
		if !r.bufHas(r.pos) {
			if err := r.fill(r.pos); err != nil {
				return n, err
			}
		}

		off := int(r.pos - r.bufStart)
		cnt := copy(p[n:], r.buf[off:r.bufLen])
		n += cnt
		r.pos += int64(cnt)
	}

	return n, nil
}

// ReadByte returns the next value, or io.EOF after the last one.
func (r *RawFileReader) ReadByte() (byte, error) {
	if r.closed {
		return 0, errs.ErrClosed
	}
	if r.pos >= r.length {
		return 0, io.EOF
	}

	if !r.bufHas(r.pos) {
		if err := r.fill(r.pos); err != nil {
			return 0, err
		}
	}

	v := r.buf[r.pos-r.bufStart]
	r.pos++

	return v, nil
}

// Seek positions the reader at an element index, with the same contract as
// BitwiseFileReader.Seek.
func (r *RawFileReader) Seek(offset int64, whence int) (int64, error) {
	if r.closed {
		return 0, errs.ErrClosed
	}
	if !r.seekable {
		return r.pos, errs.ErrNotSeekable
	}

	target, err := seekTarget(r.pos, r.length, offset, whence)
	if err != nil {
		return r.pos, err
	}

	if !r.bufHas(target) {
		if err := r.fill(target); err != nil {
			return r.pos, err
		}
	}
	r.pos = target

	return target, nil
}

// Close releases the file. Calling Close again returns errs.ErrClosed.
func (r *RawFileReader) Close() error {
	if r.closed {
		return errs.ErrClosed
	}
	r.closed = true

	r.cleanup()
	r.buf = nil

	if err := r.f.Close(); err != nil {
		return fmt.Errorf("close raw file: %w", err)
	}

	return nil
}
