package stream

import (
	"fmt"
	"io"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/internal/options"
)

// UnknownLength makes a reader derive its element count from the file size.
//
// The derived count includes the padding slots of the final chunk, so it only fits
// files whose logical length is a multiple of the chunk size or whose consumer ignores
// trailing zero values.
const UnknownLength int64 = -1

// ForwardStream reads packed values sequentially.
//
// Read returns 0, io.EOF once Len values were consumed. ReadByte returns io.EOF at the
// same point.
type ForwardStream interface {
	io.Reader
	io.ByteReader
	io.Closer

	// Len returns the logical number of values in the stream.
	Len() int64

	// Position returns the index of the next value to be read.
	Position() int64
}

// SeekableStream is a ForwardStream that can be positioned by element index.
//
// Seek targets outside [0, Len()) fail with errs.ErrIndexOutOfRange.
type SeekableStream interface {
	ForwardStream
	io.Seeker
}

// Writer accepts raw values and stores them packed.
type Writer interface {
	io.Writer
	io.Closer

	// Flush writes every complete chunk received so far and syncs the file.
	Flush() error

	// ValuesWritten returns the number of values accepted so far.
	ValuesWritten() int64
}

type streamConfig struct {
	engine   endian.EndianEngine
	seekable bool
}

// Option configures stream writers and readers.
type Option = options.Option[*streamConfig]

// WithByteOrder sets the byte order of serialized words. Little-endian is the default.
// Raw streams ignore it.
func WithByteOrder(engine endian.EndianEngine) Option {
	return options.NoError(func(c *streamConfig) {
		if engine != nil {
			c.engine = engine
		}
	})
}

// WithBigEndian serializes words in big-endian byte order.
func WithBigEndian() Option {
	return WithByteOrder(endian.GetBigEndianEngine())
}

// WithSeekable opens readers in random access mode. Writers ignore it.
func WithSeekable() Option {
	return options.NoError(func(c *streamConfig) {
		c.seekable = true
	})
}

func newStreamConfig(opts []Option) (*streamConfig, error) {
	cfg := &streamConfig{engine: endian.GetLittleEndianEngine()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// seekTarget resolves an io.Seeker offset against the current position and length.
func seekTarget(pos, length, offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = pos + offset
	case io.SeekEnd:
		target = length + offset
	default:
		return 0, fmt.Errorf("%w: invalid whence %d", errs.ErrIndexOutOfRange, whence)
	}

	if target < 0 || target >= length {
		return 0, fmt.Errorf("%w: seek to %d not within [0, %d)", errs.ErrIndexOutOfRange, target, length)
	}

	return target, nil
}
