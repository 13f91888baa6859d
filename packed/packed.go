package packed

import (
	"io"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/internal/options"
)

// PackedArray is a fixed-length, long-indexed container of small-range byte values.
//
// Indices are validated against [0, Len()); violations return errs.ErrIndexOutOfRange.
// Values outside the array's domain return errs.ErrValueOutOfRange and leave the array
// unchanged. Range operations may span any number of chunks.
type PackedArray interface {
	// Len returns the number of elements.
	Len() int64

	// Get returns the element at index.
	Get(index int64) (byte, error)

	// Set stores v at index.
	Set(index int64, v byte) error

	// GetRange copies len(dst) elements starting at start into dst.
	GetRange(dst []byte, start int64) error

	// SetRange stores src at elements [start, start+len(src)).
	SetRange(start int64, src []byte) error
}

// Dumper is a PackedArray that can serialize its packed representation.
//
// The bytes written by DumpPacked for the first count elements are identical to the file
// a stream writer of the same layout produces for those count values.
type Dumper interface {
	PackedArray

	// Layout returns the chunk layout of the array.
	Layout() Layout

	// DumpPacked writes the chunks holding the first count elements to w.
	DumpPacked(w io.Writer, count int64) error
}

type arrayConfig struct {
	engine endian.EndianEngine
}

// ArrayOption configures BitwiseArray and CompressedArray construction.
type ArrayOption = options.Option[*arrayConfig]

// WithByteOrder sets the byte order used by DumpPacked and LoadPacked.
// Little-endian is the default.
func WithByteOrder(engine endian.EndianEngine) ArrayOption {
	return options.NoError(func(c *arrayConfig) {
		c.engine = engine
	})
}

// WithBigEndian serializes words in big-endian byte order.
func WithBigEndian() ArrayOption {
	return WithByteOrder(endian.GetBigEndianEngine())
}

func newArrayConfig(opts []ArrayOption) (*arrayConfig, error) {
	cfg := &arrayConfig{engine: endian.GetLittleEndianEngine()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
