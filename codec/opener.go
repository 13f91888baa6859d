package codec

import (
	"fmt"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/packed"
	"github.com/arloliu/seqpack/stream"
)

// Opener opens the files of one data kind with the codec selected for it.
type Opener interface {
	// Encoding returns the encoding the opener reads and writes.
	Encoding() format.EncodingType

	// Open returns a forward reader over path. elementCount may be stream.UnknownLength.
	Open(path string, elementCount int64) (stream.ForwardStream, error)

	// OpenRandomAccess returns a seekable reader over path.
	OpenRandomAccess(path string, elementCount int64) (stream.SeekableStream, error)

	// Create creates or truncates path and returns the matching writer.
	Create(path string) (stream.Writer, error)

	// ByteLength returns the size of a file holding n values.
	ByteLength(n int64) (int64, error)
}

var (
	_ Opener = (*RawOpener)(nil)
	_ Opener = (*BitwiseOpener)(nil)
	_ Opener = (*CompressedOpener)(nil)
)

type fileOpener struct {
	fsys   fs.FS
	engine endian.EndianEngine
}

func (o fileOpener) options(seekable bool) []stream.Option {
	opts := []stream.Option{stream.WithByteOrder(o.engine)}
	if seekable {
		opts = append(opts, stream.WithSeekable())
	}

	return opts
}

// RawOpener reads and writes one byte per value. Labels always use it.
type RawOpener struct {
	fileOpener
}

func (o *RawOpener) Encoding() format.EncodingType {
	return format.EncodingRaw
}

func (o *RawOpener) Open(path string, elementCount int64) (stream.ForwardStream, error) {
	s, err := stream.OpenRawFile(o.fsys, path, elementCount)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (o *RawOpener) OpenRandomAccess(path string, elementCount int64) (stream.SeekableStream, error) {
	s, err := stream.OpenRawFile(o.fsys, path, elementCount, stream.WithSeekable())
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (o *RawOpener) Create(path string) (stream.Writer, error) {
	s, err := stream.CreateRawFile(o.fsys, path)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// BitwiseOpener opens bit-plane packed files of values in [0, Range()).
type BitwiseOpener struct {
	fileOpener
	rng int
}

func (o *BitwiseOpener) Encoding() format.EncodingType {
	return format.EncodingBitwise
}

// Range returns the value range of the files.
func (o *BitwiseOpener) Range() int {
	return o.rng
}

func (o *BitwiseOpener) Open(path string, elementCount int64) (stream.ForwardStream, error) {
	s, err := stream.OpenBitwiseFile(o.fsys, path, o.rng, elementCount, o.options(false)...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (o *BitwiseOpener) OpenRandomAccess(path string, elementCount int64) (stream.SeekableStream, error) {
	s, err := stream.OpenBitwiseFile(o.fsys, path, o.rng, elementCount, o.options(true)...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (o *BitwiseOpener) Create(path string) (stream.Writer, error) {
	s, err := stream.CreateBitwiseFile(o.fsys, path, o.rng, o.options(false)...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// CompressedOpener opens digit packed files of values in [0, MaxValue()].
type CompressedOpener struct {
	fileOpener
	maxValue int
	extended bool
}

func (o *CompressedOpener) Encoding() format.EncodingType {
	return format.EncodingCompressed
}

// MaxValue returns the largest value stored as itself.
func (o *CompressedOpener) MaxValue() int {
	return o.maxValue
}

// Extended reports whether values above MaxValue are stored as an escape code.
func (o *CompressedOpener) Extended() bool {
	return o.extended
}

func (o *CompressedOpener) Open(path string, elementCount int64) (stream.ForwardStream, error) {
	s, err := stream.OpenCompressedFile(o.fsys, path, o.maxValue, o.extended, elementCount, o.options(false)...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (o *CompressedOpener) OpenRandomAccess(path string, elementCount int64) (stream.SeekableStream, error) {
	s, err := stream.OpenCompressedFile(o.fsys, path, o.maxValue, o.extended, elementCount, o.options(true)...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (o *CompressedOpener) Create(path string) (stream.Writer, error) {
	s, err := stream.CreateCompressedFile(o.fsys, path, o.maxValue, o.extended, o.options(false)...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (o *RawOpener) ByteLength(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative element count %d", errs.ErrIndexOutOfRange, n)
	}

	return n, nil
}

func (o *BitwiseOpener) ByteLength(n int64) (int64, error) {
	layout, err := packed.NewBitwiseLayout(o.rng, o.engine)
	if err != nil {
		return 0, err
	}

	return layout.ByteLength(n)
}

func (o *CompressedOpener) ByteLength(n int64) (int64, error) {
	layout, err := packed.NewCompressedLayout(o.maxValue, o.extended, o.engine)
	if err != nil {
		return 0, err
	}

	return layout.ByteLength(n)
}
