package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/internal/pool"
	"github.com/arloliu/seqpack/packed"
)

// readWindowBytes bounds the raw bytes read from the file per window fill.
const readWindowBytes = 32 * 1024

// chunkReader unpacks a window of consecutive chunks at a time.
type chunkReader struct {
	f        fs.File
	layout   packed.Layout
	engine   endian.EndianEngine
	length   int64
	pos      int64
	seekable bool
	closed   bool

	raw        []byte
	rawCleanup func()
	words      []uint64
	values     []byte

	// values[:winLen] hold elements [winStart, winStart+winLen).
	winStart int64
	winLen   int

	// fileOffset is the byte offset of the file cursor, or -1 when unknown.
	fileOffset int64
	perChunk   int
	chunkBytes int
	windowSize int
}

func newChunkReader(f fs.File, layout packed.Layout, elementCount int64, seekable bool) (*chunkReader, error) {
	if elementCount == UnknownLength {
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat packed file: %w", err)
		}
		elementCount = layout.ElementsIn(info.Size())
	}

	if elementCount < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", errs.ErrIndexOutOfRange, elementCount)
	}

	// Rejects counts whose byte length overflows before any offset is computed.
	if _, err := layout.ByteLength(elementCount); err != nil {
		return nil, err
	}

	cb := layout.ChunkBytes()
	windowChunks := max(readWindowBytes/cb, 1)
	raw, cleanup := pool.GetByteSlice(windowChunks * cb)

	return &chunkReader{
		f:          f,
		layout:     layout,
		engine:     layout.ByteOrder(),
		length:     elementCount,
		seekable:   seekable,
		raw:        raw,
		rawCleanup: cleanup,
		words:      make([]uint64, layout.WordsPerChunk()),
		values:     make([]byte, windowChunks*layout.ValuesPerChunk()),
		fileOffset: 0,
		perChunk:   layout.ValuesPerChunk(),
		chunkBytes: cb,
		windowSize: windowChunks,
	}, nil
}

// Layout returns the chunk layout read by the reader.
func (r *chunkReader) Layout() packed.Layout {
	return r.layout
}

// Len returns the logical number of values in the stream.
func (r *chunkReader) Len() int64 {
	return r.length
}

// Position returns the index of the next value to be read.
func (r *chunkReader) Position() int64 {
	return r.pos
}

// Seekable reports whether the reader was opened in random access mode.
func (r *chunkReader) Seekable() bool {
	return r.seekable
}

func (r *chunkReader) windowHas(pos int64) bool {
	return pos >= r.winStart && pos < r.winStart+int64(r.winLen)
}

// fill loads the window starting at the chunk that holds pos.
func (r *chunkReader) fill(pos int64) error {
	r.winLen = 0

	chunk := pos / int64(r.perChunk)
	total := packed.ChunkCount(r.length, r.perChunk)
	nchunks := int(min(int64(r.windowSize), total-chunk))

	offset, err := r.layout.ChunkOffset(chunk)
	if err != nil {
		return err
	}

	if r.fileOffset != offset {
		if _, err := r.f.Seek(offset, io.SeekStart); err != nil {
			r.fileOffset = -1
			return fmt.Errorf("seek packed file to chunk %d: %w", chunk, err)
		}
		r.fileOffset = offset
	}

	n, err := io.ReadAtLeast(r.f, r.raw[:nchunks*r.chunkBytes], r.chunkBytes)
	if err != nil {
		r.fileOffset = -1
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: chunk %d at byte %d: %w", errs.ErrTruncated, chunk, offset, io.ErrUnexpectedEOF)
		}

		return fmt.Errorf("read packed chunk %d: %w", chunk, err)
	}

	complete := n / r.chunkBytes
	if n%r.chunkBytes == 0 {
		r.fileOffset = offset + int64(n)
	} else {
		r.fileOffset = -1
	}

	for c := range complete {
		endian.ReadWords(r.engine, r.words, r.raw[c*r.chunkBytes:(c+1)*r.chunkBytes])
		r.layout.UnpackChunk(r.values[c*r.perChunk:(c+1)*r.perChunk], r.words)
	}

	r.winStart = chunk * int64(r.perChunk)
	r.winLen = int(min(int64(complete*r.perChunk), r.length-r.winStart))

	return nil
}

// Read fills p with the next values. It returns 0, io.EOF after the last value.
func (r *chunkReader) Read(p []byte) (int, error) {
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
		if !r.windowHas(r.pos) {
			if err := r.fill(r.pos); err != nil {
				return n, err
			}
		}

		off := int(r.pos - r.winStart)
		cnt := copy(p[n:], r.values[off:r.winLen])
		n += cnt
		r.pos += int64(cnt)
	}

	return n, nil
}

// ReadByte returns the next value, or io.EOF after the last one.
func (r *chunkReader) ReadByte() (byte, error) {
	if r.closed {
		return 0, errs.ErrClosed
	}
	if r.pos >= r.length {
		return 0, io.EOF
	}

	if !r.windowHas(r.pos) {
		if err := r.fill(r.pos); err != nil {
			return 0, err
		}
	}

	v := r.values[r.pos-r.winStart]
	r.pos++

	return v, nil
}

// Seek positions the reader at an element index and loads the chunk holding it.
//
// The resulting position must lie within [0, Len()); otherwise errs.ErrIndexOutOfRange
// is returned and the position is unchanged. Readers opened without WithSeekable
// return errs.ErrNotSeekable.
func (r *chunkReader) Seek(offset int64, whence int) (int64, error) {
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

	if !r.windowHas(target) {
		if err := r.fill(target); err != nil {
			return r.pos, err
		}
	}
	r.pos = target

	return target, nil
}

// Close releases the file. Calling Close again returns errs.ErrClosed.
func (r *chunkReader) Close() error {
	if r.closed {
		return errs.ErrClosed
	}
	r.closed = true

	r.rawCleanup()
	r.raw = nil

	if err := r.f.Close(); err != nil {
		return fmt.Errorf("close packed file: %w", err)
	}

	return nil
}
