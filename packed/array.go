package packed

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/internal/pool"
)

// loadWindowWords is the number of words read per call by LoadPacked.
const loadWindowWords = 4096

// chunkArray stores whole chunks of a layout in memory. It implements the array
// operations shared by BitwiseArray and CompressedArray.
type chunkArray struct {
	layout   Layout
	words    []uint64
	length   int64
	perChunk int
	wpc      int
}

func newChunkArray(count int64, layout Layout) (chunkArray, error) {
	if count < 0 {
		return chunkArray{}, fmt.Errorf("%w: negative element count %d", errs.ErrIndexOutOfRange, count)
	}

	size, err := layout.ByteLength(count)
	if err != nil {
		return chunkArray{}, err
	}

	nwords := size / endian.WordSize
	if uint64(nwords) > uint64(math.MaxInt) {
		return chunkArray{}, fmt.Errorf("%w: %d words do not fit in memory", errs.ErrLengthOverflow, nwords)
	}

	return chunkArray{
		layout:   layout,
		words:    make([]uint64, nwords),
		length:   count,
		perChunk: layout.ValuesPerChunk(),
		wpc:      layout.WordsPerChunk(),
	}, nil
}

func (a *chunkArray) chunkWords(chunk int64) []uint64 {
	base := chunk * int64(a.wpc)
	return a.words[base : base+int64(a.wpc)]
}

// Len returns the number of elements.
func (a *chunkArray) Len() int64 {
	return a.length
}

// Layout returns the chunk layout of the array.
func (a *chunkArray) Layout() Layout {
	return a.layout
}

// MemSize returns the size in bytes of the packed backing store.
func (a *chunkArray) MemSize() int64 {
	return int64(len(a.words)) * endian.WordSize
}

// Get returns the element at index.
func (a *chunkArray) Get(index int64) (byte, error) {
	if index < 0 || index >= a.length {
		return 0, fmt.Errorf("%w: index %d not within [0, %d)", errs.ErrIndexOutOfRange, index, a.length)
	}

	pc := int64(a.perChunk)

	return a.layout.Value(a.chunkWords(index/pc), int(index%pc)), nil
}

// Set stores v at index.
func (a *chunkArray) Set(index int64, v byte) error {
	if index < 0 || index >= a.length {
		return fmt.Errorf("%w: index %d not within [0, %d)", errs.ErrIndexOutOfRange, index, a.length)
	}

	code, ok := a.layout.Normalize(v)
	if !ok {
		return fmt.Errorf("%w: value %d at index %d, range %d", errs.ErrValueOutOfRange, v, index, a.layout.Range())
	}

	pc := int64(a.perChunk)
	a.layout.SetValue(a.chunkWords(index/pc), int(index%pc), code)

	return nil
}

// GetRange copies len(dst) elements starting at start into dst.
func (a *chunkArray) GetRange(dst []byte, start int64) error {
	if err := checkSpan(start, len(dst), a.length); err != nil {
		return err
	}

	var tmp [BitwiseChunkValues]byte

	pc := int64(a.perChunk)
	pos := start
	for n := 0; n < len(dst); {
		words := a.chunkWords(pos / pc)
		j := int(pos % pc)
		cnt := min(a.perChunk-j, len(dst)-n)

		if j == 0 && cnt == a.perChunk {
			a.layout.UnpackChunk(dst[n:n+cnt], words)
		} else {
			a.layout.UnpackChunk(tmp[:j+cnt], words)
			copy(dst[n:n+cnt], tmp[j:j+cnt])
		}

		n += cnt
		pos += int64(cnt)
	}

	return nil
}

// SetRange stores src at elements [start, start+len(src)).
// Nothing is stored when any value of src is outside the domain.
func (a *chunkArray) SetRange(start int64, src []byte) error {
	if err := checkSpan(start, len(src), a.length); err != nil {
		return err
	}

	for i, v := range src {
		if _, ok := a.layout.Normalize(v); !ok {
			return fmt.Errorf("%w: value %d at index %d, range %d",
				errs.ErrValueOutOfRange, v, start+int64(i), a.layout.Range())
		}
	}

	var tmp [BitwiseChunkValues]byte

	pc := int64(a.perChunk)
	pos := start
	for n := 0; n < len(src); {
		words := a.chunkWords(pos / pc)
		j := int(pos % pc)
		cnt := min(a.perChunk-j, len(src)-n)

		if j != 0 || cnt != a.perChunk {
			a.layout.UnpackChunk(tmp[:a.perChunk], words)
		}
		for i := range cnt {
			tmp[j+i], _ = a.layout.Normalize(src[n+i])
		}
		a.layout.PackChunk(words, tmp[:a.perChunk])

		n += cnt
		pos += int64(cnt)
	}

	return nil
}

// DumpPacked writes the chunks holding the first count elements to w, in chunk order.
//
// Slots of the final chunk at or beyond count are written as zero, so the output equals
// what a stream writer produces after receiving exactly count values.
func (a *chunkArray) DumpPacked(w io.Writer, count int64) error {
	if count < 0 || count > a.length {
		return fmt.Errorf("%w: dump count %d not within [0, %d]", errs.ErrIndexOutOfRange, count, a.length)
	}

	buf := pool.GetDumpBuffer()
	defer pool.PutDumpBuffer(buf)

	engine := a.layout.ByteOrder()
	pc := int64(a.perChunk)
	full := count / pc

	for c := range full {
		buf.B = endian.AppendWords(engine, buf.B, a.chunkWords(c))
		if buf.Len() >= pool.DumpBufferDefaultSize {
			if err := writeDump(w, buf); err != nil {
				return err
			}
		}
	}

	if rem := int(count - full*pc); rem > 0 {
		var tmp [BitwiseChunkValues]byte
		a.layout.UnpackChunk(tmp[:rem], a.chunkWords(full))

		scratch, cleanup := pool.GetWordSlice(a.wpc)
		defer cleanup()

		a.layout.PackChunk(scratch, tmp[:rem])
		buf.B = endian.AppendWords(engine, buf.B, scratch)
	}

	return writeDump(w, buf)
}

func writeDump(w io.Writer, buf *pool.ByteBuffer) error {
	if buf.Len() == 0 {
		return nil
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("dump packed chunks: %w", err)
	}
	buf.Reset()

	return nil
}

// LoadPacked reads the chunks holding the first count elements from r, replacing the
// current content of those chunks. It is the inverse of DumpPacked.
//
// The data is trusted: codes are not validated against the domain. Slots of the final
// chunk beyond count take the padding stored in r.
func (a *chunkArray) LoadPacked(r io.Reader, count int64) error {
	if count < 0 || count > a.length {
		return fmt.Errorf("%w: load count %d not within [0, %d]", errs.ErrIndexOutOfRange, count, a.length)
	}

	raw, cleanup := pool.GetByteSlice(loadWindowWords * endian.WordSize)
	defer cleanup()

	engine := a.layout.ByteOrder()
	nwords := ChunkCount(count, a.perChunk) * int64(a.wpc)

	for off := int64(0); off < nwords; {
		n := min(nwords-off, loadWindowWords)
		chunk := raw[:n*endian.WordSize]

		if _, err := io.ReadFull(r, chunk); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("%w: word %d of %d: %w", errs.ErrTruncated, off, nwords, io.ErrUnexpectedEOF)
			}

			return fmt.Errorf("load packed chunks: %w", err)
		}

		endian.ReadWords(engine, a.words[off:off+n], chunk)
		off += n
	}

	return nil
}
