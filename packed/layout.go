package packed

import (
	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/format"
)

// Layout describes how values of one domain are packed into chunks of 64-bit words.
//
// Implementations are immutable. PackChunk and UnpackChunk operate on one chunk:
// words always has WordsPerChunk() elements and values at most ValuesPerChunk().
type Layout interface {
	// Encoding returns the encoding type implemented by the layout.
	Encoding() format.EncodingType

	// Range returns the number of distinct codes the layout stores, i.e. every stored
	// code c satisfies 0 <= c < Range().
	Range() int

	// ValuesPerChunk returns the number of values packed into one chunk.
	ValuesPerChunk() int

	// WordsPerChunk returns the number of 64-bit words of one chunk.
	WordsPerChunk() int

	// ChunkBytes returns the serialized size of one chunk.
	ChunkBytes() int

	// ByteOrder returns the byte order of serialized words.
	ByteOrder() endian.EndianEngine

	// ByteLength returns the serialized size of n values, padding included.
	ByteLength(n int64) (int64, error)

	// ChunkOffset returns the byte offset of the given chunk.
	ChunkOffset(chunk int64) (int64, error)

	// ElementsIn returns the number of value slots held by size bytes of complete chunks.
	ElementsIn(size int64) int64

	// Normalize maps an incoming value to the code stored for it.
	// It returns false when the value is outside the layout's domain.
	Normalize(v byte) (byte, bool)

	// PackChunk packs values into words. Missing trailing values pack as zero.
	PackChunk(words []uint64, values []byte)

	// UnpackChunk fills values from words, starting at the first slot of the chunk.
	UnpackChunk(values []byte, words []uint64)

	// Value returns the code in slot j of the chunk held by words.
	Value(words []uint64, j int) byte

	// SetValue replaces the code in slot j of the chunk held by words.
	SetValue(words []uint64, j int, v byte)
}

// geometry holds the chunk dimensions shared by all layouts.
type geometry struct {
	perChunk int
	words    int
	engine   endian.EndianEngine
}

func newGeometry(perChunk, words int, engine endian.EndianEngine) geometry {
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return geometry{perChunk: perChunk, words: words, engine: engine}
}

func (g geometry) ValuesPerChunk() int {
	return g.perChunk
}

func (g geometry) WordsPerChunk() int {
	return g.words
}

func (g geometry) ChunkBytes() int {
	return g.words * endian.WordSize
}

func (g geometry) ByteOrder() endian.EndianEngine {
	return g.engine
}

func (g geometry) ByteLength(n int64) (int64, error) {
	return mulOffset(ChunkCount(n, g.perChunk), g.ChunkBytes())
}

func (g geometry) ChunkOffset(chunk int64) (int64, error) {
	return mulOffset(chunk, g.ChunkBytes())
}

func (g geometry) ElementsIn(size int64) int64 {
	if size <= 0 {
		return 0
	}

	// size/ChunkBytes chunks of perChunk values cannot overflow: perChunk <= 64 and
	// ChunkBytes >= 8.
	return size / int64(g.ChunkBytes()) * int64(g.perChunk)
}
