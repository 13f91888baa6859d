package packed

import (
	"fmt"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
)

// BitwiseChunkValues is the number of values in one bitwise chunk.
const BitwiseChunkValues = 64

// BitwiseLayout packs 64 values into MinBits(rng) bit-plane words.
type BitwiseLayout struct {
	geometry
	rng  int
	bits int
}

var _ Layout = (*BitwiseLayout)(nil)

// NewBitwiseLayout creates the bit-plane layout for values in [0, rng).
//
// rng must be in [1, MaxRange]. A nil engine selects little-endian words.
func NewBitwiseLayout(rng int, engine endian.EndianEngine) (*BitwiseLayout, error) {
	if rng < 1 || rng > MaxRange {
		return nil, fmt.Errorf("%w: bitwise range %d not in [1, %d]", errs.ErrInvalidRange, rng, MaxRange)
	}

	b := MinBits(rng)

	return &BitwiseLayout{
		geometry: newGeometry(BitwiseChunkValues, b, engine),
		rng:      rng,
		bits:     b,
	}, nil
}

func (l *BitwiseLayout) Encoding() format.EncodingType {
	return format.EncodingBitwise
}

func (l *BitwiseLayout) Range() int {
	return l.rng
}

// Bits returns the number of bits per value.
func (l *BitwiseLayout) Bits() int {
	return l.bits
}

func (l *BitwiseLayout) Normalize(v byte) (byte, bool) {
	return v, int(v) < l.rng
}

func (l *BitwiseLayout) PackChunk(words []uint64, values []byte) {
	words = words[:l.bits]
	clear(words)

	for j, v := range values {
		for k := range words {
			words[k] |= uint64(v>>uint(k)&1) << uint(j)
		}
	}
}

func (l *BitwiseLayout) UnpackChunk(values []byte, words []uint64) {
	words = words[:l.bits]

	for j := range values {
		var v byte
		for k, w := range words {
			v |= byte(w>>uint(j)&1) << uint(k)
		}
		values[j] = v
	}
}

func (l *BitwiseLayout) Value(words []uint64, j int) byte {
	var v byte
	for k := range l.bits {
		v |= byte(words[k]>>uint(j)&1) << uint(k)
	}

	return v
}

func (l *BitwiseLayout) SetValue(words []uint64, j int, v byte) {
	mask := uint64(1) << uint(j)
	for k := range l.bits {
		if v>>uint(k)&1 != 0 {
			words[k] |= mask
		} else {
			words[k] &^= mask
		}
	}
}
