package packed

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
)

// CompressedLayout packs values as base-r digits of single 64-bit words.
//
// The domain is [0, maxValue]. In extended mode one extra code, maxValue+1, is reserved
// as an escape: every incoming value above maxValue is stored as the escape code and
// reads back as it.
type CompressedLayout struct {
	geometry
	maxValue int
	extended bool
	rng      int
	radix    uint64
	pow      []uint64 // pow[j] == radix^j
}

var _ Layout = (*CompressedLayout)(nil)

// NewCompressedLayout creates the digit layout for values in [0, maxValue].
//
// maxValue must be in [0, 255], or [0, 254] when extended is set. A nil engine selects
// little-endian words.
func NewCompressedLayout(maxValue int, extended bool, engine endian.EndianEngine) (*CompressedLayout, error) {
	rng := maxValue + 1
	if extended {
		rng++
	}

	if maxValue < 0 || rng > MaxRange {
		return nil, fmt.Errorf("%w: compressed max value %d (extended=%t) exceeds %d codes",
			errs.ErrInvalidRange, maxValue, extended, MaxRange)
	}

	radix := uint64(max(rng, 2))
	k := digitsPerWord(radix)

	pow := make([]uint64, k)
	pow[0] = 1
	for j := 1; j < k; j++ {
		pow[j] = pow[j-1] * radix
	}

	return &CompressedLayout{
		geometry: newGeometry(k, 1, engine),
		maxValue: maxValue,
		extended: extended,
		rng:      rng,
		radix:    radix,
		pow:      pow,
	}, nil
}

// digitsPerWord returns the largest k with radix^k <= 2^64.
func digitsPerWord(radix uint64) int {
	k := 0
	p := uint64(1)
	for {
		hi, lo := bits.Mul64(p, radix)
		if hi != 0 {
			if hi == 1 && lo == 0 {
				k++
			}

			return k
		}
		p = lo
		k++
	}
}

func (l *CompressedLayout) Encoding() format.EncodingType {
	return format.EncodingCompressed
}

func (l *CompressedLayout) Range() int {
	return l.rng
}

// MaxValue returns the largest value stored as itself.
func (l *CompressedLayout) MaxValue() int {
	return l.maxValue
}

// Extended reports whether the layout reserves an escape code.
func (l *CompressedLayout) Extended() bool {
	return l.extended
}

// Escape returns the escape code and true for extended layouts.
func (l *CompressedLayout) Escape() (byte, bool) {
	if !l.extended {
		return 0, false
	}

	return byte(l.maxValue + 1), true
}

// BitsPerValue returns the average storage cost of one value in bits.
func (l *CompressedLayout) BitsPerValue() float64 {
	return 64 / float64(l.perChunk)
}

func (l *CompressedLayout) Normalize(v byte) (byte, bool) {
	if int(v) <= l.maxValue {
		return v, true
	}

	if l.extended {
		return byte(l.maxValue + 1), true
	}

	return v, false
}

func (l *CompressedLayout) PackChunk(words []uint64, values []byte) {
	var w uint64
	for j := len(values) - 1; j >= 0; j-- {
		w = w*l.radix + uint64(values[j])
	}
	words[0] = w
}

func (l *CompressedLayout) UnpackChunk(values []byte, words []uint64) {
	w := words[0]
	for j := range values {
		values[j] = byte(w % l.radix)
		w /= l.radix
	}
}

func (l *CompressedLayout) Value(words []uint64, j int) byte {
	return byte(words[0] / l.pow[j] % l.radix)
}

func (l *CompressedLayout) SetValue(words []uint64, j int, v byte) {
	w := words[0]
	old := w / l.pow[j] % l.radix
	words[0] = w - old*l.pow[j] + uint64(v)*l.pow[j]
}
