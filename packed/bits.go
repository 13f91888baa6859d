package packed

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/seqpack/errs"
)

// MaxRange is the largest value range a byte-valued layout can hold.
const MaxRange = 256

// MinBits returns the smallest number of bits b >= 1 with 2^b >= rng.
//
// MinBits(2) == 1, MinBits(5) == 3, MinBits(256) == 8. Ranges below 2 still need one bit.
func MinBits(rng int) int {
	if rng <= 2 {
		return 1
	}

	return bits.Len(uint(rng - 1))
}

// ChunkCount returns the number of chunks of perChunk values needed for n values,
// that is ceil(n / perChunk). It returns 0 for n <= 0.
func ChunkCount(n int64, perChunk int) int64 {
	if n <= 0 {
		return 0
	}

	return (n-1)/int64(perChunk) + 1
}

// mulOffset returns a*b as an int64, failing instead of wrapping.
func mulOffset(a int64, b int) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%w: negative operand %d*%d", errs.ErrLengthOverflow, a, b)
	}

	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d*%d exceeds int64", errs.ErrLengthOverflow, a, b)
	}

	return int64(lo), nil
}

// checkSpan validates that [start, start+count) lies within [0, length).
func checkSpan(start int64, count int, length int64) error {
	if start < 0 || start > length || int64(count) > length-start {
		return fmt.Errorf("%w: [%d, %d+%d) not within [0, %d)", errs.ErrIndexOutOfRange, start, start, count, length)
	}

	return nil
}
