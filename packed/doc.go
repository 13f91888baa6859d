// Package packed implements in-memory containers of small-range byte values stored at the
// minimum number of bits per element, and the chunk layouts shared with the file codecs of
// the stream package.
//
// # Layouts
//
// A Layout fixes how a run of values is packed into 64-bit words:
//
//   - BitwiseLayout groups 64 values into a chunk of b words, where b = MinBits(rng).
//     Word k holds, in bit j, bit k of the j-th value of the chunk (bit-planes).
//   - CompressedLayout stores k values per word as base-r digits, where r is the size of
//     the value domain and k is the largest integer with r^k <= 2^64. For domains that
//     are not a power of two this beats whole-bit packing (5 codes: 27 values per word
//     instead of 21).
//
// Chunks are serialized as consecutive words in the layout's byte order, without any
// header. A final partial chunk occupies a full chunk with zero-valued padding, so n
// values always take ChunkCount(n, ValuesPerChunk())*ChunkBytes() bytes.
//
// # Arrays
//
// BitwiseArray and CompressedArray implement PackedArray on top of the two layouts.
// DumpPacked writes exactly the bytes a stream writer produces for the same values:
//
//	arr, _ := packed.NewBitwiseArray(1_000, 5)
//	_ = arr.SetRange(0, codes)
//	_ = arr.DumpPacked(f, arr.Len())
//
// # Index arithmetic
//
// Element counts, chunk indices and byte offsets are int64 throughout; byte sizes are
// computed with overflow-checked multiplication and fail with errs.ErrLengthOverflow
// instead of wrapping.
//
// # Thread Safety
//
// Layouts are immutable and safe for concurrent use. Arrays are not safe for concurrent
// mutation; concurrent readers are fine once writes have completed.
package packed
