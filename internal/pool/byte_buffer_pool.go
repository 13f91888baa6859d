package pool

import (
	"io"
	"sync"
)

// Staging buffers hold serialized chunks between Flush calls of a packed writer.
// Dump buffers hold a window of serialized words while an in-memory array is dumped.
const (
	StagingBufferDefaultSize  = 1024 * 64       // 64KiB
	StagingBufferMaxThreshold = 1024 * 1024     // 1MiB
	DumpBufferDefaultSize     = 1024 * 32       // 32KiB
	DumpBufferMaxThreshold    = 1024 * 256      // 256KiB
	largeBufferGrowThreshold  = 1024 * 1024 * 4 // 4MiB
)

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can take requiredBytes more bytes without reallocating.
//
// Small buffers double; buffers above 4MiB grow by 25% to bound the over-allocation.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := cap(bb.B)
	if cap(bb.B) > largeBufferGrowThreshold {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Extend grows the length of the buffer by n bytes and returns the new region.
// The content of the returned region is unspecified.
func (bb *ByteBuffer) Extend(n int) []byte {
	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]

	return bb.B[start:]
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
// The buffer is left unchanged; callers Reset it once the write succeeded.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	stagingDefaultPool = NewByteBufferPool(StagingBufferDefaultSize, StagingBufferMaxThreshold)
	dumpDefaultPool    = NewByteBufferPool(DumpBufferDefaultSize, DumpBufferMaxThreshold)
)

// GetStagingBuffer retrieves a ByteBuffer from the writer staging pool.
func GetStagingBuffer() *ByteBuffer {
	return stagingDefaultPool.Get()
}

// PutStagingBuffer returns a ByteBuffer to the writer staging pool.
func PutStagingBuffer(bb *ByteBuffer) {
	stagingDefaultPool.Put(bb)
}

// GetDumpBuffer retrieves a ByteBuffer from the array dump pool.
func GetDumpBuffer() *ByteBuffer {
	return dumpDefaultPool.Get()
}

// PutDumpBuffer returns a ByteBuffer to the array dump pool.
func PutDumpBuffer(bb *ByteBuffer) {
	dumpDefaultPool.Put(bb)
}
