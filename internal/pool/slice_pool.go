package pool

import "sync"

// Slice pools for scratch words and decoded value windows.
var (
	wordSlicePool = sync.Pool{
		New: func() any { return &[]uint64{} },
	}
	byteSlicePool = sync.Pool{
		New: func() any { return &[]byte{} },
	}
)

// GetWordSlice retrieves a uint64 slice of exactly size elements from the pool.
//
// The content of the returned slice is unspecified. The caller must call the returned
// cleanup function, typically with defer, to return the slice to the pool.
//
//	words, cleanup := pool.GetWordSlice(8)
//	defer cleanup()
func GetWordSlice(size int) ([]uint64, func()) {
	ptr, _ := wordSlicePool.Get().(*[]uint64)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]uint64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { wordSlicePool.Put(ptr) }
}

// GetByteSlice retrieves a byte slice of exactly size elements from the pool.
//
// The content of the returned slice is unspecified. The caller must call the returned
// cleanup function to return the slice to the pool.
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]byte, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { byteSlicePool.Put(ptr) }
}
