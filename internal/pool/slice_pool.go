package pool

import "sync"

// Slice pool for efficient reuse of staged code columns.
// The field encoder stages one pre-encoded uint64 column per flag between
// Put and Finish; pooling them keeps repeated encode cycles allocation-free.
var uint64SlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetUint64Slice retrieves and resizes a uint64 slice from the pool.
//
// The returned slice has the exact length specified by size. If the pooled
// slice has insufficient capacity, a new slice is allocated. The caller must
// call the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []uint64: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	codes, cleanup := pool.GetUint64Slice(recordCount)
//	defer cleanup()
//	// Stage codes...
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint64SlicePool.Put(ptr) }
}
