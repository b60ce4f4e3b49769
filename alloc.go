package liquidmem

import "unsafe"

// Alloc returns a pointer to a zeroed T carved out of the river.
// The pointer is valid until the river is Reset or Cleared.
// Returns nil for zero-size types.
func Alloc[T any](r *River) *T {
	var zero T
	b := r.Alloc(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocUninitialized is Alloc without the zeroing. Faster, but the
// contents are whatever the creek last held; initialize before use.
func AllocUninitialized[T any](r *River) *T {
	var zero T
	b := r.Alloc(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocSlice allocates a slice of n elements of type T inside the
// river. The elements are not initialized. Returns nil if n <= 0.
func AllocSlice[T any](r *River, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := r.Alloc(int(unsafe.Sizeof(zero)) * n)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AllocSliceZeroed is AllocSlice with zeroed elements.
func AllocSliceZeroed[T any](r *River, n int) []T {
	s := AllocSlice[T](r, n)
	if s != nil {
		var zero T
		for i := range s {
			s[i] = zero
		}
	}
	return s
}

// TypedPool is a Pool whose slot size is fixed to one Go type. Alloc
// hands out zeroed *T values and Release takes them back, with the
// same ownership checks as Pool.Release. Not safe for concurrent use.
type TypedPool[T any] struct {
	pool Pool
}

// NewTypedPool returns a typed pool of baths holding bathSize slots of
// T each. Zero-size types are rejected with ErrInvalidItemSize.
func NewTypedPool[T any](bathSize int) (*TypedPool[T], error) {
	var zero T
	tp := &TypedPool[T]{}
	if _, err := tp.pool.Init(bathSize, int(unsafe.Sizeof(zero))); err != nil {
		return nil, err
	}
	return tp, nil
}

// Alloc returns a pointer to a zeroed T, or nil when allocation fails.
func (tp *TypedPool[T]) Alloc() *T {
	b := tp.pool.Alloc()
	if b == nil {
		return nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Release returns a pointer obtained from Alloc on this pool.
func (tp *TypedPool[T]) Release(ptr *T) error {
	if ptr == nil {
		return ErrForeignAddress
	}
	var zero T
	b := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(unsafe.Sizeof(zero)))
	return tp.pool.Release(b)
}

// Reset discards every bath after the first and releases all slots of
// the first.
func (tp *TypedPool[T]) Reset() {
	tp.pool.Reset()
}

// Clear drops every bath and its storage.
func (tp *TypedPool[T]) Clear() {
	tp.pool.Clear()
}

// Metrics returns a snapshot of the underlying pool's statistics.
func (tp *TypedPool[T]) Metrics() PoolMetrics {
	return tp.pool.Metrics()
}
