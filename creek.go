package liquidmem

// Creek is a fixed-capacity bump allocator: a byte buffer with a
// monotonically advancing occupied-length marker. Items of any size
// are carved off the front and stay allocated until the whole creek is
// Reset or Cleared; there is no per-item release. Offsets are raw byte
// positions with no alignment padding, so callers holding
// alignment-sensitive types should size requests accordingly or use
// the typed helpers on River. Not safe for concurrent use.
type Creek struct {
	size   int
	length int
	data   []byte
}

// NewCreek returns a creek of size bytes.
func NewCreek(size int) (*Creek, error) {
	return new(Creek).Init(size)
}

// Init initializes a caller-owned creek. The creek must not be in use.
func (c *Creek) Init(size int) (*Creek, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	c.size = size
	c.length = 0
	c.data = make([]byte, size)
	return c, nil
}

// Alloc returns the next n bytes of the creek, or nil when fewer than
// n bytes remain (or n is not positive). The returned slice has full
// capacity n, so appending to it cannot spill into later allocations.
func (c *Creek) Alloc(n int) []byte {
	c.panicIfCleared()
	if n <= 0 || c.size-c.length < n {
		return nil
	}
	off := c.length
	c.length += n
	return c.data[off : off+n : off+n]
}

// Reset discards all allocations at once. The backing storage is kept,
// so previously returned buffers now alias future allocations.
func (c *Creek) Reset() {
	c.panicIfCleared()
	c.length = 0
}

// Clear drops the creek's storage. Every operation except metrics
// panics afterwards. Clear is idempotent.
func (c *Creek) Clear() {
	c.data = nil
	c.length = 0
}

func (c *Creek) panicIfCleared() {
	if c.data == nil {
		panic("liquidmem: use after Clear()")
	}
}
