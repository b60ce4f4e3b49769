package liquidmem

// DefaultCreekSize is the creek size used by rivers when none is given
// (64 KiB).
const DefaultCreekSize = 1 << 16

// River is a growing, insertion-ordered sequence of creeks. Allocation
// tries the newest creek first (it was appended because the previous
// one was exhausted, so it is the most likely to have room), then older
// ones, and finally appends exactly one new creek. Requests larger than
// the creek size spill into a dedicated creek sized exactly to the
// request, so they never fragment a standard creek.
// Not safe for concurrent use.
type River struct {
	creekSize int
	creeks    []Creek
}

// NewRiver returns a river of creeks holding creekSize bytes each.
// If creekSize <= 0, DefaultCreekSize is used. The river starts with a
// single creek.
func NewRiver(creekSize int) (*River, error) {
	return new(River).Init(creekSize)
}

// Init initializes a caller-owned river. The river must not be in use.
func (r *River) Init(creekSize int) (*River, error) {
	if creekSize <= 0 {
		creekSize = DefaultCreekSize
	}
	r.creekSize = creekSize
	r.creeks = make([]Creek, 1)
	if _, err := r.creeks[0].Init(creekSize); err != nil {
		return nil, err
	}
	return r, nil
}

// Alloc returns n bytes from the river, growing it by one creek when no
// existing creek has room. Returns nil when n is not positive.
func (r *River) Alloc(n int) []byte {
	r.panicIfCleared()
	if n <= 0 {
		return nil
	}

	// Oversized request: one dedicated creek, filled in a single grant.
	if n > r.creekSize {
		return r.addCreek(n).Alloc(n)
	}

	for i := len(r.creeks); i > 0; i-- {
		if buf := r.creeks[i-1].Alloc(n); buf != nil {
			return buf
		}
	}

	return r.addCreek(r.creekSize).Alloc(n)
}

// addCreek appends exactly one creek of the given size.
func (r *River) addCreek(size int) *Creek {
	next := make([]Creek, len(r.creeks)+1)
	copy(next, r.creeks)
	next[len(next)-1] = Creek{size: size, data: make([]byte, size)}
	r.creeks = next
	return &r.creeks[len(r.creeks)-1]
}

// Reset discards every creek after the first and all allocations of
// the first, returning the river to its initial single-creek state.
func (r *River) Reset() {
	r.panicIfCleared()
	for i := 1; i < len(r.creeks); i++ {
		r.creeks[i].Clear()
	}
	r.creeks = r.creeks[:1]
	r.creeks[0].Reset()
}

// Clear drops every creek and its storage. Every operation except
// metrics panics afterwards. Clear is idempotent.
func (r *River) Clear() {
	for i := range r.creeks {
		r.creeks[i].Clear()
	}
	r.creeks = nil
}

func (r *River) panicIfCleared() {
	if r.creeks == nil {
		panic("liquidmem: use after Clear()")
	}
}
