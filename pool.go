package liquidmem

import "errors"

// Pool is a growing, insertion-ordered sequence of baths sharing one
// slot size. Allocation is served by the most recently appended bath
// only; when it fills up, the pool appends exactly one more. Freed
// slots in earlier baths are never reused until Reset or Clear. That
// keeps Alloc amortized O(1) at the cost of idle capacity, and callers
// who churn long-lived pools should Reset between generations.
// Not safe for concurrent use.
type Pool struct {
	bathSize int
	itemSize int
	baths    []Bath
}

// NewPool returns a pool of baths holding bathSize slots of itemSize
// bytes each. The pool starts with a single bath.
func NewPool(bathSize, itemSize int) (*Pool, error) {
	return new(Pool).Init(bathSize, itemSize)
}

// Init initializes a caller-owned pool. The pool must not be in use.
func (p *Pool) Init(bathSize, itemSize int) (*Pool, error) {
	if bathSize <= 0 {
		return nil, ErrInvalidSize
	}
	if itemSize <= 0 {
		return nil, ErrInvalidItemSize
	}
	p.bathSize = bathSize
	p.itemSize = itemSize
	p.baths = make([]Bath, 1)
	if _, err := p.baths[0].Init(bathSize, itemSize); err != nil {
		return nil, err
	}
	return p, nil
}

// Alloc returns a free slot from the newest bath, growing the pool by
// one bath when the newest is exhausted. Returns nil only if growing
// fails.
func (p *Pool) Alloc() []byte {
	p.panicIfCleared()

	last := &p.baths[len(p.baths)-1]
	if buf := last.Alloc(); buf != nil {
		return buf
	}

	next := make([]Bath, len(p.baths)+1)
	copy(next, p.baths)
	p.baths = next

	last = &p.baths[len(p.baths)-1]
	if _, err := last.Init(p.bathSize, p.itemSize); err != nil {
		return nil
	}
	return last.Alloc()
}

// Release returns a slot to whichever bath owns it, scanning baths in
// insertion order. ErrForeignAddress if no bath owns the buffer;
// misalignment and double-release errors surface from the owning bath.
func (p *Pool) Release(buf []byte) error {
	p.panicIfCleared()
	for i := range p.baths {
		err := p.baths[i].Release(buf)
		if errors.Is(err, ErrForeignAddress) {
			continue
		}
		return err
	}
	return ErrForeignAddress
}

// Reset discards every bath after the first and releases all slots of
// the first, returning the pool to its initial single-bath state.
func (p *Pool) Reset() {
	p.panicIfCleared()
	for i := 1; i < len(p.baths); i++ {
		p.baths[i].Clear()
	}
	p.baths = p.baths[:1]
	p.baths[0].Reset()
}

// Clear drops every bath and its storage. Every operation except
// metrics panics afterwards. Clear is idempotent.
func (p *Pool) Clear() {
	for i := range p.baths {
		p.baths[i].Clear()
	}
	p.baths = nil
}

func (p *Pool) panicIfCleared() {
	if p.baths == nil {
		panic("liquidmem: use after Clear()")
	}
}
