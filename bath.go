package liquidmem

import "unsafe"

// Bath is a fixed-capacity bank of same-size slots with occupancy
// tracking. Slots are handed out with Alloc and returned with Release,
// so a bath suits objects of one size that are created and destroyed
// frequently. Not safe for concurrent use.
type Bath struct {
	size      int
	itemSize  int
	length    int
	firstFree int
	useMap    bitset
	data      []byte
}

// NewBath returns a bath holding size slots of itemSize bytes each.
func NewBath(size, itemSize int) (*Bath, error) {
	return new(Bath).Init(size, itemSize)
}

// Init initializes a caller-owned bath, for embedding a Bath value in a
// larger struct. The bath must not be in use.
func (b *Bath) Init(size, itemSize int) (*Bath, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if itemSize <= 0 {
		return nil, ErrInvalidItemSize
	}
	b.size = size
	b.itemSize = itemSize
	b.length = 0
	b.firstFree = 0
	b.useMap = newBitset(size)
	b.data = make([]byte, size*itemSize)
	return b, nil
}

// Alloc takes the lowest-indexed free slot and returns its itemSize
// bytes. Returns nil when every slot is live. The bytes are whatever
// the slot last held; use a typed wrapper or clear them if that matters.
func (b *Bath) Alloc() []byte {
	b.panicIfCleared()
	if b.length >= b.size {
		return nil
	}

	item := b.firstFree
	b.useMap.set(item)
	b.length++

	// Advance the hint: scan forward from the slot just taken. Slots
	// below firstFree are occupied by invariant, so the next free slot
	// can only be above it.
	b.firstFree = b.size
	for i := item + 1; i < b.size; i++ {
		if !b.useMap.test(i) {
			b.firstFree = i
			break
		}
	}

	off := item * b.itemSize
	return b.data[off : off+b.itemSize : off+b.itemSize]
}

// Release returns a slot obtained from Alloc on this bath. The buffer
// is identified by its address: ErrForeignAddress if it points outside
// the bath's storage, ErrMisalignedAddress if it points inside but not
// at a slot boundary, ErrDoubleRelease if the slot is already free.
// Failed releases leave the bath unchanged.
func (b *Bath) Release(buf []byte) error {
	b.panicIfCleared()
	item, err := b.slotIndex(buf)
	if err != nil {
		return err
	}
	if !b.useMap.test(item) {
		return ErrDoubleRelease
	}

	b.useMap.clear(item)
	b.length--
	if item < b.firstFree {
		b.firstFree = item
	}
	return nil
}

// slotIndex maps a buffer back to the slot it was handed out from.
func (b *Bath) slotIndex(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, ErrForeignAddress
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	if p < base || p >= base+uintptr(len(b.data)) {
		return 0, ErrForeignAddress
	}
	off := int(p - base)
	if off%b.itemSize != 0 {
		return 0, ErrMisalignedAddress
	}
	return off / b.itemSize, nil
}

// Reset releases every slot at once. The backing storage is kept, so
// previously returned buffers now alias future allocations.
func (b *Bath) Reset() {
	b.panicIfCleared()
	b.length = 0
	b.firstFree = 0
	b.useMap.zero()
}

// Clear drops the bath's storage. Every operation except metrics
// panics afterwards. Clear is idempotent.
func (b *Bath) Clear() {
	b.data = nil
	b.useMap = nil
	b.length = 0
}

func (b *Bath) panicIfCleared() {
	if b.data == nil {
		panic("liquidmem: use after Clear()")
	}
}
