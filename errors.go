package liquidmem

import "errors"

// Predefined errors returned by container constructors and Release.
var (
	// ErrInvalidSize is returned when a capacity argument is not positive.
	ErrInvalidSize = errors.New("liquidmem: invalid size")

	// ErrInvalidItemSize is returned when an item size argument is not positive.
	ErrInvalidItemSize = errors.New("liquidmem: invalid item size")

	// ErrForeignAddress is returned by Release when the given buffer does
	// not point into any storage owned by the container.
	ErrForeignAddress = errors.New("liquidmem: address not owned by this allocator")

	// ErrMisalignedAddress is returned by Release when the given buffer
	// points into owned storage but not at a slot boundary.
	ErrMisalignedAddress = errors.New("liquidmem: address not on a slot boundary")

	// ErrDoubleRelease is returned by Release when the addressed slot is
	// already free. The call leaves the container unchanged.
	ErrDoubleRelease = errors.New("liquidmem: slot already released")
)
