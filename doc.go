// Package liquidmem implements region-based memory allocation: many
// small objects are carved out of larger pre-allocated regions instead
// of hitting the general-purpose allocator per object.
//
// # Overview
//
// Two allocation disciplines are offered over raw backing buffers:
//
//   - Bath / Pool: reusable fixed-size slots with occupancy tracking,
//     for objects of one size that are frequently created and
//     destroyed. A Bath is a single fixed-capacity bank; a Pool is a
//     growing sequence of baths.
//   - Creek / River: forward bump allocation of variable-size items
//     that are allocated once and freed together. A Creek is a single
//     fixed-capacity buffer; a River is a growing sequence of creeks.
//
// # Basic Usage
//
//	pool, err := liquidmem.NewPool(1024, 16) // 1024 slots of 16 bytes per bath
//	if err != nil {
//		// invalid sizes
//	}
//	defer pool.Clear() // Clean up when done
//
//	buf := pool.Alloc()          // one 16-byte slot
//	err = pool.Release(buf)      // return it for reuse
//
//	river, _ := liquidmem.NewRiver(0) // DefaultCreekSize creeks
//	defer river.Clear()
//
//	hdr := river.Alloc(24)            // raw bytes, freed all at once
//	obj := liquidmem.Alloc[Item](river) // typed, zeroed
//	river.Reset()                      // invalidate everything, keep first creek
//
// # Lifecycle
//
// Every container follows the same two-call discipline: construct with
// New* (or Init for caller-owned values), tear down with Clear. Reset
// releases all allocations while keeping the container usable. After
// Clear, all operations except metrics panic. Returned buffers are
// views into container-owned storage: a slot buffer is valid until it
// is released, a creek buffer until the owning creek or river is Reset
// or Cleared.
//
// # Allocation Discipline
//
// A Pool allocates from its newest bath only, so slots freed in older
// baths are not reused until Reset. A River tries its newest creek
// first, then older ones; requests larger than the creek size get a
// dedicated, exactly-sized creek. Both grow by exactly one member per
// exhaustion event, preserving insertion order.
//
// # Thread Safety
//
// No container is safe for concurrent use. There is no internal
// locking; callers sharing a container across goroutines must
// synchronize externally.
//
// # Performance Characteristics
//
//   - Bath.Alloc / Creek.Alloc: O(1) plus the bounded free-slot scan
//   - Pool.Alloc / River.Alloc: amortized O(1), O(members) on growth
//   - Pool.Release: O(members) ownership scan
//   - Reset: O(members)
//
// # Important Notes
//
//   - Creek offsets carry no alignment padding; size requests to keep
//     alignment-sensitive data aligned, or use the typed helpers
//   - Release identifies slots by buffer address; only pass buffers
//     exactly as returned by Alloc
//   - Double releases are detected and reported as ErrDoubleRelease
package liquidmem
