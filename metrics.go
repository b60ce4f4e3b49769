package liquidmem

// Live returns the number of slots currently allocated.
func (b *Bath) Live() int {
	if b.data == nil {
		return 0
	}
	return b.length
}

// Capacity returns the number of slots in the bath.
func (b *Bath) Capacity() int {
	if b.data == nil {
		return 0
	}
	return b.size
}

// ItemSize returns the size of each slot in bytes.
func (b *Bath) ItemSize() int {
	return b.itemSize
}

// Utilization returns the ratio of live slots to capacity (0.0 to 1.0).
func (b *Bath) Utilization() float64 {
	if b.data == nil || b.size == 0 {
		return 0
	}
	return float64(b.length) / float64(b.size)
}

// Metrics returns a snapshot of bath statistics.
func (b *Bath) Metrics() BathMetrics {
	return BathMetrics{
		Live:        b.Live(),
		Capacity:    b.Capacity(),
		ItemSize:    b.ItemSize(),
		Utilization: b.Utilization(),
	}
}

// BathMetrics contains statistical information about a bath.
type BathMetrics struct {
	Live        int     // Slots currently allocated
	Capacity    int     // Total slots
	ItemSize    int     // Slot size in bytes
	Utilization float64 // Ratio of live slots to capacity (0.0-1.0)
}

// NumBaths returns the number of baths currently in the pool.
func (p *Pool) NumBaths() int {
	return len(p.baths)
}

// Live returns the total number of slots allocated across all baths.
func (p *Pool) Live() int {
	n := 0
	for i := range p.baths {
		n += p.baths[i].Live()
	}
	return n
}

// Capacity returns the total number of slots across all baths.
func (p *Pool) Capacity() int {
	n := 0
	for i := range p.baths {
		n += p.baths[i].Capacity()
	}
	return n
}

// BathSize returns the number of slots per bath.
func (p *Pool) BathSize() int {
	return p.bathSize
}

// ItemSize returns the size of each slot in bytes.
func (p *Pool) ItemSize() int {
	return p.itemSize
}

// Utilization returns the ratio of live slots to total capacity.
func (p *Pool) Utilization() float64 {
	capacity := p.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(p.Live()) / float64(capacity)
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		Live:        p.Live(),
		Capacity:    p.Capacity(),
		NumBaths:    p.NumBaths(),
		BathSize:    p.BathSize(),
		ItemSize:    p.ItemSize(),
		Utilization: p.Utilization(),
	}
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	Live        int     // Slots currently allocated across all baths
	Capacity    int     // Total slots across all baths
	NumBaths    int     // Number of baths
	BathSize    int     // Slots per bath
	ItemSize    int     // Slot size in bytes
	Utilization float64 // Ratio of live slots to capacity (0.0-1.0)
}

// SizeInUse returns the number of bytes currently allocated.
func (c *Creek) SizeInUse() int {
	return c.length
}

// Capacity returns the creek's size in bytes.
func (c *Creek) Capacity() int {
	if c.data == nil {
		return 0
	}
	return c.size
}

// Utilization returns the ratio of bytes in use to capacity.
func (c *Creek) Utilization() float64 {
	capacity := c.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(c.length) / float64(capacity)
}

// Metrics returns a snapshot of creek statistics.
func (c *Creek) Metrics() CreekMetrics {
	return CreekMetrics{
		SizeInUse:   c.SizeInUse(),
		Capacity:    c.Capacity(),
		Utilization: c.Utilization(),
	}
}

// CreekMetrics contains statistical information about a creek.
type CreekMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// NumCreeks returns the number of creeks currently in the river.
func (r *River) NumCreeks() int {
	return len(r.creeks)
}

// SizeInUse returns the total number of bytes allocated across all
// creeks.
func (r *River) SizeInUse() int {
	n := 0
	for i := range r.creeks {
		n += r.creeks[i].SizeInUse()
	}
	return n
}

// Capacity returns the total capacity of all creeks in bytes.
func (r *River) Capacity() int {
	n := 0
	for i := range r.creeks {
		n += r.creeks[i].Capacity()
	}
	return n
}

// CreekSize returns the standard creek size used by this river.
func (r *River) CreekSize() int {
	return r.creekSize
}

// Utilization returns the ratio of bytes in use to total capacity.
func (r *River) Utilization() float64 {
	capacity := r.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(r.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of river statistics.
func (r *River) Metrics() RiverMetrics {
	return RiverMetrics{
		SizeInUse:   r.SizeInUse(),
		Capacity:    r.Capacity(),
		NumCreeks:   r.NumCreeks(),
		CreekSize:   r.CreekSize(),
		Utilization: r.Utilization(),
	}
}

// RiverMetrics contains statistical information about a river.
type RiverMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	NumCreeks   int     // Number of creeks
	CreekSize   int     // Standard creek size in bytes
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
