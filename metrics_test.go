package liquidmem

import "testing"

func TestBathMetrics(t *testing.T) {
	b, err := NewBath(4, 8)
	if err != nil {
		t.Fatal(err)
	}

	if b.Live() != 0 || b.Capacity() != 4 || b.ItemSize() != 8 {
		t.Errorf("initial metrics = %d/%d/%d, want 0/4/8", b.Live(), b.Capacity(), b.ItemSize())
	}
	if b.Utilization() != 0 {
		t.Errorf("initial Utilization = %f, want 0", b.Utilization())
	}

	b.Alloc()
	b.Alloc()
	if b.Utilization() != 0.5 {
		t.Errorf("Utilization = %f, want 0.5", b.Utilization())
	}

	m := b.Metrics()
	if m.Live != 2 || m.Capacity != 4 || m.ItemSize != 8 || m.Utilization != 0.5 {
		t.Errorf("Metrics snapshot = %+v", m)
	}

	b.Clear()
	if b.Live() != 0 || b.Capacity() != 0 || b.Utilization() != 0 {
		t.Error("cleared bath must report zero metrics")
	}
}

func TestPoolMetrics(t *testing.T) {
	p, err := NewPool(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Clear()

	p.Alloc()
	p.Alloc()
	p.Alloc()

	m := p.Metrics()
	if m.NumBaths != 2 || m.Live != 3 || m.Capacity != 4 {
		t.Errorf("Metrics = %+v, want 2 baths, 3 live, capacity 4", m)
	}
	if m.BathSize != 2 || m.ItemSize != 4 {
		t.Errorf("Metrics = %+v, want bath size 2, item size 4", m)
	}
	if m.Utilization != 0.75 {
		t.Errorf("Utilization = %f, want 0.75", m.Utilization)
	}
}

func TestCreekMetrics(t *testing.T) {
	c, err := NewCreek(32)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Clear()

	c.Alloc(8)
	m := c.Metrics()
	if m.SizeInUse != 8 || m.Capacity != 32 || m.Utilization != 0.25 {
		t.Errorf("Metrics = %+v, want 8/32/0.25", m)
	}
}

func TestRiverMetrics(t *testing.T) {
	r, err := NewRiver(16)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Clear()

	r.Alloc(8)
	m := r.Metrics()
	if m.SizeInUse != 8 || m.Capacity != 16 || m.NumCreeks != 1 || m.CreekSize != 16 {
		t.Errorf("Metrics = %+v, want 8/16, 1 creek of 16", m)
	}
	if m.Utilization != 0.5 {
		t.Errorf("Utilization = %f, want 0.5", m.Utilization)
	}

	r.Alloc(20) // oversize creek
	m = r.Metrics()
	if m.SizeInUse != 28 || m.Capacity != 36 || m.NumCreeks != 2 {
		t.Errorf("Metrics after oversize = %+v, want 28/36, 2 creeks", m)
	}
}
