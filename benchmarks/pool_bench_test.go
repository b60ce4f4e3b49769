package liquidmem_test

import (
	"testing"

	"github.com/kninnug/liquidmem"
)

type item struct {
	ID    int64
	Value [56]byte // 64 bytes total
}

// BenchmarkFixedSizeChurn measures allocate/release churn of same-size
// objects, the workload pools exist for.
func BenchmarkFixedSizeChurn(b *testing.B) {
	const batch = 128

	b.Run("Pool", func(b *testing.B) {
		pool, err := liquidmem.NewTypedPool[item](1024)
		if err != nil {
			b.Fatal(err)
		}
		defer pool.Clear()
		ptrs := make([]*item, batch)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < batch; j++ {
				p := pool.Alloc()
				p.ID = int64(j)
				ptrs[j] = p
			}
			for j := 0; j < batch; j++ {
				if err := pool.Release(ptrs[j]); err != nil {
					b.Fatal(err)
				}
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		ptrs := make([]*item, batch)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < batch; j++ {
				p := new(item)
				p.ID = int64(j)
				ptrs[j] = p
			}
			for j := 0; j < batch; j++ {
				ptrs[j] = nil
			}
		}
	})
}

// BenchmarkPoolGrowth measures allocation straight through bath
// exhaustion, forcing the pool to grow.
func BenchmarkPoolGrowth(b *testing.B) {
	const allocs = 4096

	b.Run("Pool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			pool, err := liquidmem.NewTypedPool[item](256)
			if err != nil {
				b.Fatal(err)
			}
			for j := 0; j < allocs; j++ {
				pool.Alloc()
			}
			pool.Clear()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ptrs := make([]*item, allocs)
			for j := 0; j < allocs; j++ {
				ptrs[j] = new(item)
			}
		}
	})
}

// BenchmarkPoolReuse measures the release-then-reallocate pattern where
// freed slots in the newest bath are recycled.
func BenchmarkPoolReuse(b *testing.B) {
	pool, err := liquidmem.NewTypedPool[item](1024)
	if err != nil {
		b.Fatal(err)
	}
	defer pool.Clear()

	ptrs := make([]*item, 512)
	for j := range ptrs {
		ptrs[j] = pool.Alloc()
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := 0; j < len(ptrs); j += 2 {
			if err := pool.Release(ptrs[j]); err != nil {
				b.Fatal(err)
			}
		}
		for j := 0; j < len(ptrs); j += 2 {
			ptrs[j] = pool.Alloc()
		}
	}
}
