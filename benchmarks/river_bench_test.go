package liquidmem_test

import (
	"testing"

	"github.com/kninnug/liquidmem"
)

// BenchmarkVariableSizeBatch measures allocate-many-then-drop-all of
// mixed-size buffers, the workload rivers exist for.
func BenchmarkVariableSizeBatch(b *testing.B) {
	sizes := []int{16, 48, 96, 200, 512}

	b.Run("River", func(b *testing.B) {
		river, err := liquidmem.NewRiver(64 * 1024)
		if err != nil {
			b.Fatal(err)
		}
		defer river.Clear()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				buf := river.Alloc(sizes[j%len(sizes)])
				buf[0] = byte(j)
			}
			river.Reset()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			bufs := make([][]byte, 100)
			for j := 0; j < 100; j++ {
				buf := make([]byte, sizes[j%len(sizes)])
				buf[0] = byte(j)
				bufs[j] = buf
			}
		}
	})
}

// BenchmarkRiverOversize measures the dedicated-creek path for
// requests above the creek size.
func BenchmarkRiverOversize(b *testing.B) {
	river, err := liquidmem.NewRiver(4 * 1024)
	if err != nil {
		b.Fatal(err)
	}
	defer river.Clear()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		river.Alloc(16 * 1024)
		if i%64 == 63 {
			b.StopTimer()
			river.Reset()
			b.StartTimer()
		}
	}
}

// BenchmarkTypedAlloc measures the generic typed helpers against
// direct pointer allocation.
func BenchmarkTypedAlloc(b *testing.B) {
	type node struct {
		Key, Left, Right int64
	}

	b.Run("River", func(b *testing.B) {
		river, err := liquidmem.NewRiver(64 * 1024)
		if err != nil {
			b.Fatal(err)
		}
		defer river.Clear()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			n := liquidmem.Alloc[node](river)
			n.Key = int64(i)
			if i%1024 == 1023 {
				river.Reset()
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			n := new(node)
			n.Key = int64(i)
		}
	})
}
