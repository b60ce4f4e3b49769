// Command liquidbench benchmarks liquidmem pools and rivers against
// the built-in allocator.
//
// Usage:
//
//	liquidbench [mult [div [release [reuse]]]]
//
// mult scales the workload to mult*1024 rounds of mult*1024 items,
// div sizes pools and rivers at items/div slots, and passing a word
// starting with 'n' for release or reuse skips that phase.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kninnug/liquidmem"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "liquidbench [mult [div [release [reuse]]]]",
		Short: "Benchmark liquidmem against the built-in allocator",
		Long: "liquidbench times three allocation strategies over the same workload:\n" +
			"the built-in allocator, a liquidmem pool (fixed-size reusable slots)\n" +
			"and a liquidmem river (bump allocation, freed all at once), then\n" +
			"reports seconds and the speed ratio against the built-in baseline.",
		Args:          cobra.MaximumNArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "liquidbench:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	mult, div := 2, 4
	doRelease, doReuse := true, true

	var err error
	if len(args) > 0 {
		if mult, err = strconv.Atoi(args[0]); err != nil || mult < 1 {
			return fmt.Errorf("invalid multiplier %q", args[0])
		}
	}
	if len(args) > 1 {
		if div, err = strconv.Atoi(args[1]); err != nil || div < 1 {
			return fmt.Errorf("invalid divisor %q", args[1])
		}
	}
	if len(args) > 2 {
		doRelease = !strings.HasPrefix(args[2], "n")
	}
	if len(args) > 3 {
		doReuse = !strings.HasPrefix(args[3], "n")
	}

	rounds := 1024 * mult
	items := 1024 * mult
	regionSize := items / div
	if regionSize < 1 {
		regionSize = 1
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	builtinTime, err := benchBuiltin(rounds, items, doReuse, rng)
	if err != nil {
		return err
	}
	poolTime, err := benchPool(rounds, items, regionSize, doRelease, doReuse, rng)
	if err != nil {
		return err
	}
	riverTime, err := benchRiver(rounds, items, regionSize)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Allocator", "Workload", "Seconds", "Ratio"})
	workload := fmt.Sprintf("%dx%d", rounds, items)
	for _, row := range []struct {
		name string
		d    time.Duration
	}{
		{"builtin", builtinTime},
		{"pool", poolTime},
		{"river", riverTime},
	} {
		table.Append([]string{
			row.name,
			workload,
			fmt.Sprintf("%9.6f", row.d.Seconds()),
			fmt.Sprintf("%9.6f", builtinTime.Seconds()/row.d.Seconds()),
		})
	}
	table.Render()
	return nil
}

// benchBuiltin allocates items ints per round with the built-in
// allocator, optionally scrambling half of them, and drops everything.
func benchBuiltin(rounds, items int, doReuse bool, rng *rand.Rand) (time.Duration, error) {
	data := make([]*int32, items)
	start := time.Now()

	for r := 0; r < rounds; r++ {
		for i := range data {
			p := new(int32)
			*p = int32(i)
			data[i] = p
		}
		if doReuse {
			reuseBuiltin(data, rng)
		}
		if err := checkData(data); err != nil {
			return 0, err
		}
		for i := range data {
			data[i] = nil
		}
	}
	return time.Since(start), nil
}

func reuseBuiltin(data []*int32, rng *rand.Rand) {
	released := make([]int, 0, len(data)/2)
	for i := 0; i < len(data)/2; i++ {
		r := rng.Intn(len(data))
		if data[r] != nil {
			data[r] = nil
			released = append(released, r)
		}
	}
	for _, r := range released {
		p := new(int32)
		*p = int32(r)
		data[r] = p
	}
}

// benchPool runs the same workload against a fresh typed pool per
// round, releasing items one by one when doRelease is set.
func benchPool(rounds, items, bathSize int, doRelease, doReuse bool, rng *rand.Rand) (time.Duration, error) {
	data := make([]*int32, items)
	start := time.Now()

	for r := 0; r < rounds; r++ {
		pool, err := liquidmem.NewTypedPool[int32](bathSize)
		if err != nil {
			return 0, err
		}

		for i := range data {
			p := pool.Alloc()
			if p == nil {
				return 0, errors.New("pool allocation failed")
			}
			*p = int32(i)
			data[i] = p
		}
		if doReuse {
			if err := reusePool(pool, data, rng); err != nil {
				return 0, err
			}
		}
		if err := checkData(data); err != nil {
			return 0, err
		}
		if doRelease {
			for i, p := range data {
				if err := pool.Release(p); err != nil {
					return 0, err
				}
				data[i] = nil
			}
		}
		pool.Clear()
	}
	return time.Since(start), nil
}

func reusePool(pool *liquidmem.TypedPool[int32], data []*int32, rng *rand.Rand) error {
	released := make([]int, 0, len(data)/2)
	for i := 0; i < len(data)/2; i++ {
		r := rng.Intn(len(data))
		if data[r] != nil {
			if err := pool.Release(data[r]); err != nil {
				return err
			}
			data[r] = nil
			released = append(released, r)
		}
	}
	for _, r := range released {
		p := pool.Alloc()
		if p == nil {
			return errors.New("pool reallocation failed")
		}
		*p = int32(r)
		data[r] = p
	}
	return nil
}

// benchRiver runs the allocate-only workload against a fresh river per
// round; items are dropped all at once by Clear.
func benchRiver(rounds, items, regionSize int) (time.Duration, error) {
	data := make([]*int32, items)
	start := time.Now()

	for r := 0; r < rounds; r++ {
		river, err := liquidmem.NewRiver(4 * regionSize)
		if err != nil {
			return 0, err
		}

		for i := range data {
			p := liquidmem.Alloc[int32](river)
			if p == nil {
				return 0, errors.New("river allocation failed")
			}
			*p = int32(i)
			data[i] = p
		}
		if err := checkData(data); err != nil {
			return 0, err
		}
		for i := range data {
			data[i] = nil
		}
		river.Clear()
	}
	return time.Since(start), nil
}

// checkData verifies that every live item still holds its index.
func checkData(data []*int32) error {
	for i, p := range data {
		if p != nil && *p != int32(i) {
			return fmt.Errorf("data corrupted at %d: %d", i, *p)
		}
	}
	return nil
}
