package liquidmem

import "math/bits"

const wordBits = bits.UintSize

// bitset is a fixed-length packed bit vector over machine words.
// Bit i lives in word i/wordBits at position i%wordBits.
type bitset []uint

// bitsetWords returns the number of words needed to hold n bits.
func bitsetWords(n int) int {
	return (n + wordBits - 1) / wordBits
}

func newBitset(n int) bitset {
	return make(bitset, bitsetWords(n))
}

func (s bitset) test(i int) bool {
	return s[i/wordBits]&(1<<(i%wordBits)) != 0
}

func (s bitset) set(i int) {
	s[i/wordBits] |= 1 << (i % wordBits)
}

func (s bitset) clear(i int) {
	s[i/wordBits] &^= 1 << (i % wordBits)
}

// zero resets every bit to 0.
func (s bitset) zero() {
	clear(s)
}

// count returns the number of set bits.
func (s bitset) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount(w)
	}
	return n
}
