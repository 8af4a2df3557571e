package fsa

import "github.com/bits-and-blooms/bitset"

// phi64 spreads small symbol ids over the whole word (Fibonacci hashing).
const phi64 = uint64(0x9e3779b97f4a7c15)

// mix64 is the 64 bit finalizer of MurmurHash3 (fmix64). Neighbouring state
// numbers map to unrelated words, which keeps sums of them well spread.
func mix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// hashSet sums the mixed members of b plus its size. Addition commutes, so
// the hash depends only on which bits are set.
func hashSet(b *bitset.BitSet) uint64 {
	h := uint64(b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		h += mix64(uint64(i))
	}
	return h
}

// hashMove combines a symbol id with the hash of the set it moves from.
func hashMove(symbol int, b *bitset.BitSet) uint64 {
	return (uint64(symbol)+1)*phi64 ^ hashSet(b)
}
