// core/bloom/hash.go
package bloom

import "math/bits"

// goldenRatio32 is 2^32 / phi, used to spread per-hash seeds across the
// 32-bit space.
const goldenRatio32 = 0x9e3779b9

// seedFor derives the seed of hash function i deterministically, so two
// filters built with the same parameters hash identically.
func seedFor(i int) uint32 { return uint32(i+1) * goldenRatio32 }

// sum32 is a seeded 32-bit MurmurHash3. All arithmetic wraps mod 2^32; the
// wraparound multiply is load-bearing for seed distribution.
func sum32(data []byte, seed uint32) uint32 {
	const (
		c1 = 0xcc9e2d51
		c2 = 0x1b873593
	)
	h := seed
	n := len(data)
	i := 0
	for ; i+4 <= n; i += 4 {
		k := uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16 | uint32(data[i+3])<<24
		k *= c1
		k = bits.RotateLeft32(k, 15)
		k *= c2
		h ^= k
		h = bits.RotateLeft32(h, 13)
		h = h*5 + 0xe6546b64
	}

	var k uint32
	switch n & 3 {
	case 3:
		k ^= uint32(data[i+2]) << 16
		fallthrough
	case 2:
		k ^= uint32(data[i+1]) << 8
		fallthrough
	case 1:
		k ^= uint32(data[i])
		k *= c1
		k = bits.RotateLeft32(k, 15)
		k *= c2
		h ^= k
	}

	// Finalization mix.
	h ^= uint32(n)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}
