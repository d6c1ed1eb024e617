package bmap

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// HashFunc maps a key's bytes to a 32-bit hash. It must be deterministic
// for identical input; near-uniform output keeps chains short. The map
// reduces the result to a bucket index with a power-of-two mask, so the
// low bits matter most.
type HashFunc func(key []byte) uint32

// FNV-1a parameters.
const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// FNV32a is the 32-bit FNV-1a hash. Dependency-free and adequate for
// small maps; prefer XXHash or XXH3 for longer keys.
func FNV32a(key []byte) uint32 {
	hash := uint32(fnvOffset32)
	for _, b := range key {
		hash ^= uint32(b)
		hash *= fnvPrime32
	}
	return hash
}

// XXHash hashes with xxHash64 and folds the sum to 32 bits. The fold
// keeps entropy from the high half in the masked low bits.
func XXHash(key []byte) uint32 {
	sum := xxhash.Sum64(key)
	return uint32(sum>>32) ^ uint32(sum)
}

// XXH3 hashes with XXH3-64 and folds the sum to 32 bits. Fastest of the
// built-in hashers on large keys.
func XXH3(key []byte) uint32 {
	sum := xxh3.Hash(key)
	return uint32(sum>>32) ^ uint32(sum)
}
