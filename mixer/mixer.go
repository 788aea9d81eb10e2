// Package mixer supplies 64-bit-to-64-bit mixer functions for use with
// the sketch package. A mixer spreads the bits of an input value so that
// its top bits are as uniformly distributed as the input stream allows;
// the sketch package relies on this to turn arbitrary item identifiers
// into hash values whose leading-zero counts behave like a fair coin.
//
// Every mixer here is a pure, total, allocation-free function of type
// Func and is safe to call concurrently from multiple goroutines.
package mixer

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

// Func is a bijective-in-practice 64-bit mixer. Implementations must be
// pure and total: the same input always produces the same output, and no
// input causes a panic.
type Func func(uint64) uint64

// RanHash is the 64-bit multiplicative-XOR mixer from Numerical Recipes,
// 3rd Edition, p.352. It is the default mixer for general use: fast,
// dependency-free, and well distributed for sequential or clustered keys.
func RanHash(u uint64) uint64 {
	v := u*3935559000370003845 + 2691343689449507681
	v ^= v >> 21
	v ^= v << 37
	v ^= v >> 4
	v *= 4768777513237032717
	v ^= v << 20
	v ^= v >> 41
	v ^= v << 5
	return v
}

// Murmur3Finalizer is MurmurHash3's 64-bit avalanche finalizer
// (fmix64), the same bit-mixing step used to close out murmur3's block
// hash. It pre-increments the key by one, since the raw finalizer maps
// the key 0 to the fixed point 0, which would make the all-zero item
// collide with an empty register update.
func Murmur3Finalizer(key uint64) uint64 {
	key++
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return key
}

// WangMix is Thomas Wang's 64-bit integer mixer, as proposed for
// HyperLogLog use by github.com/dnbaker/hll.
func WangMix(key uint64) uint64 {
	key = ^key + (key << 21)
	key ^= key >> 24
	key = (key + (key << 3)) + (key << 8)
	key ^= key >> 14
	key = (key + (key << 2)) + (key << 4)
	key ^= key >> 28
	key += key << 31
	return key
}

// Murmur3Mix mixes u through github.com/twmb/murmur3, using the
// well-maintained library implementation rather than hand-rolling the
// murmur3 body. Unlike Murmur3Finalizer (a single avalanche step), this
// runs u's little-endian byte encoding through the full murmur3 body
// hash, which is a cheap way to get the library's mixing quality without
// depending on its unexported finalizer.
func Murmur3Mix(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	return murmur3.Sum64(buf[:])
}

// XXHashMix mixes u through github.com/cespare/xxhash/v2. It trades a
// little of murmur3's avalanche quality for higher throughput, useful
// when the sketch sits on an insert-heavy hot path.
func XXHashMix(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	return xxhash.Sum64(buf[:])
}
