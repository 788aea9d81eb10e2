package hll

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for p := uint8(4); p <= 18; p++ {
		for i := 0; i < 2000; i++ {
			h := rng.Uint64()
			encoded := encode(h, p)
			assert.Equal(t, getIndex(h, p), decodeIndex(encoded, p), "index mismatch at p=%d h=%x", p, h)
			assert.Equal(t, getRank(h, p), decodeRank(encoded, p), "rank mismatch at p=%d h=%x", p, h)
		}
	}
}

func TestEncodeFlagBitSemantics(t *testing.T) {
	// A hash whose bits between p and pPrime are all zero must be
	// encoded with the explicit-rank flag set.
	p := uint8(10)
	h := uint64(0b1010) << (64 - 4) // only the top 4 bits are set, rest zero
	encoded := encode(h, p)
	assert.Equal(t, uint32(1), encoded&1)

	// A hash with a set bit between p and pPrime needs no explicit rank.
	h2 := uint64(1) << (64 - 20) // bit within [p, pPrime)
	encoded2 := encode(h2, p)
	assert.Equal(t, uint32(0), encoded2&1)
}
