package hll

import (
	"github.com/kmersketch/cardinality/internal"
	"golang.org/x/exp/constraints"
)

// extractHighBits returns the top k bits of a 64-bit hash, right
// justified, as an integer in [0, 2^k).
func extractHighBits(h uint64, k uint8) uint64 {
	return h >> (64 - k)
}

// extractHighBits32 returns the top k bits of a 32-bit word, right
// justified.
func extractHighBits32(h uint32, k uint8) uint32 {
	return h >> (32 - k)
}

// getIndex returns the top p bits of the 64-bit hash h as an integer in
// [0, 2^p), selecting which register h updates.
func getIndex(h uint64, p uint8) int {
	return int(h >> (64 - p))
}

// getRank shifts the top p bits off h, ORs in p trailing ones so the
// result is never all-zero, and returns one plus the number of leading
// zero bits of what remains. The result lies in [1, 64-p+1].
func getRank(h uint64, p uint8) uint8 {
	trailingOnes := uint64(1)<<p - 1
	rankBits := (h << p) | trailingOnes
	return internal.CountLeadingZerosInU64(rankBits) + 1
}

// getRank32 is getRank specialized to a 32-bit surrogate hash, used to
// recover a rank from a flag=0 encoded sparse-list entry.
func getRank32(h uint32, p uint8) uint8 {
	trailingOnes := uint32(1)<<p - 1
	rankBits := (h << p) | trailingOnes
	return internal.CountLeadingZerosInU32(rankBits) + 1
}

// maxOf returns the larger of a and b. Used by the dense register
// max-merge and rank updates, where "keep the observation that implies
// more leading zeros" is the only rule those sites apply.
func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
