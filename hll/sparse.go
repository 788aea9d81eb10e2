package hll

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// sparseList is a sorted, deduplicated (by p'-index) slice of encoded
// hashes. It is used in place of the dense register array while the
// observed cardinality is small.
type sparseList []uint32

// insert adds the encoded hash v to the list, maintaining ascending
// order and the invariant that at most one entry exists per p'-index.
// When two entries share a p'-index but differ, the following collision
// rule decides which survives:
//
//   - both entries carry an explicit rank (flag=1): keep the larger
//     value, since a larger stored rank means more leading zeros were
//     observed for that index.
//   - both entries are flag=0: keep the smaller value. This does not
//     obviously follow from the encoding's own semantics, but it pins
//     the original reference implementation's behavior and must not be
//     "fixed" without re-deriving the accuracy guarantees that assume
//     it.
//   - exactly one entry carries flag=1: it wins, since it is the only
//     one of the pair with enough information to recover a rank beyond
//     what the index prefix already implies.
func (s *sparseList) insert(v uint32) {
	list := *s
	pos := sort.Search(len(list), func(i int) bool { return list[i] >= v })
	switch {
	case pos > 0 && extractHighBits32(list[pos-1], pPrime) == extractHighBits32(v, pPrime):
		// a smaller entry with the same p'-index sits just before pos
		list[pos-1] = resolveSparseCollision(list[pos-1], v)
	case pos == len(list):
		*s = append(list, v)
	case list[pos] == v:
		// exact duplicate, nothing to do
	case extractHighBits32(list[pos], pPrime) == extractHighBits32(v, pPrime):
		list[pos] = resolveSparseCollision(list[pos], v)
	default:
		list = append(list, 0)
		copy(list[pos+1:], list[pos:])
		list[pos] = v
		*s = list
	}
}

// resolveSparseCollision picks the surviving entry between two encoded
// hashes that share a p'-index, per the rule documented on insert.
func resolveSparseCollision(existing, v uint32) uint32 {
	existingFlag := existing & 1
	vFlag := v & 1
	if existingFlag == vFlag {
		if vFlag == 1 {
			return maxOf(existing, v)
		}
		return minOf(existing, v)
	}
	if vFlag == 1 {
		return v
	}
	return existing
}

func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
