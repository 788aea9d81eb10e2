package hll

import "fmt"

const (
	// minPrecision is the smallest precision a Sketch may be constructed
	// with: 2^4 = 16 registers.
	minPrecision = 4
	// maxPrecision is the largest precision a Sketch may be constructed
	// with: 2^18 = 262144 registers.
	maxPrecision = 18

	// pPrime is the secondary precision used to key the sparse
	// representation. It is fixed, not configurable: higher precision
	// here buys better accuracy while the sketch is still small, at the
	// cost of 4 bytes per sparse entry instead of 1 dense byte.
	pPrime = 25
	// mPrime is 2^pPrime, the number of distinct p'-indices.
	mPrime = 1 << pPrime

	// sparseToDenseDivisor is the divisor in the sparse->dense switch
	// threshold: the sketch converts to dense once len(sparseList) >
	// m/sparseToDenseDivisor. Kept as a named constant, not a literal
	// "4", so the crossover point can be tuned without touching the
	// switch logic itself.
	sparseToDenseDivisor = 4
)

// checkPrecision validates that p is a legal Sketch precision, returning
// a configuration error if not.
func checkPrecision(p int) error {
	if p < minPrecision || p > maxPrecision {
		return fmt.Errorf("hll: precision %d out of range [%d, %d]", p, minPrecision, maxPrecision)
	}
	return nil
}
