package hll

import (
	"fmt"

	"github.com/kmersketch/cardinality/mixer"
)

// Sketch is a mergeable cardinality estimator for a stream of 64-bit
// items. See the package doc for the representation it maintains
// internally. A Sketch is not safe for concurrent mutation.
type Sketch struct {
	p     uint8
	mixer mixer.Func

	sparse     bool
	sparseList sparseList
	dense      denseRegisters
}

// New constructs a Sketch at the given precision, starting in the
// sparse representation, using fn to mix items before they are inserted.
// p must be in [4, 18]; fn must be pure and total.
func New(p int, fn mixer.Func) (*Sketch, error) {
	if err := checkPrecision(p); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, fmt.Errorf("hll: mixer function must not be nil")
	}
	return &Sketch{
		p:      uint8(p),
		mixer:  fn,
		sparse: true,
	}, nil
}

// Precision returns the Sketch's configured precision.
func (s *Sketch) Precision() int {
	return int(s.p)
}

// IsSparse reports whether the Sketch currently holds the sparse
// representation.
func (s *Sketch) IsSparse() bool {
	return s.sparse
}

// Add mixes item and inserts the resulting hash into the sketch.
func (s *Sketch) Add(item uint64) {
	h := s.mixer(item)
	if s.sparse {
		s.sparseList.insert(encode(h, s.p))
		if len(s.sparseList) > (1<<s.p)/sparseToDenseDivisor {
			s.switchToDense()
		}
		return
	}
	s.dense.add(h, s.p)
}

// AddBatch inserts every item in items.
func (s *Sketch) AddBatch(items []uint64) {
	for _, item := range items {
		s.Add(item)
	}
}

// Reset empties the sketch back to its initial sparse state.
func (s *Sketch) Reset() {
	s.sparse = true
	s.sparseList = nil
	s.dense = nil
}

// Cardinality returns the Flajolet-Heule cardinality estimate.
func (s *Sketch) Cardinality() (uint64, error) {
	return s.cardinality()
}

// ErtlCardinality returns Ertl's improved cardinality estimate.
func (s *Sketch) ErtlCardinality() uint64 {
	return s.ertlCardinality()
}

// switchToDense converts a sparse Sketch to dense, draining the sparse
// list into a freshly allocated register array. It is a one-way
// transition until Reset.
func (s *Sketch) switchToDense() {
	s.dense = newDenseRegisters(s.p)
	if len(s.sparseList) > 0 {
		s.dense.drainSparse(s.sparseList, s.p)
	}
	s.sparse = false
	s.sparseList = nil
}
