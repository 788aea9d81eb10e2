// Package hll implements a HyperLogLog++-style cardinality sketch: a
// compact, mergeable summary of a stream of 64-bit items that answers
// "how many distinct items have been observed" within a bounded relative
// error, using memory many orders of magnitude smaller than the distinct
// set itself.
//
// A Sketch holds one of two representations at a time. While the
// observed cardinality is small it keeps a sorted list of encoded hashes
// at a higher precision (the sparse representation); once that list
// grows past a threshold it switches, permanently until Reset, to a
// fixed-size array of per-bucket rank registers (the dense
// representation). Two estimators are provided: Cardinality (the
// Flajolet-Heule estimator with empirical bias correction) and
// ErtlCardinality (Ertl's improved estimator using sigma/tau series),
// both operating over either representation.
//
// The package does not hash items itself: callers supply an already
// 64-bit item together with a mixer function (see the sibling mixer
// package) chosen at construction time. A Sketch is not safe for
// concurrent mutation; callers must serialize Add and Merge calls
// themselves, though read-only cardinality queries may run concurrently
// with each other provided no mutation is in flight.
package hll
