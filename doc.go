// Package wavelet implements a wavelet matrix: a succinct, static index over
// a sequence of non-negative integers that answers positional, rank/select
// and two-dimensional range queries using only per-level bit-vector rank and
// select, with no explicit pointers between nodes.
//
// Build a matrix from a sequence with Builder, then query it with
// WaveletMatrix's methods. A built matrix is immutable and safe for
// concurrent use by multiple goroutines.
package wavelet
