package wavelet

import "math/rand"

// buildRandomSequence returns a random sequence of n values in [0, dim) and
// the WaveletMatrix built from it.
func buildRandomSequence(n int, dim uint64) ([]uint64, *WaveletMatrix) {
	vals := make([]uint64, n)
	b := NewBuilder()
	for i := range vals {
		vals[i] = uint64(rand.Int63n(int64(dim)))
		b.PushBack(vals[i])
	}
	wm, err := b.Build()
	if err != nil {
		panic(err)
	}
	return vals, wm
}

// buildSparseAlphabetSequence returns a sequence drawn from a small, widely
// spaced set of symbols, and the WaveletMatrix built from it. Used to catch
// bugs that only show up when the distinct symbol count (Sigma) is far
// smaller than the maximum symbol value — something a dense-alphabet
// fixture (distinct count == max+1) can never exercise.
func buildSparseAlphabetSequence(n int) ([]uint64, *WaveletMatrix) {
	alphabet := []uint64{0, 5, 9, 40}
	vals := make([]uint64, n)
	b := NewBuilder()
	for i := range vals {
		vals[i] = alphabet[rand.Intn(len(alphabet))]
		b.PushBack(vals[i])
	}
	wm, err := b.Build()
	if err != nil {
		panic(err)
	}
	return vals, wm
}

func refRank(vals []uint64, i uint64, c uint64) uint64 {
	var n uint64
	for _, v := range vals[:i] {
		if v == c {
			n++
		}
	}
	return n
}

func refSelect(vals []uint64, k uint64, c uint64) uint64 {
	var seen uint64
	for i, v := range vals {
		if v == c {
			seen++
			if seen == k {
				return uint64(i)
			}
		}
	}
	return uint64(len(vals))
}
