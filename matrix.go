package wavelet

// WaveletMatrix is a succinct index over a fixed sequence of non-negative
// integers. It is built once (see Builder) and never mutated afterwards.
type WaveletMatrix struct {
	layers []bitLevel
	size   uint64
	levels uint32
	sigma  uint64
}

// Size returns N, the length of the indexed sequence.
func (wm *WaveletMatrix) Size() uint64 { return wm.size }

// Levels returns L, the number of bits used per symbol.
func (wm *WaveletMatrix) Levels() uint32 { return wm.levels }

// Sigma returns the number of distinct symbols actually present.
func (wm *WaveletMatrix) Sigma() uint64 { return wm.sigma }

// maxSymbol reports the exclusive upper bound 2^L on representable symbols.
// It returns 0 when L >= 64, where 2^L does not fit in a uint64.
func (wm *WaveletMatrix) maxSymbol() uint64 {
	if wm.levels >= 64 {
		return 0 // caller must treat this as "no symbol is out of range"
	}
	return uint64(1) << wm.levels
}

func (wm *WaveletMatrix) symbolOutOfRange(c uint64) bool {
	return wm.levels < 64 && c >= wm.maxSymbol()
}

// Access returns the symbol at position i. Panics if i >= Size().
func (wm *WaveletMatrix) Access(i uint64) uint64 {
	if i >= wm.size {
		panic("wavelet: Access index out of range")
	}
	var val uint64
	pos := i
	for lvl := uint32(0); lvl < wm.levels; lvl++ {
		rsd := wm.layers[lvl]
		val <<= 1
		if rsd.Bit(pos) {
			val |= 1
			pos = rsd.ZeroNum() + rsd.Rank(pos, true)
		} else {
			pos = rsd.Rank(pos, false)
		}
	}
	return val
}

// InverseSelect returns both the symbol at position i and the number of
// occurrences of that symbol among positions [0, i). Panics if i >= Size().
func (wm *WaveletMatrix) InverseSelect(i uint64) (rank uint64, c uint64) {
	if i >= wm.size {
		panic("wavelet: InverseSelect index out of range")
	}
	pos := i
	start := uint64(0)
	for lvl := uint32(0); lvl < wm.levels; lvl++ {
		rsd := wm.layers[lvl]
		c <<= 1
		if rsd.Bit(pos) {
			c |= 1
			pos = rsd.ZeroNum() + rsd.Rank(pos, true)
			start = rsd.ZeroNum() + rsd.Rank(start, true)
		} else {
			pos = rsd.Rank(pos, false)
			start = rsd.Rank(start, false)
		}
	}
	return pos - start, c
}

// Rank returns the number of occurrences of c among positions [0, i).
// Returns 0 if c cannot be represented in Levels() bits. Panics if i > Size().
func (wm *WaveletMatrix) Rank(i, c uint64) uint64 {
	if i > wm.size {
		panic("wavelet: Rank index out of range")
	}
	if wm.symbolOutOfRange(c) {
		return 0
	}
	pos := i
	start := uint64(0)
	for lvl := uint32(0); lvl < wm.levels; lvl++ {
		rsd := wm.layers[lvl]
		if bitAt(c, wm.levels, lvl) {
			pos = rsd.ZeroNum() + rsd.Rank(pos, true)
			start = rsd.ZeroNum() + rsd.Rank(start, true)
		} else {
			pos = rsd.Rank(pos, false)
			start = rsd.Rank(start, false)
		}
	}
	return pos - start
}

// pathStep records, for one level along a root-to-leaf descent, the base
// offset at that level (the node's offset, or for RangeSearch2D the start of
// the query range within the level) and the number of ones before it. Used by the upward (select-based) phase of Select, SelectNext and
// the position-reconstruction in RangeSearch2D.
type pathStep struct {
	offset uint64
	rankB  uint64
}

// descendPath follows c's bits from the root for Levels() steps, tracking r
// the way select's downward phase does: r starts as the caller's rank
// argument and becomes, at each level, the count of ones (or zeros) among
// the first r positions of the current node. It records the path taken so
// ascendPath can later reconstruct positions via select.
func (wm *WaveletMatrix) descendPath(c uint64, r uint64) ([]pathStep, uint64) {
	steps := make([]pathStep, wm.levels)
	b := uint64(0)
	for lvl := uint32(0); lvl < wm.levels; lvl++ {
		rsd := wm.layers[lvl]
		rankB := rsd.Rank(b, true)
		ones := rsd.Rank(b+r, true) - rankB
		steps[lvl] = pathStep{offset: b, rankB: rankB}
		if bitAt(c, wm.levels, lvl) {
			r = ones
			b = rsd.ZeroNum() + rankB
		} else {
			r = r - ones
			b -= rankB
		}
	}
	return steps, r
}

// ascendPath is the inverse of descendPath: given the recorded path and a
// 1-indexed local rank i at the leaf, it lifts i back up to the root,
// returning the corresponding 1-indexed position.
func (wm *WaveletMatrix) ascendPath(c uint64, steps []pathStep, i uint64) uint64 {
	for lvl := int(wm.levels) - 1; lvl >= 0; lvl-- {
		rsd := wm.layers[lvl]
		st := steps[lvl]
		if bitAt(c, wm.levels, uint32(lvl)) {
			i = rsd.Select1(st.rankB+i-1) - st.offset + 1
		} else {
			i = rsd.Select0(st.offset-st.rankB+i-1) - st.offset + 1
		}
	}
	return i
}

// Select returns the position of the k-th (1-indexed) occurrence of c.
// Behavior is undefined if k is outside [1, Rank(Size(), c)].
func (wm *WaveletMatrix) Select(k, c uint64) uint64 {
	steps, _ := wm.descendPath(c, k)
	return wm.ascendPath(c, steps, k) - 1
}

// SelectNext returns the position of the first occurrence of c at or after
// position i, together with the number of occurrences of c before i. n is
// the number of occurrences of c to consider (normally Rank(Size(), c)):
// when the occurrences of c before i already number n or more, it returns
// (0, 0). If n exceeds the actual number of occurrences of c, the result
// for an i past the last occurrence is undefined, as for Select.
func (wm *WaveletMatrix) SelectNext(i, c, n uint64) (pos uint64, priorCount uint64) {
	steps, r := wm.descendPath(c, i)
	newI := r + 1
	if newI > n {
		return 0, 0
	}
	return wm.ascendPath(c, steps, newI) - 1, r
}
