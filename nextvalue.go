package wavelet

// RangeMinimumQuery returns the smallest symbol occurring in [i, j].
// Behavior is undefined if i > j.
func (wm *WaveletMatrix) RangeMinimumQuery(i, j uint64) uint64 {
	if wm.size == 0 {
		return 0
	}
	return wm.rangeMinimumQuery(wm.Root(), RangeOf(i, j), 0)
}

func (wm *WaveletMatrix) rangeMinimumQuery(v Node, r Range, res uint64) uint64 {
	if wm.IsLeaf(v) {
		return res
	}
	leftV, rightV := wm.Expand(v)
	leftR, rightR := wm.ExpandRange(v, r)
	res <<= 1
	if leftR.Empty() {
		return wm.rangeMinimumQuery(rightV, rightR, res|1)
	}
	return wm.rangeMinimumQuery(leftV, leftR, res)
}

// RangeNextValue returns the smallest symbol that is both >= x and present
// in [i, j]. Returns 0 if no such symbol exists or x cannot be represented
// in Levels() bits; use RangeNextValuePos to disambiguate a genuine 0 result
// from "not found" at a specific position.
func (wm *WaveletMatrix) RangeNextValue(x, i, j uint64) uint64 {
	if wm.size == 0 || wm.symbolOutOfRange(x) || i > j {
		return 0
	}
	v, ok := wm.rangeNextValue(wm.Root(), x, RangeOf(i, j), 0, 0)
	if !ok {
		return 0
	}
	return v
}

func (wm *WaveletMatrix) rangeNextValue(v Node, x uint64, r Range, depth uint32, res uint64) (uint64, bool) {
	if r.Empty() {
		return 0, false
	}
	if depth == wm.levels {
		return res, true
	}
	leftV, rightV := wm.Expand(v)
	leftR, rightR := wm.ExpandRange(v, r)
	bit := bitAt(x, wm.levels, depth)
	res <<= 1
	if bit {
		return wm.rangeNextValue(rightV, x, rightR, depth+1, res|1)
	}
	if y, ok := wm.rangeNextValue(leftV, x, leftR, depth+1, res); ok {
		return y, true
	}
	return wm.rangeNextValueMin(rightV, rightR, depth+1, res|1)
}

func (wm *WaveletMatrix) rangeNextValueMin(v Node, r Range, depth uint32, res uint64) (uint64, bool) {
	if r.Empty() {
		return 0, false
	}
	if depth == wm.levels {
		return res, true
	}
	leftV, rightV := wm.Expand(v)
	leftR, rightR := wm.ExpandRange(v, r)
	res <<= 1
	if leftR.Empty() {
		return wm.rangeNextValueMin(rightV, rightR, depth+1, res|1)
	}
	return wm.rangeNextValueMin(leftV, leftR, depth+1, res)
}

// RangeNextValuePos is RangeNextValue plus the leftmost position in [i, j]
// holding that value. Returns (0, j+1) if no symbol >= x is present.
//
// Rather than porting wm_int.hpp's dual recursion (which threads a
// to-be-reconstructed position through both mutually recursive descents via
// a "j+2" sentinel), this composes RangeNextValue with Rank and Select: once
// the answer value v is known to occur in [i, j], its leftmost occurrence at
// or after i is exactly the (Rank(i, v)+1)-th occurrence of v overall.
func (wm *WaveletMatrix) RangeNextValuePos(x, i, j uint64) (value uint64, pos uint64) {
	if wm.size == 0 || wm.symbolOutOfRange(x) || i > j {
		return 0, j + 1
	}
	v, ok := wm.rangeNextValue(wm.Root(), x, RangeOf(i, j), 0, 0)
	if !ok {
		return 0, j + 1
	}
	p := wm.Select(wm.Rank(i, v)+1, v)
	return v, p
}
