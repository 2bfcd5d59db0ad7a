package wavelet

// HalfOpenRange is a half-open position range [Bpos, Epos), used by the
// teacher-style batch operations (Quantile, Intersect, RangedRank*) that
// operate directly on raw position bounds rather than through Node/Range.
type HalfOpenRange struct {
	Bpos, Epos uint64
}

// Quantile returns the (k+1)-th smallest symbol among positions [bpos, epos).
func (wm *WaveletMatrix) Quantile(bpos, epos, k uint64) uint64 {
	var val uint64
	for lvl := uint32(0); lvl < wm.levels; lvl++ {
		rsd := wm.layers[lvl]
		val <<= 1
		nzB := rsd.Rank(bpos, false)
		nzE := rsd.Rank(epos, false)
		nz := nzE - nzB
		if k < nz {
			bpos, epos = nzB, nzE
		} else {
			k -= nz
			val |= 1
			bpos = rsd.ZeroNum() + bpos - nzB
			epos = rsd.ZeroNum() + epos - nzE
		}
	}
	return val
}

// Intersect returns every symbol occurring in at least k of the given
// position ranges.
func (wm *WaveletMatrix) Intersect(ranges []HalfOpenRange, k int) []uint64 {
	if wm.size == 0 || k <= 0 || len(ranges) < k {
		return nil
	}
	return wm.intersectHelper(ranges, k, 0, 0)
}

func (wm *WaveletMatrix) intersectHelper(ranges []HalfOpenRange, k int, depth uint32, prefix uint64) []uint64 {
	if depth == wm.levels {
		return []uint64{prefix}
	}
	rsd := wm.layers[depth]
	var zeroRanges, oneRanges []HalfOpenRange
	for _, rr := range ranges {
		nzB := rsd.Rank(rr.Bpos, false)
		nzE := rsd.Rank(rr.Epos, false)
		noB := rsd.ZeroNum() + rr.Bpos - nzB
		noE := rsd.ZeroNum() + rr.Epos - nzE
		if nzE > nzB {
			zeroRanges = append(zeroRanges, HalfOpenRange{nzB, nzE})
		}
		if noE > noB {
			oneRanges = append(oneRanges, HalfOpenRange{noB, noE})
		}
	}
	var ret []uint64
	if len(zeroRanges) >= k {
		ret = append(ret, wm.intersectHelper(zeroRanges, k, depth+1, prefix<<1)...)
	}
	if len(oneRanges) >= k {
		ret = append(ret, wm.intersectHelper(oneRanges, k, depth+1, (prefix<<1)|1)...)
	}
	return ret
}

// rankComparison selects which comparison RangedRankOp computes.
type rankComparison int

const (
	RankEqual rankComparison = iota
	RankLessThan
	RankMoreThan
)

// RangedRankOp counts, among positions in r, how many compare to val as op
// demands (equal, strictly less, or strictly greater, by numeric symbol
// value).
func (wm *WaveletMatrix) RangedRankOp(r HalfOpenRange, val uint64, op rankComparison) uint64 {
	var rankLess, rankMore uint64
	bpos, epos := r.Bpos, r.Epos
	for depth := uint32(0); depth < wm.levels; depth++ {
		rsd := wm.layers[depth]
		if bitAt(val, wm.levels, depth) {
			if op == RankLessThan {
				rankLess += rsd.Rank(epos, false) - rsd.Rank(bpos, false)
			}
			b1, e1 := rsd.Rank(bpos, true), rsd.Rank(epos, true)
			bpos = rsd.ZeroNum() + b1
			epos = rsd.ZeroNum() + e1
		} else {
			if op == RankMoreThan {
				rankMore += rsd.Rank(epos, true) - rsd.Rank(bpos, true)
			}
			bpos = rsd.Rank(bpos, false)
			epos = rsd.Rank(epos, false)
		}
	}
	switch op {
	case RankLessThan:
		return rankLess
	case RankMoreThan:
		return rankMore
	default:
		return epos - bpos
	}
}

// RangedRankLessThan counts positions in r whose symbol is strictly less
// than val.
func (wm *WaveletMatrix) RangedRankLessThan(r HalfOpenRange, val uint64) uint64 {
	return wm.RangedRankOp(r, val, RankLessThan)
}

// RangedRankMoreThan counts positions in r whose symbol is strictly greater
// than val.
func (wm *WaveletMatrix) RangedRankMoreThan(r HalfOpenRange, val uint64) uint64 {
	return wm.RangedRankOp(r, val, RankMoreThan)
}

// RangedRankRange counts positions in r whose symbol lies in [lo, hi].
func (wm *WaveletMatrix) RangedRankRange(r HalfOpenRange, lo, hi uint64) uint64 {
	total := r.Epos - r.Bpos
	return total - wm.RangedRankLessThan(r, lo) - wm.RangedRankMoreThan(r, hi)
}
