package wavelet

// Point is a (position, symbol) pair reported by RangeSearch2D.
type Point struct {
	Pos uint64
	Sym uint64
}

// RangeSearch2D counts, and if report is true also enumerates, the
// positions in [lb, rb] whose symbol lies in [vlb, vrb].
func (wm *WaveletMatrix) RangeSearch2D(lb, rb, vlb, vrb uint64, report bool) (uint64, []Point) {
	if wm.size == 0 {
		return 0, nil
	}
	if vrb >= wm.effectiveSpan() {
		vrb = wm.effectiveSpan() - 1
	}
	if vlb > vrb || lb > rb {
		return 0, nil
	}
	var count uint64
	var pts []Point
	steps := make([]pathStep, wm.levels)
	wm.rangeSearch2D(wm.Root(), RangeOf(lb, rb), vlb, vrb, 0, steps, report, &count, &pts)
	return count, pts
}

// effectiveSpan returns 2^L, saturating at ^uint64(0) rather than
// overflowing when L == 64.
func (wm *WaveletMatrix) effectiveSpan() uint64 {
	if wm.levels >= 64 {
		return ^uint64(0)
	}
	return uint64(1) << wm.levels
}

func (wm *WaveletMatrix) rangeSearch2D(v Node, r Range, vlb, vrb, ilb uint64, steps []pathStep, report bool, count *uint64, pts *[]Point) {
	if r.Empty() {
		return
	}
	if wm.IsLeaf(v) {
		if report {
			for j := uint64(1); j <= r.N; j++ {
				pos := steps[0].offset + wm.ascendPath(v.Sym, steps, j) - 1
				*pts = append(*pts, Point{Pos: pos, Sym: v.Sym})
			}
		}
		*count += r.N
		return
	}
	rsd := wm.layers[v.Level]
	steps[v.Level] = pathStep{
		offset: v.Offset + r.Lo,
		rankB:  rsd.Rank(v.Offset+r.Lo, true),
	}
	irb := ilb + (uint64(1) << (wm.levels - v.Level))
	mid := (ilb + irb) >> 1
	leftV, rightV := wm.Expand(v)
	leftR, rightR := wm.ExpandRange(v, r)
	if !leftR.Empty() && mid != 0 && vlb < mid {
		wm.rangeSearch2D(leftV, leftR, vlb, minU64(vrb, mid-1), ilb, steps, report, count, pts)
	}
	if !rightR.Empty() && vrb >= mid {
		wm.rangeSearch2D(rightV, rightR, maxU64(mid, vlb), vrb, mid, steps, report, count, pts)
	}
}

// CountRangeSearch2D is RangeSearch2D without position reconstruction,
// additionally pruning whole subtrees whose symbol interval is fully
// contained in [vlb, vrb].
func (wm *WaveletMatrix) CountRangeSearch2D(lb, rb, vlb, vrb uint64) uint64 {
	if wm.size == 0 {
		return 0
	}
	if vrb >= wm.effectiveSpan() {
		vrb = wm.effectiveSpan() - 1
	}
	if vlb > vrb || lb > rb {
		return 0
	}
	var count uint64
	wm.countRangeSearch2D(wm.Root(), RangeOf(lb, rb), vlb, vrb, 0, &count)
	return count
}

func (wm *WaveletMatrix) countRangeSearch2D(v Node, r Range, vlb, vrb, ilb uint64, count *uint64) {
	if r.Empty() {
		return
	}
	if wm.IsLeaf(v) {
		*count += r.N
		return
	}
	irb := ilb + (uint64(1) << (wm.levels - v.Level))
	if vlb <= ilb && irb-1 <= vrb {
		*count += r.N
		return
	}
	mid := (ilb + irb) >> 1
	leftV, rightV := wm.Expand(v)
	leftR, rightR := wm.ExpandRange(v, r)
	if !leftR.Empty() && mid != 0 && vlb < mid {
		wm.countRangeSearch2D(leftV, leftR, vlb, minU64(vrb, mid-1), ilb, count)
	}
	if !rightR.Empty() && vrb >= mid {
		wm.countRangeSearch2D(rightV, rightR, maxU64(mid, vlb), vrb, mid, count)
	}
}
