package wavelet

// AllValuesInRange returns every distinct symbol occurring at some position
// in [lb, rb], via a plain two-way descent (no pruning on symbol value).
func (wm *WaveletMatrix) AllValuesInRange(lb, rb uint64) []uint64 {
	if wm.size == 0 || lb > rb {
		return nil
	}
	var res []uint64
	wm.allValuesInRange(wm.Root(), RangeOf(lb, rb), 0, &res, 0, false)
	return res
}

// AllValuesInRangeBounded is AllValuesInRange but stops once bound distinct
// symbols have been collected.
func (wm *WaveletMatrix) AllValuesInRangeBounded(lb, rb, bound uint64) []uint64 {
	if wm.size == 0 || lb > rb {
		return nil
	}
	var res []uint64
	wm.allValuesInRange(wm.Root(), RangeOf(lb, rb), 0, &res, bound, true)
	return res
}

func (wm *WaveletMatrix) allValuesInRange(v Node, r Range, ilb uint64, res *[]uint64, bound uint64, bounded bool) {
	if r.Empty() {
		return
	}
	if bounded && uint64(len(*res)) >= bound {
		return
	}
	if wm.IsLeaf(v) {
		*res = append(*res, v.Sym)
		return
	}
	irb := ilb + (uint64(1) << (wm.levels - v.Level))
	mid := (ilb + irb) >> 1
	leftV, rightV := wm.Expand(v)
	leftR, rightR := wm.ExpandRange(v, r)
	if !leftR.Empty() && mid != 0 {
		wm.allValuesInRange(leftV, leftR, ilb, res, bound, bounded)
	}
	if bounded && uint64(len(*res)) >= bound {
		return
	}
	if !rightR.Empty() {
		wm.allValuesInRange(rightV, rightR, mid, res, bound, bounded)
	}
}
