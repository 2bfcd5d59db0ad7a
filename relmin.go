package wavelet

// RelMinObjMaj returns the leftmost position p >= lb such that the symbol at
// p lies in [vlb, vrb]. Returns Size()+1 if no such position exists.
//
// This ports wm_int.hpp's clean _rel_min_obj_maj (the one built on
// expand/rank), not the historical _rel_min_obj_maj_ant variant.
func (wm *WaveletMatrix) RelMinObjMaj(vlb, vrb, lb uint64) uint64 {
	if vrb >= wm.effectiveSpan() {
		vrb = wm.effectiveSpan() - 1
	}
	notFound := wm.size + 1
	if vlb > vrb || lb >= wm.size {
		return notFound
	}
	return wm.relMinObjMaj(wm.Root(), vlb, vrb, RangeOf(lb, wm.size-1), 0)
}

func (wm *WaveletMatrix) relMinObjMaj(v Node, vlb, vrb uint64, r Range, ilb uint64) uint64 {
	notFound := wm.size + 1
	if r.Empty() {
		return notFound
	}
	if wm.IsLeaf(v) {
		return r.Lo
	}
	irb := ilb + (uint64(1) << (wm.levels - v.Level))
	if vlb <= ilb && irb-1 <= vrb {
		return r.Lo
	}
	mid := (ilb + irb) >> 1
	leftV, rightV, leftR, rightR, rnk := wm.expandWithRank(v, r)

	ans1, oldAns1 := notFound, notFound
	if !leftR.Empty() && mid != 0 && vlb < mid {
		oldAns1 = wm.relMinObjMaj(leftV, vlb, minU64(vrb, mid-1), leftR, ilb)
		if oldAns1 != notFound {
			ans1 = wm.layers[v.Level].Select0(v.Offset-rnk+oldAns1) - v.Offset
		}
	}

	ans2 := notFound
	if !rightR.Empty() && vrb >= mid {
		searchR := rightR
		if ans1 != notFound {
			bound := rightR.Lo + ans1 - oldAns1 - 1
			hi := minU64(rightR.Hi(), bound)
			if hi < rightR.Lo {
				searchR = Range{}
			} else {
				searchR = Range{Lo: rightR.Lo, N: hi - rightR.Lo + 1}
			}
		}
		raw := wm.relMinObjMaj(rightV, maxU64(mid, vlb), vrb, searchR, mid)
		if raw != notFound {
			ans2 = wm.layers[v.Level].Select1(rnk+raw) - v.Offset
		} else if ans1 != notFound {
			return ans1
		}
	}

	return minU64(ans1, ans2)
}
