package wavelet

// Mark sets bit bc in every node of the caller-owned bitmask tree bWt along
// the root-to-leaf path for symbol c. bWt is indexed 1-based (root is index
// 1; a node's children are 2*pos and 2*pos+1), sized by the caller to at
// least 2^(Levels()+1).
func (wm *WaveletMatrix) Mark(c uint64, bWt []uint64, bc uint64) {
	pos := uint64(1)
	offset := uint64(0)
	for lvl := uint32(0); lvl < wm.levels; lvl++ {
		bWt[pos] |= bc
		rsd := wm.layers[lvl]
		if bitAt(c, wm.levels, lvl) {
			offset = rsd.ZeroNum() + rsd.Rank(offset, true)
			pos = 2*pos + 1
		} else {
			offset = rsd.Rank(offset, false)
			pos = 2 * pos
		}
	}
	bWt[pos] |= bc
}

// Unmark clears every bit in bWt along the root-to-leaf path for symbol c.
func (wm *WaveletMatrix) Unmark(c uint64, bWt []uint64) {
	pos := uint64(1)
	offset := uint64(0)
	for lvl := uint32(0); lvl < wm.levels; lvl++ {
		bWt[pos] = 0
		rsd := wm.layers[lvl]
		if bitAt(c, wm.levels, lvl) {
			offset = rsd.ZeroNum() + rsd.Rank(offset, true)
			pos = 2*pos + 1
		} else {
			offset = rsd.Rank(offset, false)
			pos = 2 * pos
		}
	}
	bWt[pos] = 0
}

// AllActivePValuesInRange returns every distinct symbol occurring in
// [lb, rb] whose mark-tree path carries at least one bit in common with d,
// pruning any subtree whose node has none of d set in bWt.
func (wm *WaveletMatrix) AllActivePValuesInRange(lb, rb uint64, bWt []uint64, d uint64) []uint64 {
	if wm.size == 0 || lb > rb {
		return nil
	}
	var res []uint64
	wm.allActiveP(wm.Root(), RangeOf(lb, rb), 0, bWt, d, 1, &res)
	return res
}

func (wm *WaveletMatrix) allActiveP(v Node, r Range, ilb uint64, bWt []uint64, d, pos uint64, res *[]uint64) {
	if bWt[pos]&d == 0 {
		return
	}
	if r.Empty() {
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
		wm.allActiveP(leftV, leftR, ilb, bWt, d, 2*pos, res)
	}
	if !rightR.Empty() {
		wm.allActiveP(rightV, rightR, mid, bWt, d, 2*pos+1, res)
	}
}

// ActiveContribution is one symbol's newly-covered bits from
// AllActiveSValuesInRange.
type ActiveContribution struct {
	Sym  uint64
	Mask uint64
}

// AllActiveSValuesInRange walks [lb, rb], and for each distinct symbol
// found, reports the subset of d not already recorded in dWt for that
// symbol's leaf, then records it. Internal nodes of dWt are updated on
// unwind to the intersection of their two children, so a later call can
// prune subtrees where every descendant leaf already has all of d set.
func (wm *WaveletMatrix) AllActiveSValuesInRange(lb, rb uint64, dWt []uint64, d uint64) []ActiveContribution {
	if wm.size == 0 || lb > rb {
		return nil
	}
	var res []ActiveContribution
	wm.allActiveS(wm.Root(), RangeOf(lb, rb), 0, dWt, d, 1, &res)
	return res
}

func (wm *WaveletMatrix) allActiveS(v Node, r Range, ilb uint64, dWt []uint64, d, pos uint64, res *[]ActiveContribution) uint64 {
	if (dWt[pos] | d) == dWt[pos] {
		return dWt[pos]
	}
	if r.Empty() {
		return dWt[pos]
	}
	if wm.IsLeaf(v) {
		contribution := d &^ dWt[pos]
		dWt[pos] |= contribution
		*res = append(*res, ActiveContribution{Sym: v.Sym, Mask: contribution})
		return dWt[pos]
	}
	irb := ilb + (uint64(1) << (wm.levels - v.Level))
	mid := (ilb + irb) >> 1
	leftV, rightV := wm.Expand(v)
	leftR, rightR := wm.ExpandRange(v, r)
	left, right := dWt[2*pos], dWt[2*pos+1]
	if !leftR.Empty() && mid != 0 {
		left = wm.allActiveS(leftV, leftR, ilb, dWt, d, 2*pos, res)
	}
	if !rightR.Empty() {
		right = wm.allActiveS(rightV, rightR, mid, dWt, d, 2*pos+1, res)
	}
	dWt[pos] = left & right
	return dWt[pos]
}
