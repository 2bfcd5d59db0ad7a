package wavelet

import (
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func refValuesInRange(vals []uint64, lb, rb uint64) []uint64 {
	seen := make(map[uint64]bool)
	for _, v := range vals[lb : rb+1] {
		seen[v] = true
	}
	out := make([]uint64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func refCountInValueRange(vals []uint64, lb, rb, vlb, vrb uint64) uint64 {
	var n uint64
	for _, v := range vals[lb : rb+1] {
		if v >= vlb && v <= vrb {
			n++
		}
	}
	return n
}

func refMin(vals []uint64, i, j uint64) uint64 {
	m := vals[i]
	for _, v := range vals[i : j+1] {
		if v < m {
			m = v
		}
	}
	return m
}

// refRelMinObjMaj scans forward from lb for the first position whose value
// falls in [vlb, vrb], returning len(vals)+1 if none exists.
func refRelMinObjMaj(vals []uint64, vlb, vrb, lb uint64) uint64 {
	for p := lb; p < uint64(len(vals)); p++ {
		if vals[p] >= vlb && vals[p] <= vrb {
			return p
		}
	}
	return uint64(len(vals)) + 1
}

func TestRangeSearch2D(t *testing.T) {
	Convey("Given a wavelet matrix built from a random sequence", t, func() {
		const n = 300
		const dim = uint64(41)
		vals, wm := buildRandomSequence(n, dim)

		Convey("CountRangeSearch2D matches a direct count over many subranges", func() {
			for lb := uint64(0); lb < uint64(n); lb += 23 {
				for rb := lb; rb < uint64(n); rb += 29 {
					for vlb := uint64(0); vlb < dim; vlb += 11 {
						for vrb := vlb; vrb < dim; vrb += 13 {
							got := wm.CountRangeSearch2D(lb, rb, vlb, vrb)
							want := refCountInValueRange(vals, lb, rb, vlb, vrb)
							So(got, ShouldEqual, want)
						}
					}
				}
			}
		})

		Convey("CountRangeSearch2D agrees with RangeSearch2D's count on a sparse alphabet", func() {
			const sparseN = 240
			sparseVals, sparseWM := buildSparseAlphabetSequence(sparseN)
			So(sparseWM.Sigma(), ShouldBeLessThan, uint64(1)<<sparseWM.Levels())
			for lb := uint64(0); lb < uint64(sparseN); lb += 19 {
				for rb := lb; rb < uint64(sparseN); rb += 31 {
					for vlb := uint64(0); vlb <= 40; vlb += 4 {
						for vrb := vlb; vrb <= 40; vrb += 5 {
							count, pts := sparseWM.RangeSearch2D(lb, rb, vlb, vrb, true)
							So(count, ShouldEqual, sparseWM.CountRangeSearch2D(lb, rb, vlb, vrb))
							So(count, ShouldEqual, refCountInValueRange(sparseVals, lb, rb, vlb, vrb))
							So(uint64(len(pts)), ShouldEqual, count)
						}
					}
				}
			}
		})

		Convey("RangeSearch2D reports positions whose values fall in range", func() {
			lb, rb := uint64(10), uint64(120)
			vlb, vrb := uint64(5), uint64(15)
			count, pts := wm.RangeSearch2D(lb, rb, vlb, vrb, true)
			So(count, ShouldEqual, refCountInValueRange(vals, lb, rb, vlb, vrb))
			So(uint64(len(pts)), ShouldEqual, count)
			for _, p := range pts {
				So(p.Pos, ShouldBeBetween, lb-1, rb+1)
				So(vals[p.Pos], ShouldEqual, p.Sym)
				So(p.Sym, ShouldBeBetween, vlb-1, vrb+1)
			}
		})

		Convey("RangeSearch2D reports exactly the reference positions for several lb>0 subranges", func() {
			for _, bounds := range [][4]uint64{
				{1, n - 1, 0, dim - 1},
				{17, 283, 3, 30},
				{150, 299, 20, 40},
			} {
				lb, rb, vlb, vrb := bounds[0], bounds[1], bounds[2], bounds[3]
				_, pts := wm.RangeSearch2D(lb, rb, vlb, vrb, true)
				got := make(map[uint64]uint64, len(pts))
				for _, p := range pts {
					got[p.Pos] = p.Sym
				}
				want := make(map[uint64]uint64)
				for p := lb; p <= rb; p++ {
					if vals[p] >= vlb && vals[p] <= vrb {
						want[p] = vals[p]
					}
				}
				So(got, ShouldResemble, want)
			}
		})
	})
}

func TestRangeMinimumAndNextValue(t *testing.T) {
	Convey("Given a wavelet matrix built from a random sequence", t, func() {
		const n = 200
		const dim = uint64(53)
		vals, wm := buildRandomSequence(n, dim)

		Convey("RangeMinimumQuery matches a direct scan", func() {
			for i := uint64(0); i < uint64(n); i += 17 {
				for j := i; j < uint64(n); j += 19 {
					So(wm.RangeMinimumQuery(i, j), ShouldEqual, refMin(vals, i, j))
				}
			}
		})

		Convey("RangeNextValue finds the smallest value >= x present in range", func() {
			for x := uint64(0); x < dim; x += 7 {
				i, j := uint64(0), uint64(n-1)
				got := wm.RangeNextValue(x, i, j)
				var want uint64
				found := false
				for _, v := range vals {
					if v >= x && (!found || v < want) {
						want, found = v, true
					}
				}
				if found {
					So(got, ShouldEqual, want)
				} else {
					So(got, ShouldEqual, 0)
				}
			}
		})

		Convey("RangeNextValuePos locates the leftmost matching position", func() {
			x, i, j := uint64(10), uint64(5), uint64(n-1)
			v, pos := wm.RangeNextValuePos(x, i, j)
			if pos <= j {
				So(vals[pos], ShouldEqual, v)
				So(v, ShouldBeGreaterThanOrEqualTo, x)
				for k := i; k < pos; k++ {
					So(vals[k] < x || vals[k] != v, ShouldBeTrue)
				}
			}
		})
	})
}

func TestRelMinObjMaj(t *testing.T) {
	Convey("Given a wavelet matrix built from a random sequence", t, func() {
		const n = 180
		const dim = uint64(37)
		vals, wm := buildRandomSequence(n, dim)

		Convey("RelMinObjMaj matches a direct forward scan over many bounds", func() {
			for vlb := uint64(0); vlb < dim; vlb += 5 {
				for vrb := vlb; vrb < dim; vrb += 7 {
					for lb := uint64(0); lb < uint64(n); lb += 13 {
						got := wm.RelMinObjMaj(vlb, vrb, lb)
						want := refRelMinObjMaj(vals, vlb, vrb, lb)
						So(got, ShouldEqual, want)
					}
				}
			}
		})

		Convey("RelMinObjMaj matches a direct forward scan on a sparse alphabet", func() {
			const sparseN = 200
			sparseVals, sparseWM := buildSparseAlphabetSequence(sparseN)
			So(sparseWM.Sigma(), ShouldBeLessThan, uint64(1)<<sparseWM.Levels())
			for vlb := uint64(0); vlb <= 40; vlb += 3 {
				for vrb := vlb; vrb <= 40; vrb += 4 {
					for lb := uint64(0); lb < uint64(sparseN); lb += 11 {
						got := sparseWM.RelMinObjMaj(vlb, vrb, lb)
						want := refRelMinObjMaj(sparseVals, vlb, vrb, lb)
						So(got, ShouldEqual, want)
					}
				}
			}
		})
	})
}

func TestAllValuesInRange(t *testing.T) {
	Convey("Given a wavelet matrix built from a random sequence", t, func() {
		const n = 150
		const dim = uint64(23)
		vals, wm := buildRandomSequence(n, dim)

		Convey("AllValuesInRange returns exactly the distinct values present", func() {
			lb, rb := uint64(10), uint64(90)
			got := wm.AllValuesInRange(lb, rb)
			sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
			So(got, ShouldResemble, refValuesInRange(vals, lb, rb))
		})

		Convey("AllValuesInRangeBounded never returns more than the bound", func() {
			lb, rb := uint64(0), uint64(149)
			got := wm.AllValuesInRangeBounded(lb, rb, 3)
			So(len(got), ShouldBeLessThanOrEqualTo, 3)
		})
	})
}
