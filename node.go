package wavelet

// bitLevel is the rank/select surface the matrix needs from a single level's
// bit vector. builder.go wraps github.com/hillbig/rsdic.RSDic in memLevel,
// which supplies Select0/Select1 on top of its Select. The mmap-backed
// github.com/AlexWan0/rsdic-mmap.RSDic used by BuildStreaming does not
// satisfy it directly either — its Bit/Rank/Select/Select0/Select1 each require an explicit
// *rsdicmmap.Readers argument, since the raw bit data lives in a
// memory-mapped file rather than in the value itself — so streaming.go wraps
// it in mmapLevel, which closes over the Readers and satisfies bitLevel on
// its behalf. Query code in matrix.go/range.go/etc. still never cares which
// backend built a given level.
type bitLevel interface {
	Bit(pos uint64) bool
	Rank(pos uint64, bit bool) uint64
	Select(rank uint64, bit bool) uint64
	Select0(rank uint64) uint64
	Select1(rank uint64) uint64
	ZeroNum() uint64
	Num() uint64
}

// Node identifies a node in the conceptual wavelet tree: the subtree rooted
// at level, covering [offset, offset+size) of that level's bit vector, whose
// root-to-here path spells out sym's low (level) bits.
type Node struct {
	Level  uint32
	Offset uint64
	Size   uint64
	Sym    uint64
}

// Range is a half-open-free, inclusive-by-count position range [Lo, Lo+N).
// Using a count instead of an inclusive upper bound sidesteps the unsigned
// underflow that an empty [Lo, Hi] pair would otherwise need wraparound
// tricks for.
type Range struct {
	Lo uint64
	N  uint64
}

// RangeOf builds the inclusive range [lo, hi], yielding an empty Range when
// hi < lo.
func RangeOf(lo, hi uint64) Range {
	if hi < lo {
		return Range{Lo: lo, N: 0}
	}
	return Range{Lo: lo, N: hi - lo + 1}
}

// Hi returns the inclusive upper bound. Only meaningful when r is non-empty.
func (r Range) Hi() uint64 { return r.Lo + r.N - 1 }

// Empty reports whether r contains no positions.
func (r Range) Empty() bool { return r.N == 0 }

// Root returns the node covering the whole sequence.
func (wm *WaveletMatrix) Root() Node {
	return Node{Level: 0, Offset: 0, Size: wm.size, Sym: 0}
}

// IsLeaf reports whether v sits at the bottom of the tree.
func (wm *WaveletMatrix) IsLeaf(v Node) bool { return v.Level == wm.levels }

// Empty reports whether a node covers zero positions (Range.Empty does the
// same for a range).
func Empty(v Node) bool { return v.Size == 0 }

// Expand computes v's left and right children: the positions of v whose
// current-level bit is 0 go left, the rest go right.
func (wm *WaveletMatrix) Expand(v Node) (left, right Node) {
	rsd := wm.layers[v.Level]
	rankB := rsd.Rank(v.Offset, true)
	ones := rsd.Rank(v.Offset+v.Size, true) - rankB
	left = Node{
		Level:  v.Level + 1,
		Offset: v.Offset - rankB,
		Size:   v.Size - ones,
		Sym:    v.Sym << 1,
	}
	right = Node{
		Level:  v.Level + 1,
		Offset: rsd.ZeroNum() + rankB,
		Size:   ones,
		Sym:    (v.Sym << 1) | 1,
	}
	return
}

// expandWithRank is Expand plus the node's own rank-of-ones-before-offset,
// needed by callers (RelMinObjMaj) that must re-derive positions from a
// child's answer via select on this level's bit vector.
func (wm *WaveletMatrix) expandWithRank(v Node, r Range) (left, right Node, leftR, rightR Range, rankB uint64) {
	rsd := wm.layers[v.Level]
	rankB = rsd.Rank(v.Offset, true)
	ones := rsd.Rank(v.Offset+v.Size, true) - rankB
	left = Node{Level: v.Level + 1, Offset: v.Offset - rankB, Size: v.Size - ones, Sym: v.Sym << 1}
	right = Node{Level: v.Level + 1, Offset: rsd.ZeroNum() + rankB, Size: ones, Sym: (v.Sym << 1) | 1}
	if r.Empty() {
		return left, right, Range{}, Range{}, rankB
	}
	spRank := rsd.Rank(v.Offset+r.Lo, true)
	rightN := rsd.Rank(v.Offset+r.Lo+r.N, true) - spRank
	leftN := r.N - rightN
	rightSp := spRank - rankB
	leftSp := r.Lo - rightSp
	leftR = Range{Lo: leftSp, N: leftN}
	rightR = Range{Lo: rightSp, N: rightN}
	return
}

// ExpandRange carries a position range down through v's split the same way
// Expand carries v itself.
func (wm *WaveletMatrix) ExpandRange(v Node, r Range) (left, right Range) {
	if r.Empty() {
		return Range{}, Range{}
	}
	rsd := wm.layers[v.Level]
	rankB := rsd.Rank(v.Offset, true)
	spRank := rsd.Rank(v.Offset+r.Lo, true)
	rightN := rsd.Rank(v.Offset+r.Lo+r.N, true) - spRank
	leftN := r.N - rightN
	rightSp := spRank - rankB
	leftSp := r.Lo - rightSp
	return Range{Lo: leftSp, N: leftN}, Range{Lo: rightSp, N: rightN}
}

func bitAt(c uint64, levels, lvl uint32) bool {
	shift := levels - 1 - lvl
	return (c>>shift)&1 == 1
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
