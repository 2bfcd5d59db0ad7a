package wavelet

import (
	"fmt"
	"math/bits"

	"github.com/hillbig/rsdic"
	"golang.org/x/exp/slices"
)

// Builder accumulates a sequence of non-negative integers and, once full,
// builds an immutable WaveletMatrix from it via a stable MSB-first radix
// partition, one pass per level.
type Builder struct {
	vals   []uint64
	levels uint32
}

// memLevel adapts github.com/hillbig/rsdic.RSDic to bitLevel using only
// Bit/Rank/Select(rank, bit)/ZeroNum/Num — the methods the teacher itself
// calls — rather than assuming that library exports standalone Select0/
// Select1 methods (some forks add those; this does not depend on it either
// way, since Select0/Select1 here are just Select with bit fixed).
type memLevel struct {
	rsd *rsdic.RSDic
}

func (m *memLevel) Bit(pos uint64) bool                 { return m.rsd.Bit(pos) }
func (m *memLevel) Rank(pos uint64, bit bool) uint64    { return m.rsd.Rank(pos, bit) }
func (m *memLevel) Select(rank uint64, bit bool) uint64 { return m.rsd.Select(rank, bit) }
func (m *memLevel) Select0(rank uint64) uint64          { return m.rsd.Select(rank, false) }
func (m *memLevel) Select1(rank uint64) uint64          { return m.rsd.Select(rank, true) }
func (m *memLevel) ZeroNum() uint64                     { return m.rsd.ZeroNum() }
func (m *memLevel) Num() uint64                         { return m.rsd.Num() }

// NewBuilder returns a Builder that derives its level count from the
// largest value pushed.
func NewBuilder() *Builder { return &Builder{} }

// NewBuilderWithLevels returns a Builder that always builds exactly levels
// levels; Build/BuildStreaming fail with ErrOverflow if a pushed value does
// not fit. A levels of 0 behaves like NewBuilder and derives the count.
func NewBuilderWithLevels(levels uint32) *Builder { return &Builder{levels: levels} }

// PushBack appends v to the sequence under construction.
func (b *Builder) PushBack(v uint64) { b.vals = append(b.vals, v) }

// Len returns the number of values pushed so far.
func (b *Builder) Len() int { return len(b.vals) }

func levelsFor(vals []uint64) uint32 {
	if len(vals) == 0 {
		return 0
	}
	var max uint64
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	levels := uint32(bits.Len64(max))
	if levels == 0 {
		levels = 1 // a non-empty sequence always occupies at least one level
	}
	return levels
}

func checkOverflow(vals []uint64, levels uint32) error {
	limit := uint64(1) << levels
	if levels >= 64 {
		return nil
	}
	for _, v := range vals {
		if v >= limit {
			return fmt.Errorf("%w: value %d needs more than %d levels", ErrOverflow, v, levels)
		}
	}
	return nil
}

func distinctCount(sorted []uint64) uint64 {
	cp := append([]uint64(nil), sorted...)
	slices.Sort(cp)
	cp = slices.Compact(cp)
	return uint64(len(cp))
}

// Build runs the radix partition entirely in memory and returns the
// resulting matrix.
func (b *Builder) Build() (*WaveletMatrix, error) {
	levels := b.levels
	if levels == 0 {
		levels = levelsFor(b.vals)
	} else if err := checkOverflow(b.vals, levels); err != nil {
		return nil, err
	}

	n := uint64(len(b.vals))
	layers := make([]bitLevel, levels)
	cur := append([]uint64(nil), b.vals...)
	for k := uint32(0); k < levels; k++ {
		rsd := rsdic.New()
		bitpos := levels - 1 - k
		zeros := make([]uint64, 0, len(cur))
		ones := make([]uint64, 0, len(cur))
		for _, x := range cur {
			bit := (x>>bitpos)&1 == 1
			rsd.PushBack(bit)
			if bit {
				ones = append(ones, x)
			} else {
				zeros = append(zeros, x)
			}
		}
		layers[k] = &memLevel{rsd: rsd}
		cur = append(zeros, ones...)
	}

	return &WaveletMatrix{
		layers: layers,
		size:   n,
		levels: levels,
		sigma:  distinctCount(cur),
	}, nil
}
