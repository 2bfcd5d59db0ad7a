package wavelet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	rsdicmmap "github.com/AlexWan0/rsdic-mmap"
)

// mmapLevel adapts github.com/AlexWan0/rsdic-mmap's RSDic to the reader-less
// bitLevel interface. That library's Bit/Rank/Select/Select0/Select1 each
// take an explicit *rsdicmmap.Readers argument — the raw bit data is written
// once to a file during PushBack and then read back through a memory-mapped
// reader, rather than held in the RSDic value itself — so mmapLevel closes
// over the Readers opened once the level is fully built and forwards every
// call through it.
type mmapLevel struct {
	rsd     *rsdicmmap.RSDic
	readers *rsdicmmap.Readers
}

func (m *mmapLevel) Bit(pos uint64) bool { return m.rsd.Bit(pos, m.readers) }

func (m *mmapLevel) Rank(pos uint64, bit bool) uint64 { return m.rsd.Rank(pos, bit, m.readers) }

func (m *mmapLevel) Select(rank uint64, bit bool) uint64 {
	return m.rsd.Select(rank, bit, m.readers)
}

func (m *mmapLevel) Select0(rank uint64) uint64 { return m.rsd.Select0(rank, m.readers) }

func (m *mmapLevel) Select1(rank uint64) uint64 { return m.rsd.Select1(rank, m.readers) }

func (m *mmapLevel) ZeroNum() uint64 { return m.rsd.ZeroNum() }

func (m *mmapLevel) Num() uint64 { return m.rsd.Num() }

// BuildStreaming runs the same radix partition as Build, but spills each
// level's raw bit data to a file under dir as it is produced and queries it
// back through a memory-mapped reader, rather than holding every level's
// bits in RAM at once. The pushed values and the per-level partition
// buffers are still held in memory; only the levels' bit vectors are
// file-backed.
//
// dir is created if it does not already exist. The level files are left in
// dir, also when BuildStreaming returns an error. The resulting matrix keeps
// its levels mmap-backed; it is not a candidate for MarshalBinary (use Build
// and marshal that instead if persistence is needed).
func (b *Builder) BuildStreaming(dir string) (*WaveletMatrix, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	levels := b.levels
	if levels == 0 {
		levels = levelsFor(b.vals)
	} else if err := checkOverflow(b.vals, levels); err != nil {
		return nil, err
	}

	n := uint64(len(b.vals))
	zeros := b.vals
	ones := make([]uint64, 0)
	layers := make([]bitLevel, levels)
	for depth := uint32(0); depth < levels; depth++ {
		nextZeros := make([]uint64, 0, len(zeros)+len(ones))
		nextOnes := make([]uint64, 0, len(zeros)+len(ones))

		rsdPath := filepath.Join(dir, fmt.Sprintf("level-%d.bits", depth))
		f, err := os.Create(rsdPath)
		if err != nil {
			return nil, err
		}

		rsd := rsdicmmap.New()
		bitpos := levels - depth - 1
		filterStreaming(zeros, bitpos, &nextZeros, &nextOnes, rsd, f)
		filterStreaming(ones, bitpos, &nextZeros, &nextOnes, rsd, f)

		if err := f.Close(); err != nil {
			return nil, err
		}
		readers, err := rsdicmmap.InitReaders(rsdPath)
		if err != nil {
			return nil, err
		}

		layers[depth] = &mmapLevel{rsd: rsd, readers: readers}
		zeros, ones = nextZeros, nextOnes
	}

	return &WaveletMatrix{
		layers: layers,
		size:   n,
		levels: levels,
		sigma:  distinctCount(append(zeros, ones...)),
	}, nil
}

func filterStreaming(vals []uint64, bitpos uint32, nextZeros, nextOnes *[]uint64, rsd *rsdicmmap.RSDic, w io.Writer) {
	for _, v := range vals {
		bit := (v>>bitpos)&1 == 1
		rsd.PushBack(bit, w)
		if bit {
			*nextOnes = append(*nextOnes, v)
		} else {
			*nextZeros = append(*nextZeros, v)
		}
	}
}
