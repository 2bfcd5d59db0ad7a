package wavelet

import (
	"fmt"

	"github.com/hillbig/rsdic"
	"github.com/ugorji/go/codec"
)

// MarshalBinary encodes the matrix into a binary form readable by
// UnmarshalBinary. Only matrices built in memory via Builder.Build are
// supported; a matrix built with BuildStreaming keeps its levels
// mmap-backed and cannot be marshaled this way.
func (wm *WaveletMatrix) MarshalBinary() (out []byte, err error) {
	var bh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &bh)

	if err = enc.Encode(len(wm.layers)); err != nil {
		return
	}
	for _, l := range wm.layers {
		ml, ok := l.(*memLevel)
		if !ok {
			return nil, fmt.Errorf("%w: matrix is not in-memory, cannot marshal", ErrInvalidInput)
		}
		if err = enc.Encode(*ml.rsd); err != nil {
			return
		}
	}
	if err = enc.Encode(wm.size); err != nil {
		return
	}
	if err = enc.Encode(wm.levels); err != nil {
		return
	}
	if err = enc.Encode(wm.sigma); err != nil {
		return
	}
	return
}

// UnmarshalBinary decodes a matrix produced by MarshalBinary.
func (wm *WaveletMatrix) UnmarshalBinary(in []byte) (err error) {
	var bh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(in, &bh)

	var layerNum int
	if err = dec.Decode(&layerNum); err != nil {
		return
	}
	layers := make([]bitLevel, layerNum)
	for i := 0; i < layerNum; i++ {
		rsd := rsdic.New()
		if err = dec.Decode(rsd); err != nil {
			return
		}
		layers[i] = &memLevel{rsd: rsd}
	}
	wm.layers = layers
	if err = dec.Decode(&wm.size); err != nil {
		return
	}
	if err = dec.Decode(&wm.levels); err != nil {
		return
	}
	if err = dec.Decode(&wm.sigma); err != nil {
		return
	}
	return
}
