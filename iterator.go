package wavelet

// Iterator is a forward, read-only cursor over the indexed sequence,
// backed by repeated Access calls.
type Iterator struct {
	wm  *WaveletMatrix
	pos uint64
}

// Begin returns an iterator positioned at the first element.
func (wm *WaveletMatrix) Begin() *Iterator { return &Iterator{wm: wm, pos: 0} }

// End returns an iterator positioned one past the last element.
func (wm *WaveletMatrix) End() *Iterator { return &Iterator{wm: wm, pos: wm.size} }

// Valid reports whether the iterator is positioned at an actual element.
func (it *Iterator) Valid() bool { return it.pos < it.wm.size }

// Value returns the symbol at the iterator's current position. Panics if
// !Valid().
func (it *Iterator) Value() uint64 { return it.wm.Access(it.pos) }

// Pos returns the iterator's current position.
func (it *Iterator) Pos() uint64 { return it.pos }

// Next advances the iterator by one position.
func (it *Iterator) Next() { it.pos++ }
