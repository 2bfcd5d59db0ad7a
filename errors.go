package wavelet

import "errors"

// ErrInvalidInput is returned when BuildStreaming cannot create its output
// directory, and when MarshalBinary is called on a matrix whose levels are
// not held in memory (one built by BuildStreaming).
var ErrInvalidInput = errors.New("wavelet: invalid input")

// ErrOverflow is returned when a value does not fit in the configured
// number of levels.
var ErrOverflow = errors.New("wavelet: value overflows configured level count")
