package bitutil

import "errors"

// ErrInvalidArgument is returned by the range-checked BitArray/BitMatrix
// operations (SetRange, Xor, SetRegion, dimension and rotation checks) when
// the caller has violated a documented precondition. It is never returned
// for evidence-of-barcode failures — those belong to the binarizer and
// transform packages, which signal with their own ErrNotFound.
var ErrInvalidArgument = errors.New("bitutil: invalid argument")
