package barscan

import "errors"

// Sentinel errors returned across the decode/encode surface. Each names a
// stage, not a symbology: a Reader or Writer may wrap these with
// fmt.Errorf("%w: ...") but should not invent new sentinels per format.
var (
	// ErrNotFound means no barcode could be located or confirmed in the
	// search the caller requested; trying a different binarizer, cropping,
	// or enabling TryHarder may still succeed.
	ErrNotFound = errors.New("barcode not found")

	// ErrChecksum means a barcode was located and its modules read, but
	// the payload's own checksum rejected the decode.
	ErrChecksum = errors.New("checksum error")

	// ErrFormat means the decoded bits don't parse as a well-formed
	// payload for the format being tried (bad mode indicator, truncated
	// segment, impossible length, ...).
	ErrFormat = errors.New("format error")

	// ErrWriter means a Writer could not render the given contents,
	// typically because they don't fit the requested dimensions or
	// violate the format's character-set constraints.
	ErrWriter = errors.New("writer error")
)
