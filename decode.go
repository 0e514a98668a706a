package barscan

// DecodeOptions configures the search a Reader performs over a
// BinaryBitmap. Every field is a hint: a Reader may ignore one it has no
// use for, but must never contradict one it understands.
type DecodeOptions struct {
	// PureBarcode hints that the image contains only the barcode with
	// minimal border and no rotation, letting a Reader skip the more
	// expensive general-purpose search.
	PureBarcode bool

	// TryHarder enables spending more time looking for a barcode, at the
	// cost of throughput.
	TryHarder bool

	// PossibleFormats restricts which formats a Reader should attempt.
	// A nil slice means "try everything this Reader supports".
	PossibleFormats []Format

	// CharacterSet names the character set to assume when a decoded
	// payload carries no ECI marker of its own.
	CharacterSet string

	// AllowedLengths restricts the set of valid payload lengths a
	// fixed-length format should accept.
	AllowedLengths []int

	// AlsoInverted additionally checks for a barcode on the bitwise
	// inverse of the image, for formats printed light-on-dark.
	AlsoInverted bool
}

// Reader is the external-collaborator contract a symbology decoder
// implements: barscan supplies the rectified BinaryBitmap, a Reader
// supplies the format-specific decode. This package ships no concrete
// Reader; symbology decoders live outside it and are wired in by the
// caller.
type Reader interface {
	// Decode attempts to decode a barcode from image.
	Decode(image *BinaryBitmap, opts *DecodeOptions) (*Result, error)

	// Reset clears any state retained between Decode calls.
	Reset()
}
