package barscan

import "github.com/codewright/barscan/bitutil"

// EncodeOptions configures the rendering a Writer performs for a given
// format. As with DecodeOptions, a Writer ignores fields it has no use
// for.
type EncodeOptions struct {
	// ErrorCorrection names the error-correction level or redundancy
	// tier to target, in whatever vocabulary the target format defines
	// (e.g. "L"/"M"/"Q"/"H").
	ErrorCorrection string

	// CharacterSet names the character set to encode with, when the
	// target format supports more than one.
	CharacterSet string

	// Margin overrides the default quiet-zone width, in modules, around
	// the rendered symbol. Nil means "use the format's default".
	Margin *int
}

// Writer is the external-collaborator contract a symbology encoder
// implements. This package ships no concrete Writer; symbology encoders
// live outside it and are wired in by the caller.
type Writer interface {
	// Encode renders contents as a symbol of the given format and
	// returns it as a module matrix sized at most width x height.
	Encode(contents string, format Format, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error)
}
