package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// goNameToEncoding maps the GoName of an ECI entry to a concrete
// golang.org/x/text encoding.Encoding. UTF-8 and US-ASCII are handled
// natively (a Go string already is UTF-8) and are not present here.
// ISO8859_11 has no charmap implementation in the x/text corpus and is
// likewise absent; ECIEncoderSet skips it when building candidate encoders.
var goNameToEncoding = map[string]encoding.Encoding{
	"IBM437":      charmap.CodePage437,
	"ISO8859_1":   charmap.ISO8859_1,
	"ISO8859_2":   charmap.ISO8859_2,
	"ISO8859_3":   charmap.ISO8859_3,
	"ISO8859_4":   charmap.ISO8859_4,
	"ISO8859_5":   charmap.ISO8859_5,
	"ISO8859_6":   charmap.ISO8859_6,
	"ISO8859_7":   charmap.ISO8859_7,
	"ISO8859_8":   charmap.ISO8859_8,
	"ISO8859_9":   charmap.ISO8859_9,
	"ISO8859_10":  charmap.ISO8859_10,
	"ISO8859_13":  charmap.ISO8859_13,
	"ISO8859_14":  charmap.ISO8859_14,
	"ISO8859_15":  charmap.ISO8859_15,
	"ISO8859_16":  charmap.ISO8859_16,
	"Shift_JIS":   japanese.ShiftJIS,
	"Windows1250": charmap.Windows1250,
	"Windows1251": charmap.Windows1251,
	"Windows1252": charmap.Windows1252,
	"Windows1256": charmap.Windows1256,
	"UTF-16BE":    unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"Big5":        traditionalchinese.Big5,
	"GB18030":     simplifiedchinese.GB18030,
	"EUC-KR":      korean.EUCKR,
}

// Encoding returns the golang.org/x/text encoding for eci, if one is
// registered. UTF-8 and US-ASCII return ok=false: callers should treat the
// bytes as already being UTF-8 (US-ASCII is a strict subset).
func Encoding(eci *ECI) (encoding.Encoding, bool) {
	if eci == nil {
		return nil, false
	}
	enc, ok := goNameToEncoding[eci.GoName]
	return enc, ok
}
