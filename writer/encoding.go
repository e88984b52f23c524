package writer

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies one of the supported output text encodings.
type Encoding int

const (
	// UTF8 writes lines verbatim; Go strings are already UTF-8.
	UTF8 Encoding = iota
	// UTF16LE is UTF-16 little-endian without a byte order mark
	UTF16LE
	// UTF16BE is UTF-16 big-endian without a byte order mark
	UTF16BE
	// Latin1 is ISO 8859-1
	Latin1
	// Windows1252 is the Windows Western European code page
	Windows1252
)

// String returns the canonical name of the encoding
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case Latin1:
		return "ISO-8859-1"
	case Windows1252:
		return "Windows-1252"
	default:
		return "Unknown"
	}
}

// ParseEncoding converts an encoding name to an Encoding. Matching is
// case-insensitive and ignores hyphens and underscores; the empty string
// selects UTF8.
func ParseEncoding(s string) (Encoding, error) {
	normalized := strings.ToUpper(strings.NewReplacer("-", "", "_", "").Replace(s))
	switch normalized {
	case "", "UTF8":
		return UTF8, nil
	case "UTF16", "UTF16LE":
		return UTF16LE, nil
	case "UTF16BE":
		return UTF16BE, nil
	case "LATIN1", "ISO88591":
		return Latin1, nil
	case "WINDOWS1252", "CP1252":
		return Windows1252, nil
	default:
		return UTF8, fmt.Errorf("unsupported encoding %q", s)
	}
}

// newEncoder returns a strict x/text encoder for the encoding, or nil
// for UTF-8 which needs no transformation. Strict means unrepresentable
// runes cause an error instead of being silently replaced.
func (e Encoding) newEncoder() *encoding.Encoder {
	switch e {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	case Latin1:
		return charmap.ISO8859_1.NewEncoder()
	case Windows1252:
		return charmap.Windows1252.NewEncoder()
	default:
		return nil
	}
}
