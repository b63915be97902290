package codepage

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/wippyai/textcore"
)

// Single-byte code pages backed by golang.org/x/text tables.
var (
	Latin1      textcore.Codec[byte] = NewCharmap("ISO-8859-1", charmap.ISO8859_1)
	Latin9      textcore.Codec[byte] = NewCharmap("ISO-8859-15", charmap.ISO8859_15)
	Windows1252 textcore.Codec[byte] = NewCharmap("windows-1252", charmap.Windows1252)
	KOI8R       textcore.Codec[byte] = NewCharmap("KOI8-R", charmap.KOI8R)
	CodePage437 textcore.Codec[byte] = NewCharmap("IBM437", charmap.CodePage437)
	Macintosh   textcore.Codec[byte] = NewCharmap("macintosh", charmap.Macintosh)
)

// Charmap is a fixed-width single-byte codec over an x/text character map.
type Charmap struct {
	table *charmap.Charmap
	name  string
}

// NewCharmap wraps an x/text character map as a codec.
func NewCharmap(name string, table *charmap.Charmap) *Charmap {
	return &Charmap{name: name, table: table}
}

func (c *Charmap) Name() string        { return c.name }
func (c *Charmap) VariableWidth() bool { return false }
func (c *Charmap) MaxWidth() int       { return 1 }

func (c *Charmap) Decode(src []byte) textcore.Result {
	if len(src) == 0 {
		return textcore.Result{Outcome: textcore.Incomplete}
	}
	// undefined bytes map to U+FFFD in the tables
	r := c.table.DecodeByte(src[0])
	if r == utf8.RuneError {
		return textcore.Result{Outcome: textcore.Reject}
	}
	return textcore.Accepted(textcore.CodePoint(r), 1)
}

func (c *Charmap) Encode(dst []byte, cp textcore.CodePoint) ([]byte, bool) {
	if !textcore.Valid(cp) {
		return dst, false
	}
	b, ok := c.table.EncodeRune(rune(cp))
	if !ok {
		return dst, false
	}
	return append(dst, b), true
}
