package codepage

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
)

// ID identifies a code page in the runtime dispatch table.
type ID uint8

const (
	IDUnknown ID = iota
	IDUTF8
	IDUTF16LE
	IDUTF16BE
	IDUTF32LE
	IDUTF32BE
	IDASCII
	IDLatin1
	IDLatin9
	IDWindows1252
	IDKOI8R
	IDCodePage437
	IDMacintosh
	idCount
)

// table is the tagged dispatch table indexed by ID.
var table = [idCount]textcore.Codec[byte]{
	IDUTF8:        UTF8,
	IDUTF16LE:     UTF16LE,
	IDUTF16BE:     UTF16BE,
	IDUTF32LE:     UTF32LE,
	IDUTF32BE:     UTF32BE,
	IDASCII:       ASCII,
	IDLatin1:      Latin1,
	IDLatin9:      Latin9,
	IDWindows1252: Windows1252,
	IDKOI8R:       KOI8R,
	IDCodePage437: CodePage437,
	IDMacintosh:   Macintosh,
}

// String returns the canonical codec name for the identifier.
func (id ID) String() string {
	if id > IDUnknown && id < idCount {
		return table[id].Name()
	}
	return "unknown"
}

// Lookup returns the byte-oriented codec registered for id.
func Lookup(id ID) (textcore.Codec[byte], error) {
	if id == IDUnknown || id >= idCount {
		return nil, errors.New(errors.PhaseTranscode, errors.KindNotFound).
			Value(uint8(id)).
			Detail("no codec for code page id %d", uint8(id)).
			Build()
	}
	return table[id], nil
}

// IDs returns every registered identifier in table order.
func IDs() []ID {
	ids := make([]ID, 0, idCount-1)
	for id := IDUnknown + 1; id < idCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// aliases holds names resolved without consulting the IANA index.
var aliases = map[string]ID{
	"utf-8":        IDUTF8,
	"utf8":         IDUTF8,
	"utf-16le":     IDUTF16LE,
	"utf-16be":     IDUTF16BE,
	"utf-32le":     IDUTF32LE,
	"utf-32be":     IDUTF32BE,
	"ascii":        IDASCII,
	"us-ascii":     IDASCII,
	"latin1":       IDLatin1,
	"iso-8859-1":   IDLatin1,
	"latin9":       IDLatin9,
	"iso-8859-15":  IDLatin9,
	"windows-1252": IDWindows1252,
	"cp1252":       IDWindows1252,
	"koi8-r":       IDKOI8R,
	"ibm437":       IDCodePage437,
	"cp437":        IDCodePage437,
	"macintosh":    IDMacintosh,
}

// ianaNames maps IANA canonical names to identifiers.
var ianaNames = buildIANANames()

func buildIANANames() map[string]ID {
	refs := map[ID]encoding.Encoding{
		IDUTF8:        unicode.UTF8,
		IDUTF16LE:     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
		IDUTF16BE:     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
		IDUTF32LE:     utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
		IDUTF32BE:     utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
		IDLatin1:      charmap.ISO8859_1,
		IDLatin9:      charmap.ISO8859_15,
		IDWindows1252: charmap.Windows1252,
		IDKOI8R:       charmap.KOI8R,
		IDCodePage437: charmap.CodePage437,
		IDMacintosh:   charmap.Macintosh,
	}
	names := make(map[string]ID, len(refs))
	for id, enc := range refs {
		name, err := ianaindex.IANA.Name(enc)
		if err != nil {
			continue
		}
		names[strings.ToLower(name)] = id
	}
	return names
}

// LookupName resolves an encoding name or IANA alias to an identifier.
// Matching is case-insensitive.
func LookupName(name string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if id, ok := aliases[key]; ok {
		return id, nil
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err == nil && enc != nil {
		if canonical, err := ianaindex.IANA.Name(enc); err == nil {
			if id, ok := ianaNames[strings.ToLower(canonical)]; ok {
				return id, nil
			}
		}
	}

	return IDUnknown, errors.NotFound(errors.PhaseTranscode, "encoding", name)
}

// ByName resolves name and returns its codec.
func ByName(name string) (textcore.Codec[byte], error) {
	id, err := LookupName(name)
	if err != nil {
		return nil, err
	}
	return Lookup(id)
}
