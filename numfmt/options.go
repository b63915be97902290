package numfmt

import (
	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
)

// IntSpec selects how an integer is rendered.
type IntSpec struct {
	Base  int
	Upper bool
}

// DefaultIntSpec renders base 10.
var DefaultIntSpec = IntSpec{Base: 10}

// ParseIntOptions parses an integer option string.
// At most one base token may be given; an empty option selects base 10.
func ParseIntOptions(opts []textcore.CodePoint) (IntSpec, error) {
	spec := DefaultIntSpec
	specified := false

	for _, cp := range opts {
		var base int
		upper := false
		switch cp {
		case 'b':
			base = 2
		case 'o':
			base = 8
		case 'd', 'i':
			base = 10
		case 'x':
			base = 16
		case 'X':
			base = 16
			upper = true
		default:
			return IntSpec{}, errors.New(errors.PhaseConvert, errors.KindFormat).
				Value(uint32(cp)).
				Detail("Invalid option.").
				Build()
		}
		if specified {
			return IntSpec{}, errors.Format(errors.PhaseConvert, "Base has been specified.")
		}
		spec = IntSpec{Base: base, Upper: upper}
		specified = true
	}

	return spec, nil
}
