package numfmt

import "github.com/wippyai/textcore"

// AppendInt appends the rendering of v, encoded with codec, to dst.
func AppendInt[T Integer, U textcore.Unit](dst []U, codec textcore.Codec[U], v T, spec IntSpec) ([]U, error) {
	w := &unitWriter[U]{codec: codec, dst: dst}
	if err := WriteInt(w, v, spec); err != nil {
		return dst, err
	}
	return w.dst, nil
}

// AppendLegacyFloat appends the legacy rendering of v, encoded with codec, to dst.
func AppendLegacyFloat[T Float, U textcore.Unit](dst []U, codec textcore.Codec[U], v T) ([]U, error) {
	w := &unitWriter[U]{codec: codec, dst: dst}
	if err := WriteLegacyFloat(w, v, nil); err != nil {
		return dst, err
	}
	return w.dst, nil
}

// FormatInt returns the rendering of v as a Go string.
func FormatInt[T Integer](v T, spec IntSpec) (string, error) {
	var w stringWriter
	if err := WriteInt(&w, v, spec); err != nil {
		return "", err
	}
	return w.b.String(), nil
}

// FormatLegacyFloat returns the legacy rendering of v as a Go string.
func FormatLegacyFloat[T Float](v T) (string, error) {
	var w stringWriter
	if err := WriteLegacyFloat(&w, v, nil); err != nil {
		return "", err
	}
	return w.b.String(), nil
}
