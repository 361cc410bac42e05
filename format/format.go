package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	NBTFormat Format = iota
	RawFormat
	SNBTFormat
	JSONFormat
	YAMLFormat
	CBORFormat
	PlainJSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"n":     NBTFormat,
		"nbt":   NBTFormat,
		"dat":   NBTFormat,
		"r":     RawFormat,
		"raw":   RawFormat,
		"s":     SNBTFormat,
		"snbt":  SNBTFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
		"c":     CBORFormat,
		"cbor":  CBORFormat,
		"pj":    PlainJSONFormat,
		"plain": PlainJSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case NBTFormat:
		return []byte("nbt"), nil
	case RawFormat:
		return []byte("raw"), nil
	case SNBTFormat:
		return []byte("snbt"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	case PlainJSONFormat:
		return []byte("plain"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsBinary reports whether documents in f are not text.
func (f Format) IsBinary() bool {
	return f == NBTFormat || f == RawFormat || f == CBORFormat
}

// CanDecode reports whether documents in f can be read back into a
// tag tree without losing kinds.
func (f Format) CanDecode() bool {
	switch f {
	case NBTFormat, RawFormat, SNBTFormat, JSONFormat:
		return true
	default:
		return false
	}
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case NBTFormat:
		return ".nbt"
	case RawFormat:
		return ".dat"
	case SNBTFormat:
		return ".snbt"
	case JSONFormat, PlainJSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case CBORFormat:
		return ".cbor"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{NBTFormat, RawFormat, SNBTFormat, JSONFormat, YAMLFormat, CBORFormat, PlainJSONFormat}
}
