package tag

import "fmt"

// Kind identifies a tag variant. The numeric value doubles as the
// type byte of the binary wire format.
type Kind int

const (
	EndKind Kind = iota
	ByteKind
	ShortKind
	IntKind
	LongKind
	FloatKind
	DoubleKind
	ByteArrayKind
	StringKind
	ListKind
	CompoundKind
	IntArrayKind
)

// NoKind is the element kind of a list which has not yet received an
// element.
const NoKind Kind = -1

var kindNames = map[Kind]string{
	EndKind:       "End",
	ByteKind:      "Byte",
	ShortKind:     "Short",
	IntKind:       "Int",
	LongKind:      "Long",
	FloatKind:     "Float",
	DoubleKind:    "Double",
	ByteArrayKind: "ByteArray",
	StringKind:    "String",
	ListKind:      "List",
	CompoundKind:  "Compound",
	IntArrayKind:  "IntArray",
	NoKind:        "None",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown kind %d>", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, d)
}

// Valid reports whether k is one of the twelve wire kinds.
func (k Kind) Valid() bool {
	return k >= EndKind && k <= IntArrayKind
}

func Kinds() []Kind {
	return []Kind{
		EndKind,
		ByteKind,
		ShortKind,
		IntKind,
		LongKind,
		FloatKind,
		DoubleKind,
		ByteArrayKind,
		StringKind,
		ListKind,
		CompoundKind,
		IntArrayKind,
	}
}

// IsLeaf reports whether tags of kind k hold no child tags.
func (k Kind) IsLeaf() bool {
	switch k {
	case ListKind, CompoundKind:
		return false
	default:
		return true
	}
}
