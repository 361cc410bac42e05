package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/nbt-format/go-nbt/tag"
)

type EncState struct {
	depth, indent int

	Color func(tag.Kind, ColorAttr, string) string
}

// Encode writes the text notation of t to w, followed by a newline.
func Encode(t tag.Tag, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(t, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) pretty() bool { return es.indent > 0 }

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty() {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func applyColor(es *EncState, k tag.Kind, attr ColorAttr, v string) string {
	if es.Color == nil || v == "" {
		return v
	}
	return es.Color(k, attr, v)
}

func writeSep(w io.Writer, es *EncState, k tag.Kind, sep string) error {
	return writeString(w, applyColor(es, k, SepColor, sep))
}

func encode(t tag.Tag, w io.Writer, es *EncState) error {
	if t == nil {
		return fmt.Errorf("%w: %w", ErrEncoding, tag.ErrNilTag)
	}
	switch x := t.(type) {
	case *tag.Compound:
		return encodeCompound(x, w, es)
	case *tag.List:
		return encodeList(x, w, es)
	case *tag.ByteArray:
		vals := make([]string, x.Len())
		for i := range vals {
			vals[i] = strconv.Itoa(int(x.At(i))) + "b"
		}
		return encodeArray(w, es, tag.ByteArrayKind, "B", vals)
	case *tag.IntArray:
		vals := make([]string, x.Len())
		for i := range vals {
			vals[i] = strconv.Itoa(int(x.At(i)))
		}
		return encodeArray(w, es, tag.IntArrayKind, "I", vals)
	case *tag.String:
		return writeString(w, applyColor(es, tag.StringKind, ValueColor, Quote(x.Value)))
	case *tag.End:
		return fmt.Errorf("%w: End has no text form", ErrEncoding)
	default:
		v, suffix, err := scalar(t)
		if err != nil {
			return err
		}
		k := t.Kind()
		return writeString(w, applyColor(es, k, ValueColor, v)+applyColor(es, k, SuffixColor, suffix))
	}
}

func scalar(t tag.Tag) (string, string, error) {
	switch x := t.(type) {
	case *tag.Byte:
		return strconv.Itoa(int(x.Value)), "b", nil
	case *tag.Short:
		return strconv.Itoa(int(x.Value)), "s", nil
	case *tag.Int:
		return strconv.Itoa(int(x.Value)), "", nil
	case *tag.Long:
		return strconv.FormatInt(x.Value, 10), "L", nil
	case *tag.Float:
		return formatFloat(float64(x.Value), 32), "f", nil
	case *tag.Double:
		return formatFloat(x.Value, 64), "d", nil
	default:
		return "", "", fmt.Errorf("%w: unexpected %T", ErrEncoding, t)
	}
}

// formatFloat renders v so that it reads back as a decimal: integral
// values keep a ".0".
func formatFloat(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func encodeCompound(c *tag.Compound, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, tag.CompoundKind, "{"); err != nil {
		return err
	}
	if c.Len() == 0 {
		return writeSep(w, es, tag.CompoundKind, "}")
	}
	es.depth++
	i := 0
	for k, v := range c.All() {
		if i > 0 {
			if err := writeSep(w, es, tag.CompoundKind, ","); err != nil {
				return err
			}
		}
		i++
		if err := writeNL(w, es); err != nil {
			return err
		}
		field := applyColor(es, tag.CompoundKind, FieldColor, QuoteKey(k))
		if err := writeString(w, field); err != nil {
			return err
		}
		sep := ":"
		if es.pretty() {
			sep = ": "
		}
		if err := writeSep(w, es, tag.CompoundKind, sep); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, tag.CompoundKind, "}")
}

func encodeList(l *tag.List, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, tag.ListKind, "["); err != nil {
		return err
	}
	if l.Len() == 0 {
		return writeSep(w, es, tag.ListKind, "]")
	}
	// lists of scalars stay on one line
	nested := !l.ElemKind().IsLeaf()
	if nested {
		es.depth++
	}
	for i, e := range l.All() {
		if i > 0 {
			sep := ","
			if es.pretty() && !nested {
				sep = ", "
			}
			if err := writeSep(w, es, tag.ListKind, sep); err != nil {
				return err
			}
		}
		if nested {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := encode(e, w, es); err != nil {
			return err
		}
	}
	if nested {
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, tag.ListKind, "]")
}

func encodeArray(w io.Writer, es *EncState, k tag.Kind, prefix string, vals []string) error {
	open := applyColor(es, k, SepColor, "[") + applyColor(es, k, SuffixColor, prefix) + applyColor(es, k, SepColor, ";")
	if err := writeString(w, open); err != nil {
		return err
	}
	sep := ","
	if es.pretty() {
		sep = ", "
	}
	for i, v := range vals {
		if i > 0 {
			if err := writeSep(w, es, k, sep); err != nil {
				return err
			}
		}
		if err := writeString(w, applyColor(es, k, ValueColor, v)); err != nil {
			return err
		}
	}
	return writeSep(w, es, k, "]")
}

// IsUnquoted reports whether s may be written without quotes as a
// compound key.
func IsUnquoted(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c == '_', c == '-', c == '.', c == '+':
		default:
			return false
		}
	}
	return true
}

// QuoteKey returns s as written in key position.
func QuoteKey(s string) string {
	if IsUnquoted(s) {
		return s
	}
	return Quote(s)
}

// Quote returns s as a quoted string literal. Double quotes are used
// unless s contains a double quote and no single quote.
func Quote(s string) string {
	q := byte('"')
	if strings.IndexByte(s, '"') >= 0 && strings.IndexByte(s, '\'') < 0 {
		q = '\''
	}
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	buf.WriteByte(q)
	for i := 0; i < len(s); i++ {
		if s[i] == q || s[i] == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(s[i])
	}
	buf.WriteByte(q)
	return buf.String()
}
