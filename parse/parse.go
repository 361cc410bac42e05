package parse

import (
	"fmt"

	"github.com/signadot/nbt-format/go-nbt/debug"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// Notation is anything that turns text notation into a compound.
type Notation interface {
	Parse(text string) (*tag.Compound, error)
}

type notation struct {
	opts []ParseOption
}

func (n *notation) Parse(text string) (*tag.Compound, error) {
	return Parse(text, n.opts...)
}

var defaultNotation Notation = &notation{}

// Default returns the participle-backed Notation with default options.
func Default() Notation { return defaultNotation }

// New returns a Notation applying opts to every parse.
func New(opts ...ParseOption) Notation {
	return &notation{opts: opts}
}

// Parse parses text whose top-level value must be a compound.
func Parse(text string, opts ...ParseOption) (*tag.Compound, error) {
	t, err := ParseTag(text, opts...)
	if err != nil {
		return nil, err
	}
	c, ok := t.(*tag.Compound)
	if !ok {
		o := getOpts(opts...)
		return nil, &ParseError{
			Filename: o.filename,
			Line:     1,
			Column:   1,
			Message:  fmt.Sprintf("expected compound, got %s", t.Kind()),
		}
	}
	return c, nil
}

// ParseTag parses text holding a single value of any kind.
func ParseTag(text string, opts ...ParseOption) (tag.Tag, error) {
	o := getOpts(opts...)
	if err := checkDepth(text, o); err != nil {
		return nil, err
	}
	doc, err := parser.ParseString(o.filename, text)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse %q: %v\n", text, err)
		}
		return nil, fromParticiple(err, o.filename)
	}
	res, err := doc.Value.toTag()
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse %q:\n%v\n", text, res)
	}
	return res, nil
}

// checkDepth rejects input nested deeper than o.maxDepth before the
// grammar recurses into it.
func checkDepth(text string, o *parseOpts) error {
	if o.maxDepth <= 0 {
		return nil
	}
	var (
		depth     int
		line, col = 1, 0
		quote     byte
	)
	for i := 0; i < len(text); i++ {
		c := text[i]
		col++
		if c == '\n' {
			line++
			col = 0
		}
		if quote != 0 {
			switch c {
			case '\\':
				i++
				col++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '{', '[':
			depth++
			if depth > o.maxDepth {
				return &ParseError{
					Filename: o.filename,
					Line:     line,
					Column:   col,
					Message:  fmt.Sprintf("nesting exceeds maximum depth of %d", o.maxDepth),
				}
			}
		case '}', ']':
			depth--
		}
	}
	return nil
}

func (v *value) toTag() (tag.Tag, error) {
	switch {
	case v.Compound != nil:
		return v.Compound.toTag()
	case v.List != nil:
		return v.List.toTag()
	case v.Array != nil:
		return v.Array.toTag()
	case v.Scalar != nil:
		return v.Scalar.toTag()
	}
	return nil, errorAt(v.Pos, "expected value")
}

func (c *compound) toTag() (tag.Tag, error) {
	res := tag.NewCompound()
	for _, e := range c.Entries {
		key := e.Key
		if key[0] == '"' || key[0] == '\'' {
			k, ok := unquote(key)
			if !ok {
				return nil, errorAt(e.Pos, "invalid escape sequence in %s", key)
			}
			key = k
		}
		v, err := e.Value.toTag()
		if err != nil {
			return nil, err
		}
		res.Set(key, v)
	}
	return res, nil
}

func (l *list) toTag() (tag.Tag, error) {
	res := tag.NewListOf(tag.NoKind)
	for _, e := range l.Elems {
		v, err := e.toTag()
		if err != nil {
			return nil, err
		}
		if err := res.Add(v); err != nil {
			return nil, errorAt(e.Pos, "cannot insert %s into list of %s", v.Kind(), res.ElemKind())
		}
	}
	return res, nil
}

func (a *array) toTag() (tag.Tag, error) {
	var want tag.Kind
	switch a.Open[1] {
	case 'B':
		want = tag.ByteKind
	case 'I':
		want = tag.IntKind
	default:
		return nil, errorAt(a.Pos, "unsupported array type %q", a.Open[1:2])
	}
	var (
		bytes []byte
		ints  []int32
	)
	for _, e := range a.Elems {
		v, err := e.toTag()
		if err != nil {
			return nil, err
		}
		if v.Kind() != want {
			return nil, errorAt(e.Pos, "cannot insert %s into %s array", v.Kind(), want)
		}
		switch x := v.(type) {
		case *tag.Byte:
			bytes = append(bytes, byte(x.Value))
		case *tag.Int:
			ints = append(ints, x.Value)
		}
	}
	if want == tag.ByteKind {
		return tag.NewByteArray(bytes), nil
	}
	return tag.NewIntArray(ints), nil
}

func (s *scalar) toTag() (tag.Tag, error) {
	switch s.Raw[0] {
	case '"', '\'':
		v, ok := unquote(s.Raw)
		if !ok {
			return nil, errorAt(s.Pos, "invalid escape sequence in %s", s.Raw)
		}
		return tag.NewString(v), nil
	}
	return word(s.Raw), nil
}
