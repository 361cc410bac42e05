package patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/nbt-format/go-nbt/debug"
	"github.com/signadot/nbt-format/go-nbt/libdiff"
	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/tag"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Op is one RFC 6902 operation. Path and From are JSON pointers over
// the plain shape of the document: "/Inventory/0/id" addresses the id
// of the first Inventory element.
//
// A value for add, replace and test is given either as a tag in its
// typed JSON form in Value or as text notation in SNBT.
type Op struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
	SNBT  string          `json:"snbt,omitempty"`
}

// Decode reads a JSON array of operations.
func Decode(d []byte) ([]Op, error) {
	var ops []Op
	if err := json.Unmarshal(d, &ops); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return ops, nil
}

// Apply decodes patch and applies it to c.
func Apply(c *tag.Compound, patch []byte) (*tag.Compound, error) {
	ops, err := Decode(patch)
	if err != nil {
		return nil, err
	}
	return ApplyOps(c, ops)
}

// ApplyOps applies ops in order to a copy of c. The result of every
// operation must again be a valid tree: list elements keep one kind and
// array elements must be Byte or Int tags matching the array.
func ApplyOps(c *tag.Compound, ops []Op) (*tag.Compound, error) {
	doc := c
	for i := range ops {
		op := &ops[i]
		if debug.Patch() {
			debug.Logf("patch op %d: %s %s\n", i, op.Op, op.Path)
		}
		res, err := applyOp(doc, op)
		if err != nil {
			return nil, fmt.Errorf("%w: op %d (%s %s): %w", ErrPatch, i, op.Op, op.Path, err)
		}
		doc = res
	}
	if doc == c {
		return c.Clone().(*tag.Compound), nil
	}
	return doc, nil
}

func applyOp(doc *tag.Compound, op *Op) (*tag.Compound, error) {
	jop := map[string]any{"op": op.Op}
	path, err := typedPointer(op.Path)
	if err != nil {
		return nil, err
	}
	jop["path"] = path
	switch op.Op {
	case "move", "copy":
		from, err := typedPointer(op.From)
		if err != nil {
			return nil, err
		}
		jop["from"] = from
	case "add", "replace", "test":
		v, err := op.value()
		if err != nil {
			return nil, err
		}
		raw, err := valueFor(doc, op.Path, v)
		if err != nil {
			return nil, err
		}
		jop["value"] = raw
	}
	pd, err := json.Marshal([]any{jop})
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	d, err := tag.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	res, err := tag.UnmarshalJSON(out)
	if err != nil {
		return nil, err
	}
	rc, ok := res.(*tag.Compound)
	if !ok {
		return nil, fmt.Errorf("%w: root became %s", tag.ErrWrongVariant, res.Kind())
	}
	return rc, nil
}

func (op *Op) value() (tag.Tag, error) {
	switch {
	case op.SNBT != "":
		return parse.ParseTag(op.SNBT)
	case len(op.Value) != 0:
		return tag.UnmarshalJSON(op.Value)
	default:
		return nil, fmt.Errorf("%s needs a value", op.Op)
	}
}

// valueFor renders v for insertion at ptr in doc. Array elements are
// stored as bare numbers.
func valueFor(doc *tag.Compound, ptr string, v tag.Tag) (json.RawMessage, error) {
	toks, err := splitPointer(ptr)
	if err != nil {
		return nil, err
	}
	if len(toks) > 0 {
		parent, err := walk(doc, toks[:len(toks)-1])
		if err != nil {
			return nil, err
		}
		switch parent.(type) {
		case *tag.ByteArray:
			b, ok := v.(*tag.Byte)
			if !ok {
				return nil, fmt.Errorf("%w: cannot insert %s into ByteArray", tag.ErrKindMismatch, v.Kind())
			}
			return json.Marshal(b.Value)
		case *tag.IntArray:
			n, ok := v.(*tag.Int)
			if !ok {
				return nil, fmt.Errorf("%w: cannot insert %s into IntArray", tag.ErrKindMismatch, v.Kind())
			}
			return json.Marshal(n.Value)
		}
	}
	return tag.MarshalJSON(v)
}

func walk(t tag.Tag, toks []string) (tag.Tag, error) {
	for _, tok := range toks {
		var p *tag.Path
		if _, ok := t.(*tag.Compound); ok {
			p = p.Field(tok)
		} else {
			i, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an index", tag.ErrPathNotFound, tok)
			}
			p = p.At(i)
		}
		var err error
		if t, err = p.Get(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// splitPointer splits and unescapes an RFC 6901 pointer.
func splitPointer(ptr string) ([]string, error) {
	if ptr == "" {
		return nil, nil
	}
	if !strings.HasPrefix(ptr, "/") {
		return nil, fmt.Errorf("%w: pointer %q must start with '/'", tag.ErrBadPath, ptr)
	}
	toks := strings.Split(ptr[1:], "/")
	for i, tok := range toks {
		toks[i] = strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")
	}
	return toks, nil
}

// typedPointer maps a pointer over the plain document to one over its
// typed JSON form, where every container keeps its content under
// "value".
func typedPointer(ptr string) (string, error) {
	if ptr == "" {
		return "", nil
	}
	if !strings.HasPrefix(ptr, "/") {
		return "", fmt.Errorf("%w: pointer %q must start with '/'", tag.ErrBadPath, ptr)
	}
	var buf strings.Builder
	for _, tok := range strings.Split(ptr[1:], "/") {
		buf.WriteString("/value/")
		buf.WriteString(tok)
	}
	return buf.String(), nil
}

// Pointer renders p as an RFC 6901 pointer over the plain document.
func Pointer(p *tag.Path) string {
	var buf strings.Builder
	for x := p; x != nil; x = x.Next {
		buf.WriteByte('/')
		switch {
		case x.Key != nil:
			buf.WriteString(strings.ReplaceAll(strings.ReplaceAll(*x.Key, "~", "~0"), "/", "~1"))
		case x.Index != nil:
			buf.WriteString(strconv.Itoa(*x.Index))
		}
	}
	return buf.String()
}

// FromChanges converts a diff into operations. Applying them to the
// diff's source gives its target.
func FromChanges(cs []libdiff.Change) ([]Op, error) {
	res := make([]Op, 0, len(cs))
	for i := range cs {
		c := &cs[i]
		op := Op{Path: Pointer(c.Path)}
		switch c.Op {
		case libdiff.Insert:
			op.Op = "add"
		case libdiff.Delete:
			op.Op = "remove"
		default:
			op.Op = "replace"
		}
		if c.To != nil {
			v, err := tag.MarshalJSON(c.To)
			if err != nil {
				return nil, err
			}
			op.Value = v
		}
		res = append(res, op)
	}
	return res, nil
}
