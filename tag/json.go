package tag

import (
	"encoding/json"
	"fmt"
)

// jsonTag is the lossless JSON form of a tag:
//
//	{"type": "Int", "value": 3}
//	{"type": "List", "elem": "String", "value": [{"type": "String", "value": "a"}]}
//	{"type": "Compound", "value": {"k": {"type": "Byte", "value": 1}}}
type jsonTag struct {
	Type  Kind            `json:"type"`
	Elem  *Kind           `json:"elem,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes t in its kind-annotated JSON form.
func MarshalJSON(t Tag) ([]byte, error) {
	jt, err := toJSONTag(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jt)
}

func toJSONTag(t Tag) (*jsonTag, error) {
	if t == nil {
		return nil, ErrNilTag
	}
	res := &jsonTag{Type: t.Kind()}
	var (
		v   any
		err error
	)
	switch x := t.(type) {
	case *End:
		return res, nil
	case *Byte:
		v = x.Value
	case *Short:
		v = x.Value
	case *Int:
		v = x.Value
	case *Long:
		v = x.Value
	case *Float:
		v = x.Value
	case *Double:
		v = x.Value
	case *String:
		v = x.Value
	case *ByteArray:
		signed := make([]int8, len(x.value))
		for i, b := range x.value {
			signed[i] = int8(b)
		}
		v = signed
	case *IntArray:
		v = x.value
	case *List:
		elem := x.elemKind
		res.Elem = &elem
		elems := make([]*jsonTag, len(x.elems))
		for i, e := range x.elems {
			if elems[i], err = toJSONTag(e); err != nil {
				return nil, err
			}
		}
		v = elems
	case *Compound:
		entries := make(map[string]*jsonTag, len(x.entries))
		for k, e := range x.entries {
			if entries[k], err = toJSONTag(e); err != nil {
				return nil, fmt.Errorf("%q: %w", k, err)
			}
		}
		v = entries
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, t)
	}
	res.Value, err = json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// UnmarshalJSON decodes the kind-annotated JSON form produced by
// MarshalJSON. Lists are rebuilt through Add, so a document holding a
// heterogeneous list is rejected with ErrKindMismatch.
func UnmarshalJSON(d []byte) (Tag, error) {
	jt := &jsonTag{}
	if err := json.Unmarshal(d, jt); err != nil {
		return nil, err
	}
	return fromJSONTag(jt)
}

func fromJSONTag(jt *jsonTag) (Tag, error) {
	if jt == nil {
		return nil, ErrNilTag
	}
	if jt.Type != EndKind && len(jt.Value) == 0 {
		return nil, fmt.Errorf("%s tag without value", jt.Type)
	}
	switch jt.Type {
	case EndKind:
		return &End{}, nil
	case ByteKind:
		res := &Byte{}
		return res, json.Unmarshal(jt.Value, &res.Value)
	case ShortKind:
		res := &Short{}
		return res, json.Unmarshal(jt.Value, &res.Value)
	case IntKind:
		res := &Int{}
		return res, json.Unmarshal(jt.Value, &res.Value)
	case LongKind:
		res := &Long{}
		return res, json.Unmarshal(jt.Value, &res.Value)
	case FloatKind:
		res := &Float{}
		return res, json.Unmarshal(jt.Value, &res.Value)
	case DoubleKind:
		res := &Double{}
		return res, json.Unmarshal(jt.Value, &res.Value)
	case StringKind:
		res := &String{}
		return res, json.Unmarshal(jt.Value, &res.Value)
	case ByteArrayKind:
		var signed []int8
		if err := json.Unmarshal(jt.Value, &signed); err != nil {
			return nil, err
		}
		res := &ByteArray{value: make([]byte, len(signed))}
		for i, b := range signed {
			res.value[i] = byte(b)
		}
		return res, nil
	case IntArrayKind:
		res := &IntArray{}
		return res, json.Unmarshal(jt.Value, &res.value)
	case ListKind:
		var elems []*jsonTag
		if err := json.Unmarshal(jt.Value, &elems); err != nil {
			return nil, err
		}
		res := NewListOf(NoKind)
		if jt.Elem != nil {
			if !jt.Elem.Valid() && *jt.Elem != NoKind {
				return nil, fmt.Errorf("%w: list element %d", ErrUnknownKind, int(*jt.Elem))
			}
			res = NewListOf(*jt.Elem)
		}
		for i, je := range elems {
			e, err := fromJSONTag(je)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if err := res.Add(e); err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return res, nil
	case CompoundKind:
		var entries map[string]*jsonTag
		if err := json.Unmarshal(jt.Value, &entries); err != nil {
			return nil, err
		}
		res := &Compound{entries: make(map[string]Tag, len(entries))}
		for k, je := range entries {
			e, err := fromJSONTag(je)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", k, err)
			}
			res.entries[k] = e
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(jt.Type))
	}
}

func (c *Compound) MarshalJSON() ([]byte, error) {
	return MarshalJSON(c)
}

func (c *Compound) UnmarshalJSON(d []byte) error {
	t, err := UnmarshalJSON(d)
	if err != nil {
		return err
	}
	x, ok := t.(*Compound)
	if !ok {
		return fmt.Errorf("%w: expected Compound, got %s", ErrWrongVariant, t.Kind())
	}
	c.entries = x.entries
	return nil
}
