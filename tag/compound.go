package tag

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Compound maps string keys to tags. Keys are unique; setting an
// existing key replaces its value. Key order carries no meaning and
// iteration is always in sorted key order.
type Compound struct {
	entries map[string]Tag
}

func NewCompound() *Compound {
	return &Compound{entries: map[string]Tag{}}
}

// FromMap builds a compound holding the entries of m.
func FromMap(m map[string]Tag) *Compound {
	c := &Compound{entries: make(map[string]Tag, len(m))}
	for k, v := range m {
		c.Set(k, v)
	}
	return c
}

func (*Compound) Kind() Kind { return CompoundKind }
func (*Compound) isTag()     {}

// Set installs v under key. A nil v removes the key.
//
// v is stored, not copied: a tag belongs to at most one parent, so pass
// a Clone to put the same value in two places. Set panics if v is c.
func (c *Compound) Set(key string, v Tag) {
	if v == Tag(c) {
		panic(ErrCycle)
	}
	if c.entries == nil {
		c.entries = map[string]Tag{}
	}
	if v == nil {
		delete(c.entries, key)
		return
	}
	c.entries[key] = v
}

func (c *Compound) Get(key string) (Tag, error) {
	v, ok := c.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	return v, nil
}

func (c *Compound) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// HasKind reports whether key is present and holds a tag of kind k.
func (c *Compound) HasKind(key string, k Kind) bool {
	v, ok := c.entries[key]
	return ok && v.Kind() == k
}

// Remove deletes key and reports whether it was present.
func (c *Compound) Remove(key string) bool {
	_, ok := c.entries[key]
	delete(c.entries, key)
	return ok
}

func (c *Compound) Len() int { return len(c.entries) }

// Keys returns the keys in sorted order.
func (c *Compound) Keys() []string {
	return slices.Sorted(maps.Keys(c.entries))
}

// All iterates over the entries in sorted key order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, k := range c.Keys() {
			if !yield(k, c.entries[k]) {
				return
			}
		}
	}
}

// Contents returns a shallow copy of the entries.
func (c *Compound) Contents() map[string]Tag {
	return maps.Clone(c.entries)
}

func (c *Compound) Clone() Tag {
	res := &Compound{entries: make(map[string]Tag, len(c.entries))}
	for k, v := range c.entries {
		res.entries[k] = v.Clone()
	}
	return res
}

func (c *Compound) Equal(o Tag) bool {
	x, ok := o.(*Compound)
	if !ok || x == nil {
		return false
	}
	if len(c.entries) != len(x.entries) {
		return false
	}
	for k, v := range c.entries {
		xv, ok := x.entries[k]
		if !ok || !v.Equal(xv) {
			return false
		}
	}
	return true
}

func (c *Compound) String() string {
	parts := make([]string, 0, len(c.entries))
	for k, v := range c.All() {
		parts = append(parts, strconv.Quote(k)+": "+v.String())
	}
	return "Compound{" + strings.Join(parts, ", ") + "}"
}

func (c *Compound) lookup(key string, k Kind) (Tag, error) {
	v, ok := c.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	if v.Kind() != k {
		return nil, fmt.Errorf("%w: %q is %s, not %s", ErrWrongVariant, key, v.Kind(), k)
	}
	return v, nil
}

func (c *Compound) SetByte(key string, v int8)        { c.Set(key, NewByte(v)) }
func (c *Compound) SetBoolean(key string, v bool)     { c.Set(key, NewBool(v)) }
func (c *Compound) SetShort(key string, v int16)      { c.Set(key, NewShort(v)) }
func (c *Compound) SetInt(key string, v int32)        { c.Set(key, NewInt(v)) }
func (c *Compound) SetLong(key string, v int64)       { c.Set(key, NewLong(v)) }
func (c *Compound) SetFloat(key string, v float32)    { c.Set(key, NewFloat(v)) }
func (c *Compound) SetDouble(key string, v float64)   { c.Set(key, NewDouble(v)) }
func (c *Compound) SetByteArray(key string, v []byte) { c.Set(key, NewByteArray(v)) }
func (c *Compound) SetString(key string, v string)    { c.Set(key, NewString(v)) }
func (c *Compound) SetIntArray(key string, v []int32) { c.Set(key, NewIntArray(v)) }

func (c *Compound) SetCompound(key string, v *Compound) {
	if v == nil {
		c.Set(key, nil)
		return
	}
	c.Set(key, v)
}

// SetList stores a new list built from elems. Nothing is stored if the
// elements are not all of one kind.
func (c *Compound) SetList(key string, elems ...Tag) error {
	l, err := NewList(elems...)
	if err != nil {
		return err
	}
	c.Set(key, l)
	return nil
}

func (c *Compound) GetByte(key string) (int8, error) {
	v, err := c.lookup(key, ByteKind)
	if err != nil {
		return 0, err
	}
	return v.(*Byte).Value, nil
}

// GetBoolean reads a Byte and reports whether it is nonzero.
func (c *Compound) GetBoolean(key string) (bool, error) {
	v, err := c.lookup(key, ByteKind)
	if err != nil {
		return false, err
	}
	return v.(*Byte).Bool(), nil
}

func (c *Compound) GetShort(key string) (int16, error) {
	v, err := c.lookup(key, ShortKind)
	if err != nil {
		return 0, err
	}
	return v.(*Short).Value, nil
}

func (c *Compound) GetInt(key string) (int32, error) {
	v, err := c.lookup(key, IntKind)
	if err != nil {
		return 0, err
	}
	return v.(*Int).Value, nil
}

func (c *Compound) GetLong(key string) (int64, error) {
	v, err := c.lookup(key, LongKind)
	if err != nil {
		return 0, err
	}
	return v.(*Long).Value, nil
}

func (c *Compound) GetFloat(key string) (float32, error) {
	v, err := c.lookup(key, FloatKind)
	if err != nil {
		return 0, err
	}
	return v.(*Float).Value, nil
}

func (c *Compound) GetDouble(key string) (float64, error) {
	v, err := c.lookup(key, DoubleKind)
	if err != nil {
		return 0, err
	}
	return v.(*Double).Value, nil
}

// GetByteArray returns a copy of the stored bytes.
func (c *Compound) GetByteArray(key string) ([]byte, error) {
	v, err := c.lookup(key, ByteArrayKind)
	if err != nil {
		return nil, err
	}
	return v.(*ByteArray).Value(), nil
}

func (c *Compound) GetString(key string) (string, error) {
	v, err := c.lookup(key, StringKind)
	if err != nil {
		return "", err
	}
	return v.(*String).Value, nil
}

// GetList returns the list stored under key, which must hold elements
// of kind elem. An empty list with no element kind matches any elem.
func (c *Compound) GetList(key string, elem Kind) (*List, error) {
	v, err := c.lookup(key, ListKind)
	if err != nil {
		return nil, err
	}
	l := v.(*List)
	if l.elemKind != NoKind && l.elemKind != elem {
		return nil, fmt.Errorf("%w: %q is a list of %s, not %s", ErrWrongVariant, key, l.elemKind, elem)
	}
	return l, nil
}

// GetIntArray returns a copy of the stored ints.
func (c *Compound) GetIntArray(key string) ([]int32, error) {
	v, err := c.lookup(key, IntArrayKind)
	if err != nil {
		return nil, err
	}
	return v.(*IntArray).Value(), nil
}

func (c *Compound) GetCompound(key string) (*Compound, error) {
	v, err := c.lookup(key, CompoundKind)
	if err != nil {
		return nil, err
	}
	return v.(*Compound), nil
}
