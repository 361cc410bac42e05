package tag

import (
	"slices"
	"strconv"
	"strings"
)

// ByteArray holds a sequence of bytes. The payload is copied on the
// way in and on the way out so that no caller ever shares the backing
// array with the tree.
type ByteArray struct {
	value []byte
}

// IntArray holds a sequence of 32-bit signed integers, copied on the
// way in and out like ByteArray.
type IntArray struct {
	value []int32
}

func NewByteArray(v []byte) *ByteArray {
	return &ByteArray{value: slices.Clone(v)}
}

func NewIntArray(v []int32) *IntArray {
	return &IntArray{value: slices.Clone(v)}
}

func (*ByteArray) Kind() Kind { return ByteArrayKind }
func (*IntArray) Kind() Kind  { return IntArrayKind }

func (*ByteArray) isTag() {}
func (*IntArray) isTag()  {}

// Value returns a copy of the bytes.
func (t *ByteArray) Value() []byte { return slices.Clone(t.value) }

// SetValue replaces the payload with a copy of v.
func (t *ByteArray) SetValue(v []byte) { t.value = slices.Clone(v) }

func (t *ByteArray) Len() int { return len(t.value) }

// At returns the i'th byte as a signed value.
func (t *ByteArray) At(i int) int8 { return int8(t.value[i]) }

// Value returns a copy of the ints.
func (t *IntArray) Value() []int32 { return slices.Clone(t.value) }

// SetValue replaces the payload with a copy of v.
func (t *IntArray) SetValue(v []int32) { t.value = slices.Clone(v) }

func (t *IntArray) Len() int { return len(t.value) }

func (t *IntArray) At(i int) int32 { return t.value[i] }

func (t *ByteArray) Clone() Tag { return NewByteArray(t.value) }
func (t *IntArray) Clone() Tag  { return NewIntArray(t.value) }

func (t *ByteArray) Equal(o Tag) bool {
	x, ok := o.(*ByteArray)
	return ok && x != nil && slices.Equal(t.value, x.value)
}

func (t *IntArray) Equal(o Tag) bool {
	x, ok := o.(*IntArray)
	return ok && x != nil && slices.Equal(t.value, x.value)
}

func (t *ByteArray) String() string {
	parts := make([]string, len(t.value))
	for i, b := range t.value {
		parts[i] = strconv.Itoa(int(int8(b)))
	}
	return "ByteArray[" + strings.Join(parts, " ") + "]"
}

func (t *IntArray) String() string {
	parts := make([]string, len(t.value))
	for i, v := range t.value {
		parts[i] = strconv.Itoa(int(v))
	}
	return "IntArray[" + strings.Join(parts, " ") + "]"
}
