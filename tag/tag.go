package tag

import (
	"fmt"
	"strconv"
)

// Tag is one node of a tag tree. The set of implementations is closed:
// *End, *Byte, *Short, *Int, *Long, *Float, *Double, *ByteArray,
// *String, *List, *Compound and *IntArray.
type Tag interface {
	Kind() Kind
	Equal(Tag) bool
	Clone() Tag
	String() string

	isTag()
}

type End struct{}

type Byte struct{ Value int8 }

type Short struct{ Value int16 }

type Int struct{ Value int32 }

type Long struct{ Value int64 }

type Float struct{ Value float32 }

type Double struct{ Value float64 }

type String struct{ Value string }

func NewByte(v int8) *Byte        { return &Byte{Value: v} }
func NewShort(v int16) *Short     { return &Short{Value: v} }
func NewInt(v int32) *Int         { return &Int{Value: v} }
func NewLong(v int64) *Long       { return &Long{Value: v} }
func NewFloat(v float32) *Float   { return &Float{Value: v} }
func NewDouble(v float64) *Double { return &Double{Value: v} }
func NewString(v string) *String  { return &String{Value: v} }

// NewBool returns a Byte holding 1 for true and 0 for false.
func NewBool(v bool) *Byte {
	if v {
		return &Byte{Value: 1}
	}
	return &Byte{Value: 0}
}

// Bool interprets the byte as a boolean: any nonzero value is true.
func (t *Byte) Bool() bool { return t.Value != 0 }

func (*End) Kind() Kind    { return EndKind }
func (*Byte) Kind() Kind   { return ByteKind }
func (*Short) Kind() Kind  { return ShortKind }
func (*Int) Kind() Kind    { return IntKind }
func (*Long) Kind() Kind   { return LongKind }
func (*Float) Kind() Kind  { return FloatKind }
func (*Double) Kind() Kind { return DoubleKind }
func (*String) Kind() Kind { return StringKind }

func (*End) isTag()    {}
func (*Byte) isTag()   {}
func (*Short) isTag()  {}
func (*Int) isTag()    {}
func (*Long) isTag()   {}
func (*Float) isTag()  {}
func (*Double) isTag() {}
func (*String) isTag() {}

func (t *End) Clone() Tag    { return &End{} }
func (t *Byte) Clone() Tag   { return &Byte{Value: t.Value} }
func (t *Short) Clone() Tag  { return &Short{Value: t.Value} }
func (t *Int) Clone() Tag    { return &Int{Value: t.Value} }
func (t *Long) Clone() Tag   { return &Long{Value: t.Value} }
func (t *Float) Clone() Tag  { return &Float{Value: t.Value} }
func (t *Double) Clone() Tag { return &Double{Value: t.Value} }
func (t *String) Clone() Tag { return &String{Value: t.Value} }

func (t *End) Equal(o Tag) bool {
	_, ok := o.(*End)
	return ok
}

func (t *Byte) Equal(o Tag) bool {
	x, ok := o.(*Byte)
	return ok && x != nil && x.Value == t.Value
}

func (t *Short) Equal(o Tag) bool {
	x, ok := o.(*Short)
	return ok && x != nil && x.Value == t.Value
}

func (t *Int) Equal(o Tag) bool {
	x, ok := o.(*Int)
	return ok && x != nil && x.Value == t.Value
}

func (t *Long) Equal(o Tag) bool {
	x, ok := o.(*Long)
	return ok && x != nil && x.Value == t.Value
}

func (t *Float) Equal(o Tag) bool {
	x, ok := o.(*Float)
	return ok && x != nil && x.Value == t.Value
}

func (t *Double) Equal(o Tag) bool {
	x, ok := o.(*Double)
	return ok && x != nil && x.Value == t.Value
}

func (t *String) Equal(o Tag) bool {
	x, ok := o.(*String)
	return ok && x != nil && x.Value == t.Value
}

func (t *End) String() string   { return "End" }
func (t *Byte) String() string  { return "Byte(" + strconv.Itoa(int(t.Value)) + ")" }
func (t *Short) String() string { return "Short(" + strconv.Itoa(int(t.Value)) + ")" }
func (t *Int) String() string   { return "Int(" + strconv.Itoa(int(t.Value)) + ")" }
func (t *Long) String() string  { return "Long(" + strconv.FormatInt(t.Value, 10) + ")" }

func (t *Float) String() string {
	return "Float(" + strconv.FormatFloat(float64(t.Value), 'g', -1, 32) + ")"
}

func (t *Double) String() string { return "Double(" + strconv.FormatFloat(t.Value, 'g', -1, 64) + ")" }
func (t *String) String() string { return "String(" + strconv.Quote(t.Value) + ")" }

// Equal reports whether a and b are the same variant holding
// recursively equal payloads. Two nil tags are equal.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Zero returns a new tag of kind k holding its zero payload.
func Zero(k Kind) (Tag, error) {
	switch k {
	case EndKind:
		return &End{}, nil
	case ByteKind:
		return &Byte{}, nil
	case ShortKind:
		return &Short{}, nil
	case IntKind:
		return &Int{}, nil
	case LongKind:
		return &Long{}, nil
	case FloatKind:
		return &Float{}, nil
	case DoubleKind:
		return &Double{}, nil
	case ByteArrayKind:
		return &ByteArray{}, nil
	case StringKind:
		return &String{}, nil
	case ListKind:
		return NewListOf(NoKind), nil
	case CompoundKind:
		return NewCompound(), nil
	case IntArrayKind:
		return &IntArray{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}
