package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/signadot/nbt-format/go-nbt/codec"
	"github.com/signadot/nbt-format/go-nbt/encode"
	"github.com/signadot/nbt-format/go-nbt/format"
	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// ErrUnrepresentable is returned by FromAny for values with no tag form.
var ErrUnrepresentable = errors.New("value has no tag representation")

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("convert: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("convert: CBOR decoder initialization failed: " + err.Error())
	}
}

// ToAny projects t onto plain Go values:
//
//	Byte int8, Short int16, Int int32, Long int64,
//	Float float32, Double float64, String string,
//	ByteArray []int8, IntArray []int32,
//	List []any, Compound map[string]any.
//
// The projection drops kinds: a Byte holding 1 and an Int holding 1
// both become small integers once marshalled.
func ToAny(t tag.Tag) any {
	switch x := t.(type) {
	case *tag.Byte:
		return x.Value
	case *tag.Short:
		return x.Value
	case *tag.Int:
		return x.Value
	case *tag.Long:
		return x.Value
	case *tag.Float:
		return x.Value
	case *tag.Double:
		return x.Value
	case *tag.String:
		return x.Value
	case *tag.ByteArray:
		res := make([]int8, x.Len())
		for i := range res {
			res[i] = x.At(i)
		}
		return res
	case *tag.IntArray:
		return x.Value()
	case *tag.List:
		res := make([]any, 0, x.Len())
		for _, e := range x.All() {
			res = append(res, ToAny(e))
		}
		return res
	case *tag.Compound:
		res := make(map[string]any, x.Len())
		for k, v := range x.All() {
			res[k] = ToAny(v)
		}
		return res
	default:
		return nil
	}
}

// Marshal renders t in format f. The binary formats require a compound.
func Marshal(t tag.Tag, f format.Format) ([]byte, error) {
	switch f {
	case format.NBTFormat, format.RawFormat:
		c, ok := t.(*tag.Compound)
		if !ok {
			return nil, fmt.Errorf("%w: %s needs a compound, got %s", format.ErrBadFormat, f, kindOf(t))
		}
		buf := bytes.NewBuffer(nil)
		if f == format.NBTFormat {
			if err := codec.EncodeCompressed(buf, c); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		}
		if err := codec.Encode(buf, c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case format.SNBTFormat:
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(t, buf, encode.EncodeIndent(2)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case format.JSONFormat:
		d, err := tag.MarshalJSON(t)
		if err != nil {
			return nil, err
		}
		return indentJSON(d)
	case format.PlainJSONFormat:
		d, err := json.Marshal(ToAny(t))
		if err != nil {
			return nil, err
		}
		return indentJSON(d)
	case format.YAMLFormat:
		return yaml.Marshal(ToAny(t))
	case format.CBORFormat:
		return cborEnc.Marshal(ToAny(t))
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}

func indentJSON(d []byte) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func kindOf(t tag.Tag) string {
	if t == nil {
		return "nil"
	}
	return t.Kind().String()
}

// Unmarshal reads a tag tree from data in format f. Only formats for
// which f.CanDecode() holds are accepted. NBT input that is not gzipped
// is accepted as raw.
func Unmarshal(data []byte, f format.Format, opts ...parse.ParseOption) (tag.Tag, error) {
	switch f {
	case format.NBTFormat, format.RawFormat:
		var (
			c   *tag.Compound
			err error
		)
		if f == format.NBTFormat {
			c, err = codec.DecodeAuto(bytes.NewReader(data))
		} else {
			c, err = codec.Unmarshal(data)
		}
		if err != nil {
			return nil, err
		}
		return c, nil
	case format.SNBTFormat:
		return parse.ParseTag(string(data), opts...)
	case format.JSONFormat:
		return tag.UnmarshalJSON(data)
	default:
		return nil, fmt.Errorf("%w: cannot read %s", format.ErrBadFormat, f)
	}
}

// DecodeCBOR decodes CBOR produced by Marshal back to plain values.
func DecodeCBOR(data []byte) (any, error) {
	var v any
	if err := cborDec.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// FromAny is the inverse of ToAny for the Go types it produces. Plain
// int becomes Int when it fits and Long otherwise, bool becomes a Byte
// of 0 or 1, and lists must be homogeneous.
func FromAny(v any) (tag.Tag, error) {
	switch x := v.(type) {
	case int8:
		return tag.NewByte(x), nil
	case int16:
		return tag.NewShort(x), nil
	case int32:
		return tag.NewInt(x), nil
	case int64:
		return tag.NewLong(x), nil
	case int:
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return tag.NewInt(int32(x)), nil
		}
		return tag.NewLong(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows Long", ErrUnrepresentable, x)
		}
		return FromAny(int64(x))
	case float32:
		return tag.NewFloat(x), nil
	case float64:
		return tag.NewDouble(x), nil
	case string:
		return tag.NewString(x), nil
	case bool:
		return tag.NewBool(x), nil
	case []int8:
		b := make([]byte, len(x))
		for i, e := range x {
			b[i] = byte(e)
		}
		return tag.NewByteArray(b), nil
	case []int32:
		return tag.NewIntArray(x), nil
	case []any:
		l := tag.NewListOf(tag.NoKind)
		for i, e := range x {
			et, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if err := l.Add(et); err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return l, nil
	case map[string]any:
		c := tag.NewCompound()
		for k, e := range x {
			et, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", encode.QuoteKey(k), err)
			}
			c.Set(k, et)
		}
		return c, nil
	case tag.Tag:
		return x, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnrepresentable, v)
	}
}
