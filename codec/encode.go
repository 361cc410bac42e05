package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/signadot/nbt-format/go-nbt/debug"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// Encoder writes documents to an uncompressed stream.
type Encoder struct {
	w    io.Writer
	opts *options
	buf  []byte
}

func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: getOpts(opts...)}
}

// Encode writes c under the root name chosen by WithRootName.
func (e *Encoder) Encode(c *tag.Compound) error {
	return e.EncodeNamed(e.opts.rootName, c)
}

// EncodeNamed writes c under the given root name. Compound entries are
// written in sorted key order, so equal trees produce equal bytes.
func (e *Encoder) EncodeNamed(name string, c *tag.Compound) error {
	if c == nil {
		return tag.ErrNilTag
	}
	if debug.Encode() {
		debug.Logf("encoding %q:\n%v\n", name, c)
	}
	e.buf = append(e.buf[:0], byte(tag.CompoundKind))
	if err := e.writeString(name); err != nil {
		return err
	}
	if err := e.writeCompound(c, 1); err != nil {
		return err
	}
	if err := e.flush(); err != nil {
		return err
	}
	e.opts.log.Debug("encoded nbt document", "root", name, "entries", c.Len())
	return nil
}

func (e *Encoder) flush() error {
	if _, err := e.w.Write(e.buf); err != nil {
		return fmt.Errorf("writing nbt: %w", err)
	}
	e.buf = e.buf[:0]
	return nil
}

// maybeFlush hands buffered bytes to the writer once they pile up.
func (e *Encoder) maybeFlush() error {
	if len(e.buf) < readChunk {
		return nil
	}
	return e.flush()
}

func (e *Encoder) writeString(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrMalformedString, s)
	}
	n := mutf8Len(s)
	if n > maxStringLen {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, n)
	}
	e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(n))
	e.buf = appendMUTF8(e.buf, s)
	return nil
}

func (e *Encoder) checkDepth(depth int) error {
	if e.opts.maxDepth > 0 && depth > e.opts.maxDepth {
		return fmt.Errorf("%w: %d", ErrMaxDepth, e.opts.maxDepth)
	}
	return nil
}

func (e *Encoder) writePayload(t tag.Tag, depth int) error {
	if isNil(t) {
		return tag.ErrNilTag
	}
	switch x := t.(type) {
	case *tag.Byte:
		e.buf = append(e.buf, byte(x.Value))
	case *tag.Short:
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(x.Value))
	case *tag.Int:
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(x.Value))
	case *tag.Long:
		e.buf = binary.BigEndian.AppendUint64(e.buf, uint64(x.Value))
	case *tag.Float:
		e.buf = binary.BigEndian.AppendUint32(e.buf, math.Float32bits(x.Value))
	case *tag.Double:
		e.buf = binary.BigEndian.AppendUint64(e.buf, math.Float64bits(x.Value))
	case *tag.ByteArray:
		v := x.Value()
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(len(v)))
		e.buf = append(e.buf, v...)
	case *tag.String:
		return e.writeString(x.Value)
	case *tag.List:
		return e.writeList(x, depth+1)
	case *tag.Compound:
		return e.writeCompound(x, depth+1)
	case *tag.IntArray:
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(x.Len()))
		for i := range x.Len() {
			e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(x.At(i)))
		}
	default:
		return fmt.Errorf("%w: %s has no payload", tag.ErrKindMismatch, t.Kind())
	}
	return e.maybeFlush()
}

// isNil reports whether t is nil or a nil pointer to a tag variant.
func isNil(t tag.Tag) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (e *Encoder) writeCompound(c *tag.Compound, depth int) error {
	if err := e.checkDepth(depth); err != nil {
		return err
	}
	for k, v := range c.All() {
		if v.Kind() == tag.EndKind {
			return fmt.Errorf("%q: %w: End cannot be a compound value", k, tag.ErrKindMismatch)
		}
		e.buf = append(e.buf, byte(v.Kind()))
		if err := e.writeString(k); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		if err := e.writePayload(v, depth); err != nil {
			return fmt.Errorf("%q: %w", k, err)
		}
	}
	e.buf = append(e.buf, byte(tag.EndKind))
	return nil
}

// writeList writes an untyped list as element kind End with count 0.
func (e *Encoder) writeList(l *tag.List, depth int) error {
	if err := e.checkDepth(depth); err != nil {
		return err
	}
	k := l.ElemKind()
	if k == tag.NoKind || k == tag.EndKind {
		e.buf = append(e.buf, byte(tag.EndKind), 0, 0, 0, 0)
		return nil
	}
	e.buf = append(e.buf, byte(k))
	e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(l.Len()))
	for i, v := range l.All() {
		if err := e.writePayload(v, depth); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	return nil
}

// Encode writes c to w uncompressed.
func Encode(w io.Writer, c *tag.Compound, opts ...Option) error {
	return NewEncoder(w, opts...).Encode(c)
}

// Marshal returns the uncompressed encoding of c.
func Marshal(c *tag.Compound, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, c, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
