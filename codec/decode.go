package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/signadot/nbt-format/go-nbt/debug"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// readChunk caps single allocations driven by a declared length, so a
// lying header costs no more memory than the bytes actually present.
const readChunk = 64 << 10

// Decoder reads one document from an uncompressed stream.
type Decoder struct {
	r    io.Reader
	opts *options
	buf  [8]byte
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: getOpts(opts...)}
}

// Decode reads a document and discards the root name.
func (d *Decoder) Decode() (*tag.Compound, error) {
	_, c, err := d.DecodeNamed()
	return c, err
}

// DecodeNamed reads a document and returns the root name with it.
func (d *Decoder) DecodeNamed() (string, *tag.Compound, error) {
	k, err := d.readKind()
	if err != nil {
		return "", nil, err
	}
	if k != tag.CompoundKind {
		return "", nil, fmt.Errorf("%w: got %s", ErrRootNotCompound, k)
	}
	name, err := d.readString()
	if err != nil {
		return "", nil, err
	}
	c, err := d.readCompound(1)
	if err != nil {
		return "", nil, err
	}
	d.opts.log.Debug("decoded nbt document", "root", name, "entries", c.Len())
	if debug.Decode() {
		debug.Logf("decoded %q:\n%v\n", name, c)
	}
	return name, c, nil
}

func (d *Decoder) read(b []byte) error {
	_, err := io.ReadFull(d.r, b)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return ErrTruncated
	default:
		return fmt.Errorf("reading nbt: %w", err)
	}
}

func (d *Decoder) readKind() (tag.Kind, error) {
	if err := d.read(d.buf[:1]); err != nil {
		return 0, err
	}
	k := tag.Kind(d.buf[0])
	if !k.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, d.buf[0])
	}
	return k, nil
}

func (d *Decoder) readU8() (byte, error) {
	err := d.read(d.buf[:1])
	return d.buf[0], err
}

func (d *Decoder) readU16() (uint16, error) {
	err := d.read(d.buf[:2])
	return binary.BigEndian.Uint16(d.buf[:2]), err
}

func (d *Decoder) readU32() (uint32, error) {
	err := d.read(d.buf[:4])
	return binary.BigEndian.Uint32(d.buf[:4]), err
}

func (d *Decoder) readU64() (uint64, error) {
	err := d.read(d.buf[:8])
	return binary.BigEndian.Uint64(d.buf[:8]), err
}

func (d *Decoder) readLen() (int, error) {
	n, err := d.readU32()
	if err != nil {
		return 0, err
	}
	if int32(n) < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeLength, int32(n))
	}
	return int(n), nil
}

// readBytes reads n bytes, growing the result as data arrives.
func (d *Decoder) readBytes(n int) ([]byte, error) {
	if n <= readChunk {
		res := make([]byte, n)
		return res, d.read(res)
	}
	var res []byte
	for len(res) < n {
		m := min(readChunk, n-len(res))
		start := len(res)
		res = append(res, make([]byte, m)...)
		if err := d.read(res[start:]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (d *Decoder) readString() (string, error) {
	n, err := d.readU16()
	if err != nil {
		return "", err
	}
	b, err := d.readBytes(int(n))
	if err != nil {
		return "", err
	}
	s, ok := decodeMUTF8(b)
	if !ok {
		return "", ErrMalformedString
	}
	return s, nil
}

func (d *Decoder) readPayload(k tag.Kind, depth int) (tag.Tag, error) {
	switch k {
	case tag.EndKind:
		return &tag.End{}, nil
	case tag.ByteKind:
		v, err := d.readU8()
		if err != nil {
			return nil, err
		}
		return tag.NewByte(int8(v)), nil
	case tag.ShortKind:
		v, err := d.readU16()
		if err != nil {
			return nil, err
		}
		return tag.NewShort(int16(v)), nil
	case tag.IntKind:
		v, err := d.readU32()
		if err != nil {
			return nil, err
		}
		return tag.NewInt(int32(v)), nil
	case tag.LongKind:
		v, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return tag.NewLong(int64(v)), nil
	case tag.FloatKind:
		v, err := d.readU32()
		if err != nil {
			return nil, err
		}
		return tag.NewFloat(math.Float32frombits(v)), nil
	case tag.DoubleKind:
		v, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return tag.NewDouble(math.Float64frombits(v)), nil
	case tag.ByteArrayKind:
		n, err := d.readLen()
		if err != nil {
			return nil, err
		}
		b, err := d.readBytes(n)
		if err != nil {
			return nil, err
		}
		return tag.NewByteArray(b), nil
	case tag.StringKind:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return tag.NewString(s), nil
	case tag.ListKind:
		return d.readList(depth + 1)
	case tag.CompoundKind:
		return d.readCompound(depth + 1)
	case tag.IntArrayKind:
		return d.readIntArray()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

func (d *Decoder) checkDepth(depth int) error {
	if d.opts.maxDepth > 0 && depth > d.opts.maxDepth {
		return fmt.Errorf("%w: %d", ErrMaxDepth, d.opts.maxDepth)
	}
	return nil
}

func (d *Decoder) readCompound(depth int) (*tag.Compound, error) {
	if err := d.checkDepth(depth); err != nil {
		return nil, err
	}
	res := tag.NewCompound()
	for {
		k, err := d.readKind()
		if err != nil {
			return nil, err
		}
		if k == tag.EndKind {
			return res, nil
		}
		name, err := d.readString()
		if err != nil {
			return nil, err
		}
		v, err := d.readPayload(k, depth)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		res.Set(name, v)
	}
}

func (d *Decoder) readList(depth int) (*tag.List, error) {
	if err := d.checkDepth(depth); err != nil {
		return nil, err
	}
	k, err := d.readKind()
	if err != nil {
		return nil, err
	}
	n, err := d.readU32()
	if err != nil {
		return nil, err
	}
	count := int(int32(n))
	res := tag.NewListOf(k)
	if count <= 0 || k == tag.EndKind {
		return res, nil
	}
	elems := make([]tag.Tag, 0, min(count, 1024))
	for i := range count {
		v, err := d.readPayload(k, depth)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		elems = append(elems, v)
	}
	if err := res.AddAll(elems...); err != nil {
		return nil, err
	}
	return res, nil
}

func (d *Decoder) readIntArray() (*tag.IntArray, error) {
	n, err := d.readLen()
	if err != nil {
		return nil, err
	}
	b, err := d.readBytes(4 * n)
	if err != nil {
		return nil, err
	}
	vals := make([]int32, n)
	for i := range vals {
		vals[i] = int32(binary.BigEndian.Uint32(b[4*i:]))
	}
	return tag.NewIntArray(vals), nil
}

// Decode reads one uncompressed document from r.
func Decode(r io.Reader, opts ...Option) (*tag.Compound, error) {
	return NewDecoder(r, opts...).Decode()
}

// Unmarshal decodes an uncompressed document held in b.
func Unmarshal(b []byte, opts ...Option) (*tag.Compound, error) {
	return Decode(bytes.NewReader(b), opts...)
}

// DecodeAuto reads a document which may or may not be gzip-compressed,
// deciding by the gzip magic number. r is read through a buffer, so
// bytes past the document may be consumed.
func DecodeAuto(r io.Reader, opts ...Option) (*tag.Compound, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == gzipID1 && magic[1] == gzipID2 {
		return DecodeCompressed(br, opts...)
	}
	return Decode(br, opts...)
}
