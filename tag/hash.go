package tag

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of t, consistent with Equal
// for the lifetime of the process. The seed is chosen per process, so
// hashes must not be persisted.
func Hash(t Tag) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	writeHash(&h, t)
	return h.Sum64()
}

func writeHash(h *maphash.Hash, t Tag) {
	var b [8]byte
	if t == nil {
		h.WriteByte(0xff)
		return
	}
	h.WriteByte(byte(t.Kind()))
	switch x := t.(type) {
	case *End:
	case *Byte:
		h.WriteByte(byte(x.Value))
	case *Short:
		binary.LittleEndian.PutUint16(b[:], uint16(x.Value))
		h.Write(b[:2])
	case *Int:
		binary.LittleEndian.PutUint32(b[:], uint32(x.Value))
		h.Write(b[:4])
	case *Long:
		binary.LittleEndian.PutUint64(b[:], uint64(x.Value))
		h.Write(b[:])
	case *Float:
		v := x.Value
		if v == 0 {
			// +0 and -0 are Equal
			v = 0
		}
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		h.Write(b[:4])
	case *Double:
		v := x.Value
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		h.Write(b[:])
	case *String:
		h.WriteString(x.Value)
	case *ByteArray:
		binary.LittleEndian.PutUint64(b[:], uint64(len(x.value)))
		h.Write(b[:])
		h.Write(x.value)
	case *IntArray:
		binary.LittleEndian.PutUint64(b[:], uint64(len(x.value)))
		h.Write(b[:])
		for _, v := range x.value {
			binary.LittleEndian.PutUint32(b[:], uint32(v))
			h.Write(b[:4])
		}
	case *List:
		// element kind is left out: empty lists are equal whatever
		// kind they remember.
		binary.LittleEndian.PutUint64(b[:], uint64(len(x.elems)))
		h.Write(b[:])
		for _, e := range x.elems {
			binary.LittleEndian.PutUint64(b[:], Hash(e))
			h.Write(b[:])
		}
	case *Compound:
		binary.LittleEndian.PutUint64(b[:], uint64(len(x.entries)))
		h.Write(b[:])
		for k, v := range x.All() {
			h.WriteString(k)
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], Hash(v))
			h.Write(b[:])
		}
	}
}
