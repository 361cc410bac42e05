package convert

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/nbt-format/go-nbt/format"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

func sample(t *testing.T) *tag.Compound {
	t.Helper()
	c := tag.NewCompound()
	c.SetByte("b", -3)
	c.SetShort("s", 300)
	c.SetInt("i", 70000)
	c.SetLong("l", 1<<40)
	c.SetDouble("d", 1.5)
	c.SetString("name", "steve")
	c.SetByteArray("ba", []byte{1, 0xff})
	c.SetIntArray("ia", []int32{4, -5})
	if err := c.SetList("pos", tag.NewDouble(1), tag.NewDouble(2)); err != nil {
		t.Fatal(err)
	}
	inner := tag.NewCompound()
	inner.SetString("id", "minecraft:stone")
	c.SetCompound("item", inner)
	return c
}

func TestToAny(t *testing.T) {
	got := ToAny(sample(t))
	want := map[string]any{
		"b":    int8(-3),
		"s":    int16(300),
		"i":    int32(70000),
		"l":    int64(1 << 40),
		"d":    1.5,
		"name": "steve",
		"ba":   []int8{1, -1},
		"ia":   []int32{4, -5},
		"pos":  []any{1.0, 2.0},
		"item": map[string]any{"id": "minecraft:stone"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	c := sample(t)
	eq := cmp.Comparer(tag.Equal)
	for _, f := range format.AllFormats() {
		if !f.CanDecode() {
			continue
		}
		t.Run(f.String(), func(t *testing.T) {
			d, err := Marshal(c, f)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Unmarshal(d, f)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tag.Tag(c), got, eq); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNBTIsGzipped(t *testing.T) {
	d, err := Marshal(sample(t), format.NBTFormat)
	if err != nil {
		t.Fatal(err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(d))
	if err != nil {
		t.Fatalf("not gzip: %v", err)
	}
	zr.Close()
}

func TestBinaryNeedsCompound(t *testing.T) {
	for _, f := range []format.Format{format.NBTFormat, format.RawFormat} {
		_, err := Marshal(tag.NewInt(1), f)
		if !errors.Is(err, format.ErrBadFormat) {
			t.Errorf("%s: got %v, want ErrBadFormat", f, err)
		}
	}
}

func TestSNBTScalar(t *testing.T) {
	d, err := Marshal(tag.NewLong(5), format.SNBTFormat)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "5L\n" {
		t.Errorf("got %q", d)
	}
}

func TestPlainJSON(t *testing.T) {
	c := tag.NewCompound()
	c.SetByte("b", 1)
	c.SetString("s", "x")
	d, err := Marshal(c, format.PlainJSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(d, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"b": 1.0, "s": "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestYAML(t *testing.T) {
	c := tag.NewCompound()
	c.SetInt("count", 2)
	c.SetString("id", "stone")
	d, err := Marshal(c, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(d, &got); err != nil {
		t.Fatal(err)
	}
	if got["id"] != "stone" {
		t.Errorf("id: got %v", got["id"])
	}
	if fmt.Sprint(got["count"]) != "2" {
		t.Errorf("count: got %#v", got["count"])
	}
}

func TestCBOR(t *testing.T) {
	c := tag.NewCompound()
	c.SetInt("n", -7)
	c.SetString("s", "x")
	d, err := Marshal(c, format.CBORFormat)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Marshal(c.Clone(), format.CBORFormat)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d, again) {
		t.Errorf("CBOR encoding is not deterministic")
	}
	v, err := DecodeCBOR(d)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"n": int64(-7), "s": "x"}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnmarshalUnsupported(t *testing.T) {
	for _, f := range []format.Format{format.YAMLFormat, format.CBORFormat, format.PlainJSONFormat} {
		if _, err := Unmarshal([]byte("{}"), f); !errors.Is(err, format.ErrBadFormat) {
			t.Errorf("%s: got %v", f, err)
		}
	}
}

func TestUnmarshalRawAsNBT(t *testing.T) {
	c := sample(t)
	d, err := Marshal(c, format.RawFormat)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(d, format.NBTFormat)
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(c, got) {
		t.Errorf("got %v", got)
	}
}
