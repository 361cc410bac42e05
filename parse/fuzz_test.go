package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/nbt-format/go-nbt/encode"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`{}`,
		`{a:1}`,
		`{a:1b,b:2s,c:3L,d:4.0f,e:5.0d,f:6.5}`,
		`{s:"quoted",t:'single',u:word}`,
		`{l:[1,2,3],e:[],n:[[a],[b]]}`,
		`{b:[B;1b,2b],i:[I;1,2]}`,
		`{"key with space":{nested:{deep:true}}}`,
		`{a:1,}`,
		`{a:"esc\\\"aped"}`,
		`{a:[L;1L]}`,
		`{a:[1,2b]}`,
		`{`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, in string) {
		c, err := Parse(in)
		if err != nil {
			if c != nil {
				t.Fatalf("partial result with error %v", err)
			}
			return
		}
		var buf bytes.Buffer
		if err := encode.Encode(c, &buf); err != nil {
			return
		}
		back, err := Parse(buf.String())
		if err != nil {
			t.Fatalf("re-parse of %q: %v", buf.String(), err)
		}
		if !tag.Equal(c, back) && !hasNonFinite(c) {
			t.Fatalf("re-parse of %q differs:\n%s\n%s", buf.String(), c, back)
		}
	})
}

func hasNonFinite(t tag.Tag) bool {
	switch x := t.(type) {
	case *tag.Float:
		v := float64(x.Value)
		return v != v || v > 3.4e38 || v < -3.4e38
	case *tag.Double:
		v := x.Value
		return v != v || v > 1.7e308 || v < -1.7e308
	case *tag.List:
		for _, e := range x.All() {
			if hasNonFinite(e) {
				return true
			}
		}
	case *tag.Compound:
		for _, e := range x.All() {
			if hasNonFinite(e) {
				return true
			}
		}
	}
	return false
}
