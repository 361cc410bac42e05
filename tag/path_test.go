package tag

import (
	"errors"
	"testing"
)

func TestParsePathString(t *testing.T) {
	tests := []string{
		"$",
		"$.a",
		"$.a.b[2]",
		"$[0][1]",
		"$.'a.b'.c",
		"$.'it\\'s'",
	}
	for _, in := range tests {
		p, err := ParsePath(in)
		if err != nil {
			t.Errorf("ParsePath(%q): %v", in, err)
			continue
		}
		if got := p.String(); got != in {
			t.Errorf("ParsePath(%q).String() = %q", in, got)
		}
	}
	for _, bad := range []string{"", "a", "$.", "$[x]", "$[-1]", "$[0", "$.'open"} {
		if _, err := ParsePath(bad); !errors.Is(err, ErrBadPath) {
			t.Errorf("ParsePath(%q) error = %v, want ErrBadPath", bad, err)
		}
	}
}

func TestLookup(t *testing.T) {
	c := NewCompound()
	inner := NewCompound()
	inner.SetString("name", "x")
	l, _ := NewList(inner)
	c.Set("items", l)
	c.SetIntArray("ints", []int32{4, 5})
	c.SetString("a.b", "dotted")

	tests := []struct {
		path string
		want Tag
		err  error
	}{
		{"$", c, nil},
		{"$.items[0].name", NewString("x"), nil},
		{"$.ints[1]", NewInt(5), nil},
		{"$.'a.b'", NewString("dotted"), nil},
		{"$.items[1]", nil, ErrPathNotFound},
		{"$.nope", nil, ErrPathNotFound},
		{"$.ints.x", nil, ErrPathNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Lookup(c, tt.path)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Lookup() error = %v, want %v", err, tt.err)
			}
			if err == nil && !Equal(got, tt.want) {
				t.Errorf("Lookup() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPathBuild(t *testing.T) {
	var root *Path
	p := root.Field("a").At(3).Field("x y")
	if got := p.String(); got != "$.a[3].'x y'" {
		t.Errorf("String() = %q", got)
	}
	if got := root.Field("a").String(); got != "$.a" {
		t.Errorf("Field extended shared path: %q", got)
	}
}
