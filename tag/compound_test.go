package tag

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompoundSetGet(t *testing.T) {
	c := NewCompound()
	c.SetInt("a", 1)
	c.SetInt("a", 2)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	v, err := c.GetInt("a")
	if err != nil || v != 2 {
		t.Errorf("GetInt() = %d, %v; want 2", v, err)
	}
	if _, err := c.GetInt("missing"); !errors.Is(err, ErrMissingKey) {
		t.Errorf("GetInt(missing) error = %v", err)
	}
	if _, err := c.GetString("a"); !errors.Is(err, ErrWrongVariant) {
		t.Errorf("GetString(int) error = %v", err)
	}
	if !c.HasKind("a", IntKind) || c.HasKind("a", LongKind) {
		t.Error("HasKind mismatch")
	}
	if !c.Remove("a") || c.Remove("a") {
		t.Error("Remove mismatch")
	}
}

func TestCompoundBoolean(t *testing.T) {
	c := NewCompound()
	c.SetBoolean("t", true)
	c.SetBoolean("f", false)
	c.SetByte("n", -7)

	tests := []struct {
		key  string
		want bool
		raw  int8
	}{
		{"t", true, 1},
		{"f", false, 0},
		{"n", true, -7},
	}
	for _, tt := range tests {
		got, err := c.GetBoolean(tt.key)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("GetBoolean(%q) = %v, want %v", tt.key, got, tt.want)
		}
		raw, err := c.GetByte(tt.key)
		if err != nil || raw != tt.raw {
			t.Errorf("GetByte(%q) = %d, %v; want %d", tt.key, raw, err, tt.raw)
		}
	}
}

func TestCompoundGetList(t *testing.T) {
	c := NewCompound()
	if err := c.SetList("s", NewString("x")); err != nil {
		t.Fatal(err)
	}
	if err := c.SetList("bad", NewString("x"), NewInt(1)); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("SetList(mixed) error = %v", err)
	}
	if c.Has("bad") {
		t.Error("failed SetList left an entry")
	}
	if err := c.SetList("e"); err != nil {
		t.Fatal(err)
	}

	if _, err := c.GetList("s", StringKind); err != nil {
		t.Errorf("GetList(String) error = %v", err)
	}
	if _, err := c.GetList("s", IntKind); !errors.Is(err, ErrWrongVariant) {
		t.Errorf("GetList(Int) error = %v, want ErrWrongVariant", err)
	}
	if _, err := c.GetList("e", IntKind); err != nil {
		t.Errorf("GetList(empty) error = %v", err)
	}
}

func TestCompoundArraysCopy(t *testing.T) {
	c := NewCompound()
	src := []byte{1, 2, 3}
	c.SetByteArray("b", src)
	src[0] = 9
	got, err := c.GetByteArray("b")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{1, 2, 3}, got); diff != "" {
		t.Errorf("stored array aliased caller slice (-want +got):\n%s", diff)
	}
	got[1] = 9
	again, _ := c.GetByteArray("b")
	if again[1] != 2 {
		t.Error("GetByteArray result aliases stored array")
	}

	ints := []int32{7, 8}
	c.SetIntArray("i", ints)
	ints[0] = 0
	gotInts, _ := c.GetIntArray("i")
	if diff := cmp.Diff([]int32{7, 8}, gotInts); diff != "" {
		t.Errorf("int array mismatch (-want +got):\n%s", diff)
	}
}

func TestCompoundOrderAndEqual(t *testing.T) {
	a := NewCompound()
	a.SetString("z", "last")
	a.SetShort("a", 1)
	a.SetCompound("m", NewCompound())

	b := NewCompound()
	b.SetCompound("m", NewCompound())
	b.SetShort("a", 1)
	b.SetString("z", "last")

	if !Equal(a, b) {
		t.Fatal("insertion order affected equality")
	}
	if Hash(a) != Hash(b) {
		t.Error("insertion order affected hash")
	}
	if got := a.Keys(); !slices.Equal(got, []string{"a", "m", "z"}) {
		t.Errorf("Keys() = %v", got)
	}
	b.SetShort("a", 2)
	if Equal(a, b) {
		t.Error("different values reported equal")
	}
	if Equal(NewShort(1), NewInt(1)) {
		t.Error("different kinds reported equal")
	}
}

func TestCompoundClone(t *testing.T) {
	a := NewCompound()
	inner := NewCompound()
	inner.SetInt("x", 1)
	a.SetCompound("in", inner)

	b := a.Clone().(*Compound)
	inner.SetInt("x", 2)
	got, err := b.GetCompound("in")
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := got.GetInt("x"); x != 1 {
		t.Errorf("clone shares nested compound: x = %d", x)
	}
}

func TestCompoundSetSelfPanics(t *testing.T) {
	c := NewCompound()
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrCycle) {
			t.Errorf("Set(c) recovered %v, want ErrCycle", err)
		}
	}()
	c.Set("self", c)
}

func TestCompoundSetStoresChild(t *testing.T) {
	leaf := NewInt(1)
	a, b := NewCompound(), NewCompound()
	a.Set("v", leaf)
	b.Set("v", leaf.Clone())
	leaf.Value = 7
	if x, _ := a.GetInt("v"); x != 7 {
		t.Errorf("a.v = %d, want the stored child", x)
	}
	if x, _ := b.GetInt("v"); x != 1 {
		t.Errorf("b.v = %d, want the cloned value 1", x)
	}
}
