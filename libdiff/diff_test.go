package libdiff_test

import (
	"bytes"
	"testing"

	"github.com/signadot/nbt-format/go-nbt/libdiff"
	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/patch"
	"github.com/signadot/nbt-format/go-nbt/tag"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func mustParse(t *testing.T, s string) *tag.Compound {
	t.Helper()
	c, err := parse.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return c
}

func apply(t *testing.T, c *tag.Compound, cs []libdiff.Change) *tag.Compound {
	t.Helper()
	ops, err := patch.FromChanges(cs)
	if err != nil {
		t.Fatal(err)
	}
	res, err := patch.ApplyOps(c, ops)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

var pairs = []struct {
	name     string
	from, to string
}{
	{"equal", `{a: 1, b: [1, 2]}`, `{a: 1, b: [1, 2]}`},
	{"scalar", `{a: 1}`, `{a: 2}`},
	{"kind", `{a: 1}`, `{a: 1L}`},
	{"keys", `{a: 1, b: 2}`, `{b: 2, c: 3}`},
	{"nested", `{p: {x: 1.0d, y: 2.0d}}`, `{p: {x: 1.0d, y: 3.0d, z: 0.0d}}`},
	{"list edit", `{l: [1, 2, 3]}`, `{l: [1, 4, 3, 5]}`},
	{"list shrink", `{l: [1, 2, 3, 4, 5]}`, `{l: [1, 5]}`},
	{"list grow", `{l: []}`, `{l: ["a", "b"]}`},
	{"list of compounds", `{inv: [{id: "a", n: 1b}, {id: "b", n: 2b}]}`, `{inv: [{id: "a", n: 3b}, {id: "c", n: 2b}, {id: "b", n: 2b}]}`},
	{"list kind", `{l: [1, 2]}`, `{l: ["1", "2"]}`},
	{"arrays", `{b: [B; 1b, 2b], i: [I; 1, 2]}`, `{b: [B; 1b], i: [I; 1, 2, 3]}`},
	{"string", `{id: "minecraft:stone"}`, `{id: "minecraft:stones"}`},
}

func TestDiffApply(t *testing.T) {
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			from, to := mustParse(t, p.from), mustParse(t, p.to)
			cs := libdiff.Diff(from, to)
			if got := apply(t, from, cs); !tag.Equal(got, to) {
				t.Errorf("forward: got %v, want %v", got, to)
			}
			if got := apply(t, to, libdiff.Reverse(cs)); !tag.Equal(got, from) {
				t.Errorf("reverse: got %v, want %v", got, from)
			}
		})
	}
}

func TestDiffEqual(t *testing.T) {
	c := mustParse(t, `{a: [{b: "x"}], c: [I; 1]}`)
	if cs := libdiff.Diff(c, c.Clone()); len(cs) != 0 {
		t.Errorf("expected no changes, got %d", len(cs))
	}
}

func TestDiffListPaths(t *testing.T) {
	cs := libdiff.Diff(mustParse(t, `{l: [1, 2, 3]}`), mustParse(t, `{l: [1, 4, 3, 5]}`))
	if len(cs) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(cs))
	}
	if cs[0].Op != libdiff.Replace || cs[0].Path.String() != "$.l[1]" {
		t.Errorf("change 0: %s at %s", cs[0].Op, cs[0].Path)
	}
	if cs[1].Op != libdiff.Insert || cs[1].Path.String() != "$.l[3]" {
		t.Errorf("change 1: %s at %s", cs[1].Op, cs[1].Path)
	}
}

func TestDiffStringText(t *testing.T) {
	cs := libdiff.Diff(mustParse(t, `{id: "minecraft:stone"}`), mustParse(t, `{id: "minecraft:stones"}`))
	if len(cs) != 1 || cs[0].Text == nil {
		t.Fatalf("expected one text change, got %+v", cs)
	}
	got, err := libdiff.PatchString("minecraft:stone", cs[0].Text)
	if err != nil {
		t.Fatal(err)
	}
	if got != "minecraft:stones" {
		t.Errorf("got %q", got)
	}
	if _, err := libdiff.PatchString("minecraft:dirt", cs[0].Text); err == nil {
		t.Errorf("expected error patching the wrong source")
	}
	rev := libdiff.Reverse(cs)
	back, err := libdiff.PatchString("minecraft:stones", rev[0].Text)
	if err != nil {
		t.Fatal(err)
	}
	if back != "minecraft:stone" {
		t.Errorf("reverse: got %q", back)
	}
}

func TestDiffStringTooDifferent(t *testing.T) {
	cs := libdiff.Diff(mustParse(t, `{s: "abc"}`), mustParse(t, `{s: "xyz"}`))
	if len(cs) != 1 || cs[0].Text != nil {
		t.Fatalf("expected a plain replace, got %+v", cs)
	}
}

func TestFormat(t *testing.T) {
	cs := libdiff.Diff(mustParse(t, `{a: 1, b: 2}`), mustParse(t, `{b: 3, c: 4}`))
	buf := bytes.NewBuffer(nil)
	if err := libdiff.Format(buf, cs); err != nil {
		t.Fatal(err)
	}
	want := "- $.a: 1\n~ $.b: 2 -> 3\n+ $.c: 4\n"
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf, want)
	}
}

func TestFormatText(t *testing.T) {
	cs := []libdiff.Change{{
		Op:   libdiff.Replace,
		Path: (*tag.Path)(nil).Field("id"),
		From: tag.NewString("ab"),
		To:   tag.NewString("ac"),
		Text: []diffpatch.Diff{
			{Type: diffpatch.DiffEqual, Text: "a"},
			{Type: diffpatch.DiffDelete, Text: "b"},
			{Type: diffpatch.DiffInsert, Text: "c"},
		},
	}}
	buf := bytes.NewBuffer(nil)
	if err := libdiff.Format(buf, cs); err != nil {
		t.Fatal(err)
	}
	want := "~ $.id: \"a[-b-]{+c+}\"\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf, want)
	}
}
