package patch

import (
	"errors"
	"testing"

	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

const player = `{Health: 20.0f, Inventory: [{id: "minecraft:stone", Count: 3b}], Motion: [0.0d, 0.0d, 0.0d], Scores: [I; 1, 2]}`

func mustParse(t *testing.T, s string) *tag.Compound {
	t.Helper()
	c, err := parse.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return c
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		want  string
	}{
		{
			name:  "replace snbt",
			patch: `[{"op": "replace", "path": "/Health", "snbt": "10.0f"}]`,
			want:  `{Health: 10.0f, Inventory: [{id: "minecraft:stone", Count: 3b}], Motion: [0.0d, 0.0d, 0.0d], Scores: [I; 1, 2]}`,
		},
		{
			name:  "replace typed",
			patch: `[{"op": "replace", "path": "/Inventory/0/Count", "value": {"type": "Byte", "value": 64}}]`,
			want:  `{Health: 20.0f, Inventory: [{id: "minecraft:stone", Count: 64b}], Motion: [0.0d, 0.0d, 0.0d], Scores: [I; 1, 2]}`,
		},
		{
			name:  "append",
			patch: `[{"op": "add", "path": "/Inventory/-", "snbt": "{id: \"minecraft:dirt\", Count: 1b}"}]`,
			want:  `{Health: 20.0f, Inventory: [{id: "minecraft:stone", Count: 3b}, {id: "minecraft:dirt", Count: 1b}], Motion: [0.0d, 0.0d, 0.0d], Scores: [I; 1, 2]}`,
		},
		{
			name:  "remove",
			patch: `[{"op": "remove", "path": "/Motion"}]`,
			want:  `{Health: 20.0f, Inventory: [{id: "minecraft:stone", Count: 3b}], Scores: [I; 1, 2]}`,
		},
		{
			name:  "array element",
			patch: `[{"op": "replace", "path": "/Scores/1", "snbt": "7"}]`,
			want:  `{Health: 20.0f, Inventory: [{id: "minecraft:stone", Count: 3b}], Motion: [0.0d, 0.0d, 0.0d], Scores: [I; 1, 7]}`,
		},
		{
			name:  "move and test",
			patch: `[{"op": "move", "from": "/Health", "path": "/HP"}, {"op": "test", "path": "/HP", "snbt": "20.0f"}]`,
			want:  `{HP: 20.0f, Inventory: [{id: "minecraft:stone", Count: 3b}], Motion: [0.0d, 0.0d, 0.0d], Scores: [I; 1, 2]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, player)
			got, err := Apply(doc, []byte(tt.patch))
			if err != nil {
				t.Fatal(err)
			}
			if want := mustParse(t, tt.want); !tag.Equal(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
			if !tag.Equal(doc, mustParse(t, player)) {
				t.Errorf("input was modified")
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		want  error
	}{
		{"mixed list", `[{"op": "add", "path": "/Motion/0", "snbt": "1"}]`, tag.ErrKindMismatch},
		{"array kind", `[{"op": "add", "path": "/Scores/0", "snbt": "1b"}]`, tag.ErrKindMismatch},
		{"bad pointer", `[{"op": "remove", "path": "Motion"}]`, tag.ErrBadPath},
		{"no value", `[{"op": "add", "path": "/x"}]`, ErrPatch},
		{"failed test", `[{"op": "test", "path": "/Health", "snbt": "1.0f"}]`, ErrPatch},
		{"missing", `[{"op": "remove", "path": "/Nope"}]`, ErrPatch},
		{"not json", `{`, ErrPatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(mustParse(t, player), []byte(tt.patch))
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPointer(t *testing.T) {
	p, err := tag.ParsePath(`$.a[2].'b/c~'`)
	if err != nil {
		t.Fatal(err)
	}
	if got := Pointer(p); got != "/a/2/b~1c~0" {
		t.Errorf("got %q", got)
	}
	toks, err := splitPointer("/a/2/b~1c~0")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 || toks[2] != "b/c~" {
		t.Errorf("got %q", toks)
	}
	if got, _ := typedPointer("/a/0"); got != "/value/a/value/0" {
		t.Errorf("typed: got %q", got)
	}
}
