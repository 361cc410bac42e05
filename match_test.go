package nbt

import (
	"testing"

	"github.com/signadot/nbt-format/go-nbt/encode"
	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

type matchTest struct {
	in    string
	match string
	opts  []MatchOpt
	res   bool
}

var matchTests = []matchTest{
	{in: `{a: 1}`, match: `{a: 1}`, res: true},
	{in: `{a: 0}`, match: `{a: 1}`, res: false},
	{in: `{a: 1, c: "d"}`, match: `{a: 1}`, res: true},
	{in: `{a: 1}`, match: `{a: 1, c: "d"}`, res: false},
	{in: `{a: 1}`, match: `{}`, res: true},
	{in: `{a: 1b}`, match: `{a: 1}`, res: false},
	{in: `{a: 1b}`, match: `{a: 1}`, opts: []MatchOpt{MatchLooseNumbers(true)}, res: true},
	{in: `{a: 1.5d}`, match: `{a: 1}`, opts: []MatchOpt{MatchLooseNumbers(true)}, res: false},
	{in: `{a: "1"}`, match: `{a: 1}`, opts: []MatchOpt{MatchLooseNumbers(true)}, res: false},
	{in: `{l: [1, 2, 3]}`, match: `{l: [3, 1]}`, res: true},
	{in: `{l: [1, 2, 3]}`, match: `{l: [1, 1]}`, res: false},
	{in: `{l: [1, 2, 3]}`, match: `{l: []}`, res: true},
	{in: `{l: [1, 2, 3]}`, match: `{l: [3, 1]}`, opts: []MatchOpt{MatchOrderedLists(true)}, res: false},
	{in: `{l: [1, 2]}`, match: `{l: [1, 2]}`, opts: []MatchOpt{MatchOrderedLists(true)}, res: true},
	{
		in:    `{Inventory: [{id: "minecraft:stone", Count: 3b}, {id: "minecraft:dirt", Count: 1b}]}`,
		match: `{Inventory: [{id: "minecraft:dirt"}]}`,
		res:   true,
	},
	{
		in:    `{Inventory: [{id: "minecraft:stone", Count: 3b}]}`,
		match: `{Inventory: [{id: "minecraft:stone", Count: 4b}]}`,
		res:   false,
	},
	{in: `{b: [B; 1b, 2b]}`, match: `{b: [B; 1b, 2b]}`, res: true},
	{in: `{b: [B; 1b, 2b]}`, match: `{b: [B; 1b]}`, res: false},
	{in: `{a: {b: {c: 1}}}`, match: `{a: {b: {}}}`, res: true},
	{in: `{a: 1}`, match: `{a: {}}`, res: false},
}

func TestMatch(t *testing.T) {
	for i, mt := range matchTests {
		in, err := parse.Parse(mt.in)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		pat, err := parse.Parse(mt.match)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		res, err := Match(in, pat, mt.opts...)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if res != mt.res {
			t.Errorf("%d: match %s against %s: got %t, want %t", i, mt.match, mt.in, res, mt.res)
		}
	}
}

func TestMatchNil(t *testing.T) {
	if _, err := Match(nil, tag.NewCompound()); err == nil {
		t.Errorf("expected error")
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		in, match, want string
	}{
		{`{a: 1, b: 2}`, `{a: 0}`, `{a: 1}`},
		{`{a: {x: 1, y: 2}, b: 2}`, `{a: {y: 0}}`, `{a: {y: 2}}`},
		{
			`{inv: [{id: "a", n: 1b}, {id: "b", n: 2b}]}`,
			`{inv: [{id: "b"}]}`,
			`{inv: [{id: "b"}]}`,
		},
		{`{l: [1, 2, 3]}`, `{l: [3, 9, 1]}`, `{l: [3, 1]}`},
	}
	for _, tt := range tests {
		in, err := parse.Parse(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		pat, err := parse.Parse(tt.match)
		if err != nil {
			t.Fatal(err)
		}
		want, err := parse.Parse(tt.want)
		if err != nil {
			t.Fatal(err)
		}
		got := Trim(pat, in)
		if !tag.Equal(got, want) {
			t.Errorf("trim %s by %s: got %s, want %s", tt.in, tt.match, encode.MustString(got), tt.want)
		}
	}
}
