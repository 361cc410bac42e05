package query_test

import (
	"testing"

	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/query"
	"github.com/signadot/nbt-format/go-nbt/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const player = `{
	Health: 20.0f,
	Name: "steve",
	Pos: [1.5d, 64.0d, -2.5d],
	Inventory: [{id: "minecraft:stone", Count: 3b}, {id: "minecraft:dirt", Count: 64b}],
	Scores: [I; 1, 2, 3]
}`

func doc(t *testing.T) *tag.Compound {
	t.Helper()
	c, err := parse.Parse(player)
	require.NoError(t, err)
	return c
}

func TestEval(t *testing.T) {
	c := doc(t)
	tests := []struct {
		expr string
		want any
	}{
		{`Name`, "steve"},
		{`Health > 10`, true},
		{`Inventory[1].id`, "minecraft:dirt"},
		{`len(Inventory)`, 2},
		{`Inventory[0].Count == 3`, true},
		{`kind("$.Health")`, "Float"},
		{`kind("$.Scores")`, "IntArray"},
		{`getpath("$.Inventory[0].id")`, "minecraft:stone"},
		{`haspath("$.Missing")`, false},
		{`haspath("$.Pos[2]")`, true},
		{`map(Inventory, .id)`, []any{"minecraft:stone", "minecraft:dirt"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := query.Eval(c, tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch(t *testing.T) {
	c := doc(t)
	ok, err := query.Match(c, `Name == "steve" && len(Pos) == 3`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = query.Match(c, `Health < 5`)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = query.Match(c, `"not a bool"`)
	assert.ErrorIs(t, err, query.ErrQuery)
}

func TestCompileError(t *testing.T) {
	_, err := query.Compile(`Name ==`)
	assert.ErrorIs(t, err, query.ErrQuery)
}

func TestRunErrors(t *testing.T) {
	_, err := query.Eval(doc(t), `getpath("$.Nope")`)
	assert.ErrorIs(t, err, query.ErrQuery)
}

func TestReuse(t *testing.T) {
	q, err := query.CompileBool(`Count > 10`)
	require.NoError(t, err)
	small := tag.NewCompound()
	small.SetByte("Count", 3)
	big := tag.NewCompound()
	big.SetByte("Count", 30)
	got, err := q.Run(small)
	require.NoError(t, err)
	assert.Equal(t, false, got)
	got, err = q.Run(big)
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestQueryTag(t *testing.T) {
	q, err := query.Compile(`getpath("$.Inventory[1]")`)
	require.NoError(t, err)
	got, err := q.Tag(doc(t))
	require.NoError(t, err)
	want := tag.NewCompound()
	want.SetString("id", "minecraft:dirt")
	want.SetByte("Count", 64)
	assert.True(t, tag.Equal(want, got), "got %v", got)
}
