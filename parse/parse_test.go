package parse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag_Scalars(t *testing.T) {
	tests := []struct {
		in   string
		want tag.Tag
	}{
		{`1b`, tag.NewByte(1)},
		{`-128B`, tag.NewByte(-128)},
		{`128b`, tag.NewString("128b")},
		{`12s`, tag.NewShort(12)},
		{`40000s`, tag.NewString("40000s")},
		{`7`, tag.NewInt(7)},
		{`+7`, tag.NewInt(7)},
		{`2147483648`, tag.NewString("2147483648")},
		{`007`, tag.NewString("007")},
		{`9000000000L`, tag.NewLong(9000000000)},
		{`3l`, tag.NewLong(3)},
		{`1.5f`, tag.NewFloat(1.5)},
		{`2F`, tag.NewFloat(2)},
		{`.25d`, tag.NewDouble(0.25)},
		{`1e3d`, tag.NewDouble(1000)},
		{`1.5`, tag.NewDouble(1.5)},
		{`1.`, tag.NewDouble(1)},
		{`1e3`, tag.NewString("1e3")},
		{`true`, tag.NewByte(1)},
		{`FALSE`, tag.NewByte(0)},
		{`hello`, tag.NewString("hello")},
		{`"a b"`, tag.NewString("a b")},
		{`'say "hi"'`, tag.NewString(`say "hi"`)},
		{`"back\\slash \"q\""`, tag.NewString(`back\slash "q"`)},
		{`""`, tag.NewString("")},
		{`[B;1b,-2b]`, tag.NewByteArray([]byte{1, 0xfe})},
		{`[I;]`, tag.NewIntArray(nil)},
		{`[I;1,2,3,]`, tag.NewIntArray([]int32{1, 2, 3})},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parse.ParseTag(tt.in)
			require.NoError(t, err)
			assert.True(t, tag.Equal(tt.want, got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParse_Compound(t *testing.T) {
	c, err := parse.Parse(`{
		id: "minecraft:spawner",
		Delay: 20s,
		'weird key': 1b,
		SpawnData: {entity: {id: zombie}},
		Pos: [1.0d, 64.0d, -3.5d],
		Tags: [],
		Nested: [[1, 2], [a]],
	}`)
	require.NoError(t, err)

	id, err := c.GetString("id")
	require.NoError(t, err)
	assert.Equal(t, "minecraft:spawner", id)

	delay, err := c.GetShort("Delay")
	require.NoError(t, err)
	assert.Equal(t, int16(20), delay)

	ok, err := c.GetBoolean("weird key")
	require.NoError(t, err)
	assert.True(t, ok)

	pos, err := c.GetList("Pos", tag.DoubleKind)
	require.NoError(t, err)
	assert.Equal(t, 3, pos.Len())

	empty, err := c.GetList("Tags", tag.StringKind)
	require.NoError(t, err)
	assert.Equal(t, tag.NoKind, empty.ElemKind())

	nested, err := c.GetList("Nested", tag.ListKind)
	require.NoError(t, err)
	assert.Equal(t, 2, nested.Len())

	entity, err := tag.Lookup(c, "$.SpawnData.entity.id")
	require.NoError(t, err)
	assert.True(t, tag.Equal(tag.NewString("zombie"), entity))
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	c, err := parse.Parse(`{a:1,a:2}`)
	require.NoError(t, err)
	v, err := c.GetInt("a")
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
	assert.Equal(t, 1, c.Len())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"empty", ``, ""},
		{"not compound", `[1,2]`, "expected compound"},
		{"unclosed", `{a:1`, ""},
		{"missing colon", `{a 1}`, ""},
		{"double comma", `{a:1,,b:2}`, ""},
		{"trailing garbage", `{a:1} x`, ""},
		{"mixed list", `{l:[1,2b]}`, "cannot insert Byte into list of Int"},
		{"long array", `{a:[L;1L]}`, "unsupported array type"},
		{"bad byte array element", `{a:[B;1,2]}`, "cannot insert Int into Byte array"},
		{"quoted array element", `{a:[I;"1"]}`, "cannot insert String into Int array"},
		{"bad escape", `{a:"\n"}`, "invalid escape"},
		{"unquoted colon", `{id:minecraft:stone}`, ""},
		{"bad char", `{a:1;}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parse.Parse(tt.in)
			require.Error(t, err)
			assert.Nil(t, c)
			var pe *parse.ParseError
			require.True(t, errors.As(err, &pe), "error %T is not a *ParseError", err)
			assert.True(t, errors.Is(err, parse.ErrParse))
			assert.Positive(t, pe.Line)
			if tt.msg != "" {
				assert.Contains(t, pe.Message, tt.msg)
			}
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := parse.Parse("{\n  a: [1, 2b]\n}", parse.ParseFilename("spawner.snbt"))
	var pe *parse.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "spawner.snbt", pe.Filename)
	assert.Equal(t, 2, pe.Line)
	assert.True(t, strings.HasPrefix(pe.Error(), "spawner.snbt:2:"), pe.Error())
}

func TestParse_MaxDepth(t *testing.T) {
	deep := strings.Repeat("{a:", 20) + "1" + strings.Repeat("}", 20)
	_, err := parse.Parse(deep, parse.ParseMaxDepth(10))
	var pe *parse.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Message, "maximum depth")

	_, err = parse.Parse(deep)
	require.NoError(t, err)

	quoted := `{a:"` + strings.Repeat("[", 50) + `"}`
	_, err = parse.Parse(quoted, parse.ParseMaxDepth(10))
	require.NoError(t, err)
}

func TestNotation(t *testing.T) {
	var n parse.Notation = parse.Default()
	c, err := n.Parse(`{x:1}`)
	require.NoError(t, err)
	assert.True(t, c.HasKind("x", tag.IntKind))

	_, err = parse.New(parse.ParseFilename("cmd")).Parse(`{x:`)
	var pe *parse.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "cmd", pe.Filename)
}
