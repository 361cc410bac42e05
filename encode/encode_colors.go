package encode

import (
	"strings"

	"github.com/signadot/nbt-format/go-nbt/tag"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind tag.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	SepColor
	SuffixColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range tag.Kinds() {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = SuffixColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	for _, k := range []tag.Kind{tag.ByteKind, tag.ShortKind, tag.IntKind, tag.LongKind} {
		able.Kind = k
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	for _, k := range []tag.Kind{tag.FloatKind, tag.DoubleKind} {
		able.Kind = k
		colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	}
	able.Kind = tag.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = tag.CompoundKind
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Kind = tag.ByteArrayKind
	able.Attr = SuffixColor
	colors.Map[able] = color.CyanString
	able.Kind = tag.IntArrayKind
	colors.Map[able] = color.CyanString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k tag.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k tag.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
