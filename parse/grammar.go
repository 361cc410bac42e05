package parse

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var snbtLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "QuotedString", Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`},
	{Name: "ArrayOpen", Pattern: `\[[BIL];`},
	{Name: "Word", Pattern: `[0-9A-Za-z_\-.+]+`},
	{Name: "Punct", Pattern: `[{}\[\]:,]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// document is the whole input: exactly one value.
type document struct {
	Value *value `parser:"@@"`
}

type value struct {
	Pos      lexer.Position `parser:""`
	Compound *compound      `parser:"  @@"`
	Array    *array         `parser:"| @@"`
	List     *list          `parser:"| @@"`
	Scalar   *scalar        `parser:"| @@"`
}

type compound struct {
	Pos     lexer.Position `parser:""`
	Entries []*entry       `parser:"'{' ( @@ ( ',' @@ )* ','? )? '}'"`
}

type entry struct {
	Pos   lexer.Position `parser:""`
	Key   string         `parser:"@(QuotedString | Word) ':'"`
	Value *value         `parser:"@@"`
}

type list struct {
	Pos   lexer.Position `parser:""`
	Elems []*value       `parser:"'[' ( @@ ( ',' @@ )* ','? )? ']'"`
}

type array struct {
	Pos   lexer.Position `parser:""`
	Open  string         `parser:"@ArrayOpen"`
	Elems []*scalar      `parser:"( @@ ( ',' @@ )* ','? )? ']'"`
}

// scalar is a quoted string or an unquoted word, told apart by the
// first byte of Raw.
type scalar struct {
	Pos lexer.Position `parser:""`
	Raw string         `parser:"@(QuotedString | Word)"`
}

func newParser() (*participle.Parser[document], error) {
	return participle.Build[document](
		participle.Lexer(snbtLexer),
		participle.Elide("whitespace"),
		participle.UseLookahead(2),
	)
}

// parser is the singleton participle parser instance.
var parser *participle.Parser[document]

func init() {
	var err error
	parser, err = newParser()
	if err != nil {
		panic(fmt.Sprintf("failed to build text notation parser: %v", err))
	}
}
