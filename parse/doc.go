// Package parse parses the text notation (SNBT) into tag trees.
//
// # Usage
//
//	c, err := parse.Parse(`{name:"alice",age:30,tags:[a,b],hp:20.5f}`)
//	if err != nil {
//	    var pe *parse.ParseError
//	    errors.As(err, &pe) // position and message
//	}
//
// # Grammar
//
// The notation is the bracketed form used by Minecraft commands:
//
//	compound  {key:value,...}       keys are words or quoted strings
//	list      [value,...]           all values of one kind
//	arrays    [B;1b,2b] [I;1,2]
//	strings   "text" 'text' word    escapes: \\ and the quote
//	numbers   1b 2s 3 4L 5.0f 6.0d 7.5
//	booleans  true false            stored as Byte 1 and 0
//
// Trailing commas are accepted. Unquoted words that look like numbers
// but overflow their kind are read as strings.
//
// Tokenizing and the bracket structure are handled by participle; this
// package classifies words and builds the tree. A failed parse returns a
// *ParseError and never a partial tree.
//
// # Related Packages
//
//   - github.com/signadot/nbt-format/go-nbt/tag - tag trees
//   - github.com/signadot/nbt-format/go-nbt/encode - encode trees to text
package parse
