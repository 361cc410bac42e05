// Package encode renders tag trees in the text notation (SNBT).
//
// # Usage
//
//	c := tag.NewCompound()
//	c.SetInt("x", 1)
//	err := encode.Encode(c, os.Stdout)                       // {x:1}
//	err = encode.Encode(c, os.Stdout, encode.EncodeIndent(2)) // pretty
//
// Compound keys are always written in sorted order, so equal trees
// encode to identical text. The output parses back to an equal tree
// with package parse, except for non-finite floats which have no text
// form.
//
// # Related Packages
//
//   - github.com/signadot/nbt-format/go-nbt/tag - tag trees
//   - github.com/signadot/nbt-format/go-nbt/parse - parse text to trees
package encode
