// Package nbt reads, writes and matches Named Binary Tag documents.
//
// Trees are built from the types in package tag. The binary form with
// its gzip envelope lives in package codec, the text notation in
// packages parse and encode, and conversion to other formats in
// package convert. This package ties them together for whole files
// and provides structural matching:
//
//	doc, _, err := nbt.ReadFile("level.dat", nil)
//	pattern, _ := parse.Parse(`{Data: {GameType: 1}}`)
//	ok, err := nbt.Match(doc, pattern)
package nbt
