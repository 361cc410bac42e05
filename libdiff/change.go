package libdiff

import (
	"github.com/signadot/nbt-format/go-nbt/tag"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is a single edit at Path. Insert has only To, Delete has only
// From and Replace has both. When a String is replaced by a similar
// one, Text holds the character level edit.
//
// Paths of list elements are indices into the list as it stands once
// all preceding changes have been applied, so a []Change is applied in
// order.
type Change struct {
	Op   Op
	Path *tag.Path
	From tag.Tag
	To   tag.Tag
	Text []diffpatch.Diff
}

func MakeChange(p *tag.Path, from, to tag.Tag) Change {
	switch {
	case from == nil:
		return Change{Op: Insert, Path: p, To: to.Clone()}
	case to == nil:
		return Change{Op: Delete, Path: p, From: from.Clone()}
	default:
		return Change{Op: Replace, Path: p, From: from.Clone(), To: to.Clone()}
	}
}
