package libdiff

import diffpatch "github.com/sergi/go-diff/diffmatchpatch"

// Reverse returns the changes which undo cs. Applying cs and then
// Reverse(cs) gives back the original tree.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		default:
			r.Op = Replace
		}
		if c.Text != nil {
			r.Text = make([]diffpatch.Diff, len(c.Text))
			for j, d := range c.Text {
				switch d.Type {
				case diffpatch.DiffInsert:
					d.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					d.Type = diffpatch.DiffInsert
				}
				r.Text[j] = d
			}
		}
		res[len(cs)-1-i] = r
	}
	return res
}
