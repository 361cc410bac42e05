package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/nbt-format/go-nbt/encode"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type formatOpts struct {
	color bool
}

type FormatOption func(*formatOpts)

// FormatColor colors inserted text green and deleted text red.
func FormatColor(v bool) FormatOption {
	return func(o *formatOpts) { o.color = v }
}

// Format writes one line per change. An insert is written as
// "+ $.path: value" and a delete as "- $.path: value". A replacement is
// "~ $.path: from -> to", unless it carries a Text diff: then the string
// is written inline with deletions as [-x-] and insertions as {+x+}.
func Format(w io.Writer, cs []Change, opts ...FormatOption) error {
	o := &formatOpts{}
	for _, opt := range opts {
		opt(o)
	}
	ins, del := fmt.Sprint, fmt.Sprint
	if o.color {
		ins = color.New(color.FgGreen).Sprint
		del = color.New(color.FgRed).Sprint
	}
	for i := range cs {
		c := &cs[i]
		var line string
		switch {
		case c.Op == Insert:
			line = ins("+ " + c.Path.String() + ": " + encode.MustString(c.To))
		case c.Op == Delete:
			line = del("- " + c.Path.String() + ": " + encode.MustString(c.From))
		case c.Text != nil:
			line = "~ " + c.Path.String() + ": " + inline(c.Text, ins, del)
		default:
			line = "~ " + c.Path.String() + ": " + del(encode.MustString(c.From)) + " -> " + ins(encode.MustString(c.To))
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func inline(diffs []diffpatch.Diff, ins, del func(...any) string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffpatch.DiffDelete:
			buf.WriteString(del("[-" + d.Text + "-]"))
		case diffpatch.DiffInsert:
			buf.WriteString(ins("{+" + d.Text + "+}"))
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
