package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/nbt-format/go-nbt/tag"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString replaces from with to. If the strings are close enough,
// the change also carries a character level diff in Text.
func DiffString(p *tag.Path, from, to *tag.String) []Change {
	if from.Value == to.Value {
		return nil
	}
	c := MakeChange(p, from, to)
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from.Value, "\n") && strings.Contains(to.Value, "\n")
	diffs := diffCfg.DiffCleanupSemantic(diffCfg.DiffMain(from.Value, to.Value, doMultiLine))
	diffSize := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			diffSize += len(diffs[i].Text)
		}
	}
	if diffSize <= min(len(from.Value), len(to.Value))/2 {
		c.Text = diffs
	}
	return []Change{c}
}

// PatchString applies a character level diff to s. The parts of the
// diff that are kept or deleted must spell s.
func PatchString(s string, diffs []diffpatch.Diff) (string, error) {
	dmp := diffpatch.New()
	if src := dmp.DiffText1(diffs); src != s {
		return "", fmt.Errorf("cannot patch %q, diff expects %q", s, src)
	}
	return dmp.DiffText2(diffs), nil
}
