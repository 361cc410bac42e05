package libdiff

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/nbt-format/go-nbt/tag"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffListByIndex diffs two lists by
//
//  1. mapping every element to a rune standing for a summary of it:
//     its kind for containers, kind and value for leaves
//  2. diffing the two rune sequences
//  3. recursing with df into elements whose summaries match, and into
//     deleted elements immediately replaced by inserted ones
//  4. emitting Insert and Delete for the rest
//
// Lists whose element kinds differ are replaced whole.
func DiffListByIndex(p *tag.Path, from, to *tag.List, df DiffFunc) []Change {
	if from.Len() > 0 && to.Len() > 0 && from.ElemKind() != to.ElemKind() {
		return []Change{MakeChange(p, from, to)}
	}
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	// The list being patched is always to[:ti] followed by from[fi:],
	// so ti is the current position of from[fi].
	var res []Change
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range n {
				res = append(res, df(p.At(ti), from.Get(fi), to.Get(ti))...)
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = utf8.RuneCountInString(diffs[i+1].Text)
				i++
			}
			paired := min(n, ins)
			for range paired {
				res = append(res, df(p.At(ti), from.Get(fi), to.Get(ti))...)
				fi++
				ti++
			}
			for range n - paired {
				res = append(res, MakeChange(p.At(ti), from.Get(fi), nil))
				fi++
			}
			for range ins - paired {
				res = append(res, MakeChange(p.At(ti), nil, to.Get(ti)))
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, MakeChange(p.At(ti), nil, to.Get(ti)))
				ti++
			}
		}
	}
	return res
}

func mapValues(m map[string]rune, l *tag.List) []rune {
	rs := make([]rune, l.Len())
	for i, v := range l.All() {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(t tag.Tag) string {
	k := t.Kind().String()
	switch x := t.(type) {
	case *tag.Byte:
		return k + "-" + strconv.Itoa(int(x.Value))
	case *tag.Short:
		return k + "-" + strconv.Itoa(int(x.Value))
	case *tag.Int:
		return k + "-" + strconv.Itoa(int(x.Value))
	case *tag.Long:
		return k + "-" + strconv.FormatInt(x.Value, 10)
	case *tag.Float:
		return k + "-" + strconv.FormatUint(uint64(math.Float32bits(x.Value)), 16)
	case *tag.Double:
		return k + "-" + strconv.FormatUint(math.Float64bits(x.Value), 16)
	case *tag.String:
		if strings.Contains(x.Value, "\n") {
			return k + "/m"
		}
		return k + "-" + x.Value
	default:
		return k
	}
}
