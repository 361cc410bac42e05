package libdiff

import (
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// DiffFunc computes the changes turning from into to, both located at p.
type DiffFunc func(p *tag.Path, from, to tag.Tag) []Change

// Diff returns the changes which turn from into to. Compounds are
// compared key by key and lists element by element; any other pair of
// unequal tags is a Replace. Equal trees give no changes.
func Diff(from, to tag.Tag) []Change {
	return diffAt(nil, from, to)
}

func diffAt(p *tag.Path, from, to tag.Tag) []Change {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil:
		return []Change{MakeChange(p, from, to)}
	case from.Kind() != to.Kind():
		return []Change{MakeChange(p, from, to)}
	}
	switch x := from.(type) {
	case *tag.Compound:
		return DiffCompound(p, x, to.(*tag.Compound), diffAt)
	case *tag.List:
		return DiffListByIndex(p, x, to.(*tag.List), diffAt)
	case *tag.String:
		return DiffString(p, x, to.(*tag.String))
	}
	if tag.Equal(from, to) {
		return nil
	}
	return []Change{MakeChange(p, from, to)}
}

// DiffCompound compares entries in sorted key order, calling df on
// keys present in both.
func DiffCompound(p *tag.Path, from, to *tag.Compound, df DiffFunc) []Change {
	var res []Change
	for k, fv := range from.All() {
		tv, err := to.Get(k)
		if err != nil {
			res = append(res, MakeChange(p.Field(k), fv, nil))
			continue
		}
		res = append(res, df(p.Field(k), fv, tv)...)
	}
	for k, tv := range to.All() {
		if !from.Has(k) {
			res = append(res, MakeChange(p.Field(k), nil, tv))
		}
	}
	return res
}
