package nbt

import (
	"github.com/signadot/nbt-format/go-nbt/tag"
)

type MatchConfig struct {
	OrderedLists bool
	LooseNumbers bool
}

type MatchOpt func(*MatchConfig)

// MatchOrderedLists makes a list pattern match only a list of the same
// length whose elements match pairwise.
func MatchOrderedLists(v bool) MatchOpt {
	return func(c *MatchConfig) { c.OrderedLists = v }
}

// MatchLooseNumbers lets a numeric pattern match a number of another
// kind holding the same value, so 1 matches 1b.
func MatchLooseNumbers(v bool) MatchOpt {
	return func(c *MatchConfig) { c.LooseNumbers = v }
}

// Match reports whether doc matches pattern. A compound pattern matches
// a compound which has every key of the pattern with a matching value.
// A list pattern matches a list in which every pattern element matches
// a distinct element. Any other pattern must equal doc.
func Match(doc, pattern tag.Tag, opts ...MatchOpt) (bool, error) {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if doc == nil || pattern == nil {
		return false, tag.ErrNilTag
	}
	return match(doc, pattern, cfg), nil
}

func match(doc, pattern tag.Tag, cfg *MatchConfig) bool {
	if doc.Kind() != pattern.Kind() {
		if cfg.LooseNumbers {
			if a, ok := number(doc); ok {
				b, ok := number(pattern)
				return ok && a == b
			}
		}
		return false
	}
	switch p := pattern.(type) {
	case *tag.Compound:
		return matchCompound(doc.(*tag.Compound), p, cfg)
	case *tag.List:
		if cfg.OrderedLists {
			return matchListOrdered(doc.(*tag.List), p, cfg)
		}
		return matchList(doc.(*tag.List), p, cfg)
	default:
		return tag.Equal(doc, pattern)
	}
}

func matchCompound(doc, pattern *tag.Compound, cfg *MatchConfig) bool {
	for k, pv := range pattern.All() {
		dv, err := doc.Get(k)
		if err != nil {
			return false
		}
		if !match(dv, pv, cfg) {
			return false
		}
	}
	return true
}

func matchListOrdered(doc, pattern *tag.List, cfg *MatchConfig) bool {
	if doc.Len() != pattern.Len() {
		return false
	}
	for i, pv := range pattern.All() {
		if !match(doc.Get(i), pv, cfg) {
			return false
		}
	}
	return true
}

func matchList(doc, pattern *tag.List, cfg *MatchConfig) bool {
	used := make([]bool, doc.Len())
	for _, pv := range pattern.All() {
		if firstMatch(doc, pv, used, cfg) < 0 {
			return false
		}
	}
	return true
}

// firstMatch marks and returns the index of the first unused element
// of doc matching pattern, or -1.
func firstMatch(doc *tag.List, pattern tag.Tag, used []bool, cfg *MatchConfig) int {
	for i, dv := range doc.All() {
		if used[i] || !match(dv, pattern, cfg) {
			continue
		}
		used[i] = true
		return i
	}
	return -1
}

func number(t tag.Tag) (float64, bool) {
	switch x := t.(type) {
	case *tag.Byte:
		return float64(x.Value), true
	case *tag.Short:
		return float64(x.Value), true
	case *tag.Int:
		return float64(x.Value), true
	case *tag.Long:
		return float64(x.Value), true
	case *tag.Float:
		return float64(x.Value), true
	case *tag.Double:
		return x.Value, true
	default:
		return 0, false
	}
}

// Trim filters doc down to the parts named by pattern. Compound entries
// absent from the pattern are dropped, and a list keeps, in pattern
// order, the elements matched by the pattern's elements.
func Trim(pattern, doc tag.Tag, opts ...MatchOpt) tag.Tag {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return trim(pattern, doc, cfg)
}

func trim(pattern, doc tag.Tag, cfg *MatchConfig) tag.Tag {
	switch p := pattern.(type) {
	case *tag.Compound:
		d, ok := doc.(*tag.Compound)
		if !ok {
			return doc.Clone()
		}
		res := tag.NewCompound()
		for k, pv := range p.All() {
			dv, err := d.Get(k)
			if err != nil {
				continue
			}
			res.Set(k, trim(pv, dv, cfg))
		}
		return res
	case *tag.List:
		d, ok := doc.(*tag.List)
		if !ok {
			return doc.Clone()
		}
		res := tag.NewListOf(d.ElemKind())
		used := make([]bool, d.Len())
		for _, pv := range p.All() {
			i := firstMatch(d, pv, used, cfg)
			if i < 0 {
				continue
			}
			// elements of d share one kind, so Add cannot fail
			_ = res.Add(trim(pv, d.Get(i), cfg))
		}
		return res
	default:
		return doc.Clone()
	}
}
