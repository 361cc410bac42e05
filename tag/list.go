package tag

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// List is an ordered sequence of tags sharing one kind. The element
// kind is fixed by the first element ever inserted and never changes
// afterwards, including across Clear.
type List struct {
	elemKind Kind
	elems    []Tag
}

// NewList builds a list from elems, which must all be of the same kind.
func NewList(elems ...Tag) (*List, error) {
	l := &List{elemKind: NoKind}
	if err := l.AddAll(elems...); err != nil {
		return nil, err
	}
	return l, nil
}

// NewListOf returns an empty list whose element kind is already fixed
// to k. NoKind and EndKind both yield an untyped list.
func NewListOf(k Kind) *List {
	if k == EndKind {
		k = NoKind
	}
	return &List{elemKind: k}
}

func (*List) Kind() Kind { return ListKind }
func (*List) isTag()     {}

// ElemKind returns the element kind, or NoKind if no element has been
// inserted yet.
func (l *List) ElemKind() Kind { return l.elemKind }

func (l *List) Len() int { return len(l.elems) }

// Get returns the element at index i. It panics if i is out of range.
func (l *List) Get(i int) Tag { return l.elems[i] }

func (l *List) check(t Tag) error {
	if t == nil {
		return ErrNilTag
	}
	if t == Tag(l) {
		return ErrCycle
	}
	k := t.Kind()
	if k == EndKind {
		return fmt.Errorf("%w: End cannot be a list element", ErrKindMismatch)
	}
	if l.elemKind != NoKind && k != l.elemKind {
		return fmt.Errorf("%w: %s does not match list kind %s", ErrKindMismatch, k, l.elemKind)
	}
	return nil
}

// Add appends t. Like Compound.Set it stores t itself, and t must not
// be l.
func (l *List) Add(t Tag) error {
	if err := l.check(t); err != nil {
		return err
	}
	if l.elemKind == NoKind {
		l.elemKind = t.Kind()
	}
	l.elems = append(l.elems, t)
	return nil
}

// AddAll appends ts. Either every element is appended or, if any
// element's kind disagrees with the list (or, for an untyped list,
// with ts[0]), none is.
func (l *List) AddAll(ts ...Tag) error {
	if len(ts) == 0 {
		return nil
	}
	k := l.elemKind
	if k == NoKind && ts[0] != nil {
		k = ts[0].Kind()
	}
	scratch := &List{elemKind: k}
	for i, t := range ts {
		if t == Tag(l) {
			return fmt.Errorf("element %d: %w", i, ErrCycle)
		}
		if err := scratch.check(t); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	l.elemKind = k
	l.elems = append(l.elems, ts...)
	return nil
}

// Set replaces the element at index i and returns the previous one.
// It panics if i is out of range.
func (l *List) Set(i int, t Tag) (Tag, error) {
	if err := l.check(t); err != nil {
		return nil, err
	}
	prev := l.elems[i]
	if l.elemKind == NoKind {
		l.elemKind = t.Kind()
	}
	l.elems[i] = t
	return prev, nil
}

// Remove deletes the first element equal to t and reports whether one
// was found.
func (l *List) Remove(t Tag) bool {
	i := slices.IndexFunc(l.elems, func(e Tag) bool { return Equal(e, t) })
	if i == -1 {
		return false
	}
	l.elems = slices.Delete(l.elems, i, i+1)
	return true
}

func (l *List) Clear() {
	clear(l.elems)
	l.elems = l.elems[:0]
}

// All iterates over the elements in order.
func (l *List) All() iter.Seq2[int, Tag] {
	return slices.All(l.elems)
}

// Contents returns a copy of the element slice. The elements
// themselves are shared with the list.
func (l *List) Contents() []Tag {
	return slices.Clone(l.elems)
}

func (l *List) Clone() Tag {
	res := &List{elemKind: l.elemKind, elems: make([]Tag, len(l.elems))}
	for i, e := range l.elems {
		res.elems[i] = e.Clone()
	}
	return res
}

func (l *List) Equal(o Tag) bool {
	x, ok := o.(*List)
	if !ok || x == nil {
		return false
	}
	if len(l.elems) != len(x.elems) {
		return false
	}
	for i := range l.elems {
		if !l.elems[i].Equal(x.elems[i]) {
			return false
		}
	}
	return true
}

func (l *List) String() string {
	parts := make([]string, len(l.elems))
	for i, e := range l.elems {
		parts[i] = e.String()
	}
	return "List<" + l.elemKind.String() + ">[" + strings.Join(parts, " ") + "]"
}
