package tag

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a tag inside a tree. Paths are written starting with
// '$' for the root, followed by segments:
//
//	$.key        compound entry
//	$.'a.b'      compound entry with a quoted key
//	$[0]         list or array element
//	$.a[2].b     mixed
//
// A nil *Path is the root.
type Path struct {
	Key   *string
	Index *int
	Next  *Path
}

// ParsePath parses the textual form of a Path.
func ParsePath(s string) (*Path, error) {
	if !strings.HasPrefix(s, "$") {
		return nil, fmt.Errorf("%w: %q must start with '$'", ErrBadPath, s)
	}
	var (
		head *Path
		tail *Path
	)
	rest := s[1:]
	for rest != "" {
		seg := &Path{}
		var err error
		switch rest[0] {
		case '.':
			var key string
			key, rest, err = parseKey(rest[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, s, err)
			}
			seg.Key = &key
		case '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, fmt.Errorf("%w: %q: unterminated index", ErrBadPath, s)
			}
			i, err := strconv.Atoi(rest[1:end])
			if err != nil || i < 0 {
				return nil, fmt.Errorf("%w: %q: bad index %q", ErrBadPath, s, rest[1:end])
			}
			seg.Index = &i
			rest = rest[end+1:]
		default:
			return nil, fmt.Errorf("%w: %q: unexpected %q", ErrBadPath, s, rest[0])
		}
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	return head, nil
}

func parseKey(s string) (string, string, error) {
	if s == "" {
		return "", "", fmt.Errorf("empty key")
	}
	if s[0] != '\'' && s[0] != '"' {
		i := strings.IndexAny(s, ".[")
		if i == -1 {
			i = len(s)
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty key")
		}
		return s[:i], s[i:], nil
	}
	q := s[0]
	var buf strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 == len(s) {
				return "", "", fmt.Errorf("unterminated escape")
			}
			i++
			buf.WriteByte(s[i])
		case q:
			return buf.String(), s[i+1:], nil
		default:
			buf.WriteByte(s[i])
		}
	}
	return "", "", fmt.Errorf("unterminated quoted key")
}

// String renders p in the form accepted by ParsePath.
func (p *Path) String() string {
	var buf strings.Builder
	buf.WriteByte('$')
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Key != nil:
			buf.WriteByte('.')
			buf.WriteString(quoteKey(*x.Key))
		case x.Index != nil:
			fmt.Fprintf(&buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func quoteKey(k string) string {
	if k != "" && !strings.ContainsAny(k, ".[]'\"\\$ ") {
		return k
	}
	var buf strings.Builder
	buf.WriteByte('\'')
	for i := 0; i < len(k); i++ {
		if k[i] == '\'' || k[i] == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(k[i])
	}
	buf.WriteByte('\'')
	return buf.String()
}

// Field returns a copy of p extended by a compound key.
func (p *Path) Field(key string) *Path {
	return p.append(&Path{Key: &key})
}

// At returns a copy of p extended by an element index.
func (p *Path) At(i int) *Path {
	return p.append(&Path{Index: &i})
}

func (p *Path) append(seg *Path) *Path {
	if p == nil {
		return seg
	}
	head := &Path{Key: p.Key, Index: p.Index}
	tail := head
	for x := p.Next; x != nil; x = x.Next {
		tail.Next = &Path{Key: x.Key, Index: x.Index}
		tail = tail.Next
	}
	tail.Next = seg
	return head
}

// Get follows p from t. Array elements are returned as Byte or Int
// tags detached from the array.
func (p *Path) Get(t Tag) (Tag, error) {
	res := t
	for x := p; x != nil; x = x.Next {
		if res == nil {
			return nil, ErrNilTag
		}
		switch {
		case x.Key != nil:
			c, ok := res.(*Compound)
			if !ok {
				return nil, fmt.Errorf("%w: %s is %s, not Compound", ErrPathNotFound, p.prefix(x), res.Kind())
			}
			v, ok := c.entries[*x.Key]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p.prefix(x.Next))
			}
			res = v
		case x.Index != nil:
			i := *x.Index
			var n int
			switch y := res.(type) {
			case *List:
				n = len(y.elems)
				if i < n {
					res = y.elems[i]
					continue
				}
			case *ByteArray:
				n = len(y.value)
				if i < n {
					res = &Byte{Value: int8(y.value[i])}
					continue
				}
			case *IntArray:
				n = len(y.value)
				if i < n {
					res = &Int{Value: y.value[i]}
					continue
				}
			default:
				return nil, fmt.Errorf("%w: %s is %s, not indexable", ErrPathNotFound, p.prefix(x), res.Kind())
			}
			return nil, fmt.Errorf("%w: index %d out of range (len %d)", ErrPathNotFound, i, n)
		}
	}
	return res, nil
}

// prefix renders the segments of p before stop.
func (p *Path) prefix(stop *Path) string {
	var q *Path
	for x := p; x != nil && x != stop; x = x.Next {
		q = q.append(&Path{Key: x.Key, Index: x.Index})
	}
	return q.String()
}

// Lookup parses path and follows it from t.
func Lookup(t Tag, path string) (Tag, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return p.Get(t)
}
