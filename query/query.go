package query

import (
	"errors"
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/nbt-format/go-nbt/convert"
	"github.com/signadot/nbt-format/go-nbt/debug"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

var ErrQuery = errors.New("query error")

// Query is a compiled expression. A Query may be run against many
// documents; runs are serialized.
type Query struct {
	src string
	prg *vm.Program

	mu  sync.Mutex
	doc *tag.Compound
}

// Compile compiles expression. Top level keys of the document are
// available as variables, and the functions getpath, haspath and kind
// take a path in the notation of tag.ParsePath.
func Compile(expression string) (*Query, error) {
	return compile(expression)
}

// CompileBool is like Compile but the expression must produce a bool.
func CompileBool(expression string) (*Query, error) {
	return compile(expression, expr.AsBool())
}

func compile(expression string, opts ...expr.Option) (*Query, error) {
	q := &Query{src: expression}
	prg, err := expr.Compile(expression, append(q.exprOpts(), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	q.prg = prg
	return q, nil
}

func (q *Query) String() string { return q.src }

// Run evaluates q against c.
func (q *Query) Run(c *tag.Compound) (any, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.doc = c
	defer func() { q.doc = nil }()
	env, _ := convert.ToAny(c).(map[string]any)
	if env == nil {
		env = map[string]any{}
	}
	if debug.Query() {
		debug.Logf("query %q on\n%s", q.src, c)
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return res, nil
}

// Tag evaluates q against c and converts the result to a tag.
func (q *Query) Tag(c *tag.Compound) (tag.Tag, error) {
	res, err := q.Run(c)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: %q produced nil", ErrQuery, q.src)
	}
	return convert.FromAny(res)
}

// Eval compiles expression and evaluates it against c.
func Eval(c *tag.Compound, expression string) (any, error) {
	q, err := Compile(expression)
	if err != nil {
		return nil, err
	}
	return q.Run(c)
}

// Match reports whether the boolean expression holds for c.
func Match(c *tag.Compound, expression string) (bool, error) {
	q, err := CompileBool(expression)
	if err != nil {
		return false, err
	}
	res, err := q.Run(c)
	if err != nil {
		return false, err
	}
	b, _ := res.(bool)
	return b, nil
}

func (q *Query) lookup(path string) (tag.Tag, error) {
	if q.doc == nil {
		return nil, fmt.Errorf("%w: no document", ErrQuery)
	}
	return tag.Lookup(q.doc, path)
}

func (q *Query) exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			t, err := q.lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return convert.ToAny(t), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := q.lookup(params[0].(string))
			if errors.Is(err, tag.ErrPathNotFound) {
				return false, nil
			}
			if err != nil {
				return nil, err
			}
			return true, nil
		},
			new(func(string) bool)),
		expr.Function("kind", func(params ...any) (any, error) {
			t, err := q.lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return t.Kind().String(), nil
		},
			new(func(string) string)),
	}
}
