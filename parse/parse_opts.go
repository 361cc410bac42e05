package parse

// DefaultMaxDepth bounds the nesting of compounds, lists and arrays.
const DefaultMaxDepth = 512

type parseOpts struct {
	filename string
	maxDepth int
}

type ParseOption func(*parseOpts)

// ParseFilename sets the file name reported in errors.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func getOpts(opts ...ParseOption) *parseOpts {
	o := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}
