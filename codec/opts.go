package codec

import (
	"log/slog"

	"github.com/klauspost/compress/gzip"
)

// DefaultMaxDepth bounds the nesting of compounds and lists.
const DefaultMaxDepth = 512

type options struct {
	maxDepth int
	rootName string
	level    int
	log      *slog.Logger
}

type Option func(*options)

func getOpts(opts ...Option) *options {
	o := &options{
		maxDepth: DefaultMaxDepth,
		level:    gzip.DefaultCompression,
	}
	for _, f := range opts {
		f(o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	return o
}

// WithMaxDepth sets the deepest container nesting accepted on decode
// and produced on encode. The root compound is depth 1.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// WithRootName sets the name written for the root compound. Minecraft
// writes the empty name.
func WithRootName(name string) Option {
	return func(o *options) { o.rootName = name }
}

// WithCompressionLevel sets the gzip level used by EncodeCompressed.
func WithCompressionLevel(level int) Option {
	return func(o *options) { o.level = level }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}
