package host

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/signadot/nbt-format/go-nbt/tag"
)

var (
	ErrDuplicateAdapter = errors.New("duplicate adapter")
	ErrNoAdapter        = errors.New("no adapter")
	ErrNoBlockEntity    = errors.New("block state has no block entity")
	ErrObjectKind       = errors.New("wrong object kind")
	ErrRegistryBuilt    = errors.New("registry already built")
)

// ObjectKind names the kinds of host object which carry a tag tree.
type ObjectKind int

const (
	ItemObject ObjectKind = iota
	EntityObject
	BlockStateObject
)

func (k ObjectKind) String() string {
	switch k {
	case ItemObject:
		return "item"
	case EntityObject:
		return "entity"
	case BlockStateObject:
		return "block-state"
	default:
		return fmt.Sprintf("<object kind %d>", int(k))
	}
}

// Object is an opaque handle owned by the host.
type Object interface {
	ObjectKind() ObjectKind
}

// Adapter moves tag trees in and out of one kind of host object.
//
// WriteTag may return a different handle than it was given; callers
// must continue with the returned one.
type Adapter interface {
	Kind() ObjectKind
	ReadTag(Object) (*tag.Compound, error)
	WriteTag(Object, *tag.Compound) (Object, error)
}

// Registry holds at most one Adapter per ObjectKind. It is not
// modified after construction and may be shared.
type Registry struct {
	adapters map[ObjectKind]Adapter
}

func NewRegistry(adapters ...Adapter) (*Registry, error) {
	r := &Registry{adapters: make(map[ObjectKind]Adapter, len(adapters))}
	for _, a := range adapters {
		if _, present := r.adapters[a.Kind()]; present {
			return nil, fmt.Errorf("%s: %w", a.Kind(), ErrDuplicateAdapter)
		}
		r.adapters[a.Kind()] = a
	}
	return r, nil
}

func (r *Registry) Lookup(k ObjectKind) (Adapter, error) {
	a, ok := r.adapters[k]
	if !ok {
		return nil, fmt.Errorf("%s: %w", k, ErrNoAdapter)
	}
	return a, nil
}

// Kinds returns the kinds with an adapter, in order.
func (r *Registry) Kinds() []ObjectKind {
	res := make([]ObjectKind, 0, len(r.adapters))
	for k := range r.adapters {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// ReadTag reads the tree of o with the adapter for its kind.
func (r *Registry) ReadTag(o Object) (*tag.Compound, error) {
	a, err := r.Lookup(o.ObjectKind())
	if err != nil {
		return nil, err
	}
	return a.ReadTag(o)
}

// WriteTag stores c into o with the adapter for its kind and returns
// the handle to use from now on.
func (r *Registry) WriteTag(o Object, c *tag.Compound) (Object, error) {
	a, err := r.Lookup(o.ObjectKind())
	if err != nil {
		return nil, err
	}
	return a.WriteTag(o, c)
}

// Update reads the tree of o, lets f modify it and writes it back.
func (r *Registry) Update(o Object, f func(*tag.Compound) error) (Object, error) {
	c, err := r.ReadTag(o)
	if err != nil {
		return nil, err
	}
	if err := f(c); err != nil {
		return nil, err
	}
	return r.WriteTag(o, c)
}

var (
	mu      sync.Mutex
	once    sync.Once
	build   func() (*Registry, error)
	built   bool
	dflt    *Registry
	dfltErr error
)

// Install sets the function that builds the process-wide registry. It
// fails with ErrRegistryBuilt once Default has been called.
func Install(f func() (*Registry, error)) error {
	mu.Lock()
	defer mu.Unlock()
	if built {
		return ErrRegistryBuilt
	}
	build = f
	return nil
}

// Default returns the process-wide registry, building it on first use
// with the installed function. Without one it is empty.
func Default() (*Registry, error) {
	once.Do(func() {
		mu.Lock()
		f := build
		built = true
		mu.Unlock()
		if f == nil {
			dflt = &Registry{adapters: map[ObjectKind]Adapter{}}
			return
		}
		dflt, dfltErr = f()
	})
	return dflt, dfltErr
}
