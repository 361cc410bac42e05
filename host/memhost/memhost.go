package memhost

import (
	"fmt"

	"github.com/signadot/nbt-format/go-nbt/codec"
	"github.com/signadot/nbt-format/go-nbt/host"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// Item is an immutable stack of items. Writing its tag yields a new
// Item.
type Item struct {
	ID    string
	Count int

	payload []byte
}

func NewItem(id string, count int) *Item {
	return &Item{ID: id, Count: count}
}

func (*Item) ObjectKind() host.ObjectKind { return host.ItemObject }

// Entity is a mutable world entity. Writing its tag loads it in place.
type Entity struct {
	Type string

	payload []byte
}

func NewEntity(typ string) *Entity {
	return &Entity{Type: typ}
}

func (*Entity) ObjectKind() host.ObjectKind { return host.EntityObject }

// BlockState is a placed block. Only blocks with a block entity carry
// a tag.
type BlockState struct {
	Block string

	hasEntity bool
	payload   []byte
}

func NewBlockState(block string, hasEntity bool) *BlockState {
	return &BlockState{Block: block, hasEntity: hasEntity}
}

func (*BlockState) ObjectKind() host.ObjectKind { return host.BlockStateObject }

func (b *BlockState) HasBlockEntity() bool { return b.hasEntity }

type itemAdapter struct{}
type entityAdapter struct{}
type blockStateAdapter struct{}

func (itemAdapter) Kind() host.ObjectKind       { return host.ItemObject }
func (entityAdapter) Kind() host.ObjectKind     { return host.EntityObject }
func (blockStateAdapter) Kind() host.ObjectKind { return host.BlockStateObject }

func (itemAdapter) ReadTag(o host.Object) (*tag.Compound, error) {
	it, ok := o.(*Item)
	if !ok {
		return nil, wrongObject(o, host.ItemObject)
	}
	return load(it.payload)
}

func (itemAdapter) WriteTag(o host.Object, c *tag.Compound) (host.Object, error) {
	it, ok := o.(*Item)
	if !ok {
		return nil, wrongObject(o, host.ItemObject)
	}
	d, err := codec.Marshal(c)
	if err != nil {
		return nil, err
	}
	return &Item{ID: it.ID, Count: it.Count, payload: d}, nil
}

func (entityAdapter) ReadTag(o host.Object) (*tag.Compound, error) {
	e, ok := o.(*Entity)
	if !ok {
		return nil, wrongObject(o, host.EntityObject)
	}
	return load(e.payload)
}

func (entityAdapter) WriteTag(o host.Object, c *tag.Compound) (host.Object, error) {
	e, ok := o.(*Entity)
	if !ok {
		return nil, wrongObject(o, host.EntityObject)
	}
	d, err := codec.Marshal(c)
	if err != nil {
		return nil, err
	}
	e.payload = d
	return e, nil
}

func (blockStateAdapter) ReadTag(o host.Object) (*tag.Compound, error) {
	b, ok := o.(*BlockState)
	if !ok {
		return nil, wrongObject(o, host.BlockStateObject)
	}
	if !b.hasEntity {
		return nil, fmt.Errorf("%s: %w", b.Block, host.ErrNoBlockEntity)
	}
	return load(b.payload)
}

func (blockStateAdapter) WriteTag(o host.Object, c *tag.Compound) (host.Object, error) {
	b, ok := o.(*BlockState)
	if !ok {
		return nil, wrongObject(o, host.BlockStateObject)
	}
	if !b.hasEntity {
		return nil, fmt.Errorf("%s: %w", b.Block, host.ErrNoBlockEntity)
	}
	d, err := codec.Marshal(c)
	if err != nil {
		return nil, err
	}
	b.payload = d
	return b, nil
}

func load(payload []byte) (*tag.Compound, error) {
	if payload == nil {
		return tag.NewCompound(), nil
	}
	return codec.Unmarshal(payload)
}

func wrongObject(o host.Object, want host.ObjectKind) error {
	return fmt.Errorf("%w: %T is not a memhost %s", host.ErrObjectKind, o, want)
}

// Adapters returns the item, entity and block state adapters.
func Adapters() []host.Adapter {
	return []host.Adapter{itemAdapter{}, entityAdapter{}, blockStateAdapter{}}
}

func NewRegistry() (*host.Registry, error) {
	return host.NewRegistry(Adapters()...)
}
