package depot

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

var _ Storage = &storage{}

// maxComponentTypes is how many distinct component types a single storage can
// register, bounded by the width of the entity bitmask.
const maxComponentTypes = 32

type registration struct {
	bit   uint32
	store any

	// candidates indexes the entities currently holding this component, by
	// id, in insertion order. An id appears here iff the matching bit is set
	// on the entity's authoritative mask; every add/remove path maintains
	// that invariant.
	candidates []int
}

type storage struct {
	bus           *EventBus
	masks         []mask.Mask // authoritative entity collection; id i lives at index i-1
	registrations map[uint32]*registration
}

func newStorage() Storage {
	return &storage{
		bus:           &EventBus{},
		registrations: make(map[uint32]*registration),
	}
}

// NewEntity appends a fresh entity to the authoritative collection and
// broadcasts EntityCreated. Ids are assigned monotonically starting at 1.
// Entities are never destroyed.
func (sto *storage) NewEntity() Entity {
	sto.masks = append(sto.masks, mask.Mask{})
	en := entity{sto: sto, id: len(sto.masks)}
	Broadcast(sto.bus, EntityCreated{Entity: en})
	return en
}

func (sto *storage) Entity(id int) (Entity, error) {
	if id < 1 || id > len(sto.masks) {
		return nil, EntityNotFoundError{ID: id}
	}
	return entity{sto: sto, id: id}, nil
}

// Entities iterates the authoritative collection in creation order. The
// length is captured when iteration starts, so entities created mid-iteration
// are not visited.
func (sto *storage) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		n := len(sto.masks)
		for id := 1; id <= n; id++ {
			if !yield(entity{sto: sto, id: id}) {
				return
			}
		}
	}
}

// Register assigns each component the next unused bit flag and allocates its
// typed backing store. Registration is idempotent: a known component keeps
// its flag and storage untouched. The n-th distinct registration gets bit
// n-1, and registering beyond maxComponentTypes fails with
// BitfieldOverflowError.
func (sto *storage) Register(components ...Component) error {
	for _, c := range components {
		if _, registered := sto.registrations[c.TypeID()]; registered {
			continue
		}
		if len(sto.registrations) >= maxComponentTypes {
			return BitfieldOverflowError{}
		}
		builder, ok := c.(storeBuilder)
		if !ok {
			panic("depot: components must be created via FactoryNewComponent")
		}
		sto.registrations[c.TypeID()] = &registration{
			bit:   uint32(len(sto.registrations)),
			store: builder.newStore(),
		}
	}
	return nil
}

// BitIndexFor returns the bit assigned to c at registration time.
func (sto *storage) BitIndexFor(c Component) (uint32, bool) {
	reg, ok := sto.registrations[c.TypeID()]
	if !ok {
		return 0, false
	}
	return reg.bit, true
}

// Events returns the bus the storage broadcasts lifecycle events on.
func (sto *storage) Events() *EventBus {
	return sto.bus
}

func (sto *storage) registrationFor(c Component) (*registration, error) {
	reg, ok := sto.registrations[c.TypeID()]
	if !ok {
		return nil, ComponentNotRegisteredError{Component: c}
	}
	return reg, nil
}

func hasBit(m mask.Mask, bit uint32) bool {
	var single mask.Mask
	single.Mark(bit)
	return m.ContainsAll(single)
}
