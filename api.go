package depot

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

type Storage interface {
	NewEntity() Entity
	Entity(id int) (Entity, error)
	Entities() iter.Seq[Entity]
	Register(components ...Component) error
	BitIndexFor(c Component) (uint32, bool)
	EntitiesWith(components ...Component) ([]Entity, error)
	Events() *EventBus
}

type Entity interface {
	ID() int
	Mask() mask.Mask
}

// storeBuilder is implemented by factory-made components so the storage can
// allocate a typed backing store at registration time without knowing T.
type storeBuilder interface {
	newStore() any
}
