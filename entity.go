package depot

import "github.com/TheBitDrifter/mask"

var (
	_ Entity        = entity{}
	_ mask.Maskable = entity{}
)

// entity is a lightweight handle into the storage's authoritative entity
// collection. It carries no component state of its own, so it can never go
// stale: Mask always reads the authoritative copy.
type entity struct {
	sto *storage
	id  int
}

func (e entity) ID() int { return e.id }

// Mask returns the entity's current component bitmask.
func (e entity) Mask() mask.Mask {
	return e.sto.masks[e.id-1]
}

// resolve unwraps a public Entity back into its storage-backed handle.
// Anything else (nil interface, zero handle) has no authoritative record.
func resolve(en Entity) (entity, bool) {
	hnd, ok := en.(entity)
	if !ok || hnd.sto == nil {
		return entity{}, false
	}
	return hnd, true
}
