package depot

import "slices"

// AccessibleComponent pairs a component identity with typed access to its
// backing store. Create one handle per component type via FactoryNewComponent
// and share it; the type-erased store is downcast exactly once inside these
// methods.
type AccessibleComponent[T any] struct {
	Component
}

var _ storeBuilder = AccessibleComponent[struct{}]{}

func (c AccessibleComponent[T]) newStore() any {
	return &store[T]{data: make(map[int]*T)}
}

// Add stores value for en under this component type, overwriting any value
// already present. On first add it sets the component's bit on the entity's
// authoritative mask and appends the entity to the candidate list; repeated
// adds never duplicate candidate membership. ComponentAdded is broadcast
// after the mutation is fully applied.
func (c AccessibleComponent[T]) Add(en Entity, value T) error {
	hnd, ok := resolve(en)
	if !ok {
		return EntityNotFoundError{}
	}
	sto := hnd.sto
	reg, err := sto.registrationFor(c.Component)
	if err != nil {
		return err
	}
	st := reg.store.(*store[T])
	if existing, present := st.data[hnd.id]; present {
		*existing = value
	} else {
		stored := value
		st.data[hnd.id] = &stored
		sto.masks[hnd.id-1].Mark(reg.bit)
		reg.candidates = append(reg.candidates, hnd.id)
	}
	Broadcast(sto.bus, ComponentAdded{Entity: en, Component: value})
	return nil
}

// Remove clears the component's bit on the entity's authoritative mask,
// drops the candidate-list entry, and deletes the stored value. The
// ComponentRemoved broadcast carries the value that was actually stored at
// removal time. Removing a component that was never added fails with
// InvalidStateError.
func (c AccessibleComponent[T]) Remove(en Entity) error {
	hnd, ok := resolve(en)
	if !ok {
		return EntityNotFoundError{}
	}
	sto := hnd.sto
	reg, err := sto.registrationFor(c.Component)
	if err != nil {
		return err
	}
	st := reg.store.(*store[T])
	stored, present := st.data[hnd.id]
	if !present {
		return InvalidStateError{Component: c.Component, EntityID: hnd.id}
	}
	removed := *stored
	sto.masks[hnd.id-1].Unmark(reg.bit)
	i := slices.Index(reg.candidates, hnd.id)
	reg.candidates = slices.Delete(reg.candidates, i, i+1)
	delete(st.data, hnd.id)
	Broadcast(sto.bus, ComponentRemoved{Entity: en, Component: removed})
	return nil
}

// GetFromEntity returns the component value stored for en, or nil when the
// entity does not hold this component (including unregistered types).
//
// The returned pointer aliases internal storage: a later Add for the same
// entity overwrites the value in place, and a Remove detaches it. Treat the
// pointer as invalidated by any subsequent mutation of this component type's
// storage.
func (c AccessibleComponent[T]) GetFromEntity(en Entity) *T {
	hnd, ok := resolve(en)
	if !ok {
		return nil
	}
	reg, ok := hnd.sto.registrations[c.TypeID()]
	if !ok {
		return nil
	}
	if !hasBit(hnd.sto.masks[hnd.id-1], reg.bit) {
		return nil
	}
	st := reg.store.(*store[T])
	return st.data[hnd.id]
}

// Has reports whether en currently holds this component.
func (c AccessibleComponent[T]) Has(en Entity) bool {
	return c.GetFromEntity(en) != nil
}
