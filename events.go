package depot

// EntityCreated is broadcast by a storage after a new entity joins the
// authoritative collection.
type EntityCreated struct {
	Entity Entity
}

// ComponentAdded is broadcast after a component value is stored for an
// entity and every index is updated. Component holds the stored value.
type ComponentAdded struct {
	Entity    Entity
	Component any
}

// ComponentRemoved is broadcast after a component is removed from an entity.
// Component holds the value that was stored at removal time, not anything
// supplied by the caller.
type ComponentRemoved struct {
	Entity    Entity
	Component any
}
