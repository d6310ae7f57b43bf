package depot

type factory struct{}

var Factory factory

func (f factory) NewStorage() Storage {
	return newStorage()
}

// elementTypeCount backs the sequential component identity allocator.
// Single-goroutine access only, matching the package's concurrency model.
var elementTypeCount uint32

type elementType struct {
	id uint32
}

func (e elementType) TypeID() uint32 { return e.id }

// FactoryNewComponent allocates a fresh component identity with typed access
// to its backing store. Each call defines a distinct component type: create
// the component once and share the handle.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	elementTypeCount++
	return AccessibleComponent[T]{Component: elementType{id: elementTypeCount}}
}
