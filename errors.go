package depot

import "fmt"

type ComponentNotRegisteredError struct {
	Component Component
}

func (e ComponentNotRegisteredError) Error() string {
	return fmt.Sprintf("component type %d is not registered", e.Component.TypeID())
}

type EntityNotFoundError struct {
	ID int
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity not found: %d", e.ID)
}

type BitfieldOverflowError struct{}

func (e BitfieldOverflowError) Error() string {
	return fmt.Sprintf("exceeded available component flags for the bitfield (max %d)", maxComponentTypes)
}

type InvalidStateError struct {
	Component Component
	EntityID  int
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("component type %d was never added to entity %d", e.Component.TypeID(), e.EntityID)
}
