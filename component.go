package depot

// Component identifies a component type. Identities are assigned sequentially
// by FactoryNewComponent; a storage maps each registered identity to a bit
// flag, a typed backing store, and a candidate list.
type Component interface {
	TypeID() uint32
}
