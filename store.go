package depot

// store holds the component values for a single registered type, keyed by
// entity id. Values sit behind pointers so GetFromEntity can hand out a
// stable reference that a later Add for the same entity overwrites in place.
type store[T any] struct {
	data map[int]*T
}
