/*
Package depot provides an in-memory entity/component store with
bitmask-indexed queries and a type-keyed synchronous event bus.

Depot keeps one authoritative, ordered collection of entities. Each entity is
a unique identifier paired with a bitmask recording which component types it
currently carries. Every registered component type gets a sequential bit flag,
a typed backing store, and a candidate list of the entities holding it;
queries scan the shortest candidate list among the requested types and filter
by mask.

Core Concepts:

  - Entity: A unique identifier paired with a component bitmask.
  - Component: A typed data value attached to zero or more entities.
  - Candidate list: A per-type index of holders, used to bound query scans.
  - EventBus: A synchronous publish/subscribe dispatcher keyed by event type.

Basic Usage:

	// Create storage
	storage := depot.Factory.NewStorage()

	// Define components
	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()
	storage.Register(position, velocity)

	// Create an entity and attach components
	player := storage.NewEntity()
	position.Add(player, Position{X: 10, Y: 20})
	velocity.Add(player, Velocity{X: 1, Y: 2})

	// React to lifecycle events
	depot.Subscribe(storage.Events(), func(ev depot.ComponentAdded) {
		fmt.Println("added:", ev.Component)
	})

	// Query entities holding both components
	movers, _ := storage.EntitiesWith(position, velocity)
	for _, e := range movers {
		pos := position.GetFromEntity(e)
		vel := velocity.GetFromEntity(e)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Depot is single-threaded by design: every operation runs to completion on the
caller's goroutine with no internal blocking, and broadcasts invoke
subscribers synchronously on the mutating call path.
*/
package depot
