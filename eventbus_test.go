package depot

import (
	"testing"
)

type exampleEvent struct {
	payload int
}

type otherEvent struct {
	payload int
}

func TestSubscribeAndBroadcast(t *testing.T) {
	bus := &EventBus{}
	expectedPayload := 111

	calls := 0
	Subscribe(bus, func(e exampleEvent) {
		calls++
		if e.payload != expectedPayload {
			t.Errorf("Payload = %d, want %d", e.payload, expectedPayload)
		}
	})
	Broadcast(bus, exampleEvent{payload: expectedPayload})

	if calls != 1 {
		t.Errorf("Handler invoked %d times, want 1", calls)
	}
}

func TestBroadcastNoSubscribers(t *testing.T) {
	bus := &EventBus{}
	// No-op, not an error
	Broadcast(bus, exampleEvent{payload: 111})
}

// TestBroadcastTypeIsolation tests that a handler registered for one event
// type is never invoked for another, even with payload-compatible types
func TestBroadcastTypeIsolation(t *testing.T) {
	bus := &EventBus{}

	exampleCalls := 0
	otherCalls := 0
	Subscribe(bus, func(exampleEvent) { exampleCalls++ })
	Subscribe(bus, func(otherEvent) { otherCalls++ })

	Broadcast(bus, exampleEvent{payload: 1})
	Broadcast(bus, exampleEvent{payload: 2})
	Broadcast(bus, otherEvent{payload: 3})

	if exampleCalls != 2 {
		t.Errorf("exampleEvent handler invoked %d times, want 2", exampleCalls)
	}
	if otherCalls != 1 {
		t.Errorf("otherEvent handler invoked %d times, want 1", otherCalls)
	}
}

func TestSubscriptionOrder(t *testing.T) {
	bus := &EventBus{}

	var order []int
	for i := 0; i < 4; i++ {
		Subscribe(bus, func(exampleEvent) { order = append(order, i) })
	}
	Broadcast(bus, exampleEvent{})

	if len(order) != 4 {
		t.Fatalf("Invoked %d handlers, want 4", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("Dispatch position %d ran handler %d", i, got)
		}
	}
}

// TestSubscribeDuringBroadcast tests that handlers subscribed mid-dispatch
// only take effect on the next broadcast
func TestSubscribeDuringBroadcast(t *testing.T) {
	bus := &EventBus{}

	outer := 0
	nested := 0
	subscribed := false
	Subscribe(bus, func(exampleEvent) {
		outer++
		if !subscribed {
			subscribed = true
			Subscribe(bus, func(exampleEvent) { nested++ })
		}
	})

	Broadcast(bus, exampleEvent{})
	if outer != 1 || nested != 0 {
		t.Fatalf("First broadcast: outer = %d, nested = %d, want 1, 0", outer, nested)
	}

	Broadcast(bus, exampleEvent{})
	if outer != 2 || nested != 1 {
		t.Errorf("Second broadcast: outer = %d, nested = %d, want 2, 1", outer, nested)
	}
}

// TestStorageLifecycleEvents tests the events a storage broadcasts as
// entities and components change
func TestStorageLifecycleEvents(t *testing.T) {
	sto := Factory.NewStorage()
	healthComp := FactoryNewComponent[Health]()
	sto.Register(healthComp)

	var created []int
	var added []ComponentAdded
	var removed []ComponentRemoved
	Subscribe(sto.Events(), func(ev EntityCreated) {
		created = append(created, ev.Entity.ID())
	})
	Subscribe(sto.Events(), func(ev ComponentAdded) {
		added = append(added, ev)
	})
	Subscribe(sto.Events(), func(ev ComponentRemoved) {
		removed = append(removed, ev)
	})

	e := sto.NewEntity()
	healthComp.Add(e, Health{Current: 50, Max: 100})
	healthComp.Add(e, Health{Current: 80, Max: 100})
	healthComp.Remove(e)

	if len(created) != 1 || created[0] != e.ID() {
		t.Errorf("EntityCreated ids = %v, want [%d]", created, e.ID())
	}

	if len(added) != 2 {
		t.Fatalf("ComponentAdded broadcast %d times, want 2", len(added))
	}
	if got := added[1].Component.(Health); got.Current != 80 {
		t.Errorf("Second ComponentAdded payload = %v", got)
	}

	// The removal event carries the value that was actually stored
	if len(removed) != 1 {
		t.Fatalf("ComponentRemoved broadcast %d times, want 1", len(removed))
	}
	if got := removed[0].Component.(Health); got.Current != 80 {
		t.Errorf("ComponentRemoved payload = %v, want the overwritten value", got)
	}
	if removed[0].Entity.ID() != e.ID() {
		t.Errorf("ComponentRemoved entity = %d, want %d", removed[0].Entity.ID(), e.ID())
	}
}

// TestEventsAfterMutation tests that lifecycle events observe the fully
// applied mutation
func TestEventsAfterMutation(t *testing.T) {
	sto := Factory.NewStorage()
	posComp := FactoryNewComponent[Position]()
	sto.Register(posComp)

	Subscribe(sto.Events(), func(ev ComponentAdded) {
		if !posComp.Has(ev.Entity) {
			t.Error("ComponentAdded observed before the component was queryable")
		}
	})
	Subscribe(sto.Events(), func(ev ComponentRemoved) {
		if posComp.Has(ev.Entity) {
			t.Error("ComponentRemoved observed before the component was gone")
		}
	})

	e := sto.NewEntity()
	posComp.Add(e, Position{X: 1})
	posComp.Remove(e)
}
