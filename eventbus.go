package depot

import "reflect"

// EventBus is a synchronous, type-keyed publish/subscribe dispatcher. Each
// distinct event type carries its own ordered subscriber list; a handler
// registered for one type is never invoked for another, even when the
// payloads are structurally compatible. The zero value is ready to use.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// Subscribe appends handler to the subscriber list for event type T.
// Handlers are invoked in subscription order and are never deduplicated.
// There is no unsubscribe.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]any)
	}
	t := reflect.TypeFor[T]()
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Broadcast synchronously invokes every handler subscribed to event type T,
// in subscription order, on the caller's goroutine. Broadcasting a type with
// no subscribers is a no-op. Dispatch iterates a snapshot of the subscriber
// list taken before the first call, so a handler that subscribes during
// dispatch only takes effect on the next broadcast.
func Broadcast[T any](bus *EventBus, event T) {
	snapshot := bus.handlers[reflect.TypeFor[T]()]
	for _, h := range snapshot {
		h.(func(T))(event)
	}
}
