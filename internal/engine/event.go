package engine

// ListenerID identifies one registration so it can be removed later.
type ListenerID uint32

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// EventWithArg fans one value out to its listeners in registration order.
// Listeners added or removed during Invoke take effect on the next call.
type EventWithArg[T any] struct {
	next      ListenerID
	listeners []listener[T]
}

// AddListener registers fn. A nil fn is ignored and returns 0.
func (e *EventWithArg[T]) AddListener(fn func(T)) ListenerID {
	if fn == nil {
		return 0
	}
	e.next++
	e.listeners = append(e.listeners, listener[T]{id: e.next, fn: fn})
	return e.next
}

// RemoveListener drops the listener registered under id.
func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}

// Event is a signal without a payload.
type Event struct {
	EventWithArg[struct{}]
}

func (e *Event) AddListener(fn func()) ListenerID {
	if fn == nil {
		return 0
	}
	return e.EventWithArg.AddListener(func(struct{}) { fn() })
}

func (e *Event) Invoke() {
	e.EventWithArg.Invoke(struct{}{})
}
