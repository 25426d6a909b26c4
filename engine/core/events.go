package core

// Event represents a simulation event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtStarted EventType = iota
	EvtDragStart
	EvtDragRelease
	EvtLightToggled
)

func (t EventType) String() string {
	switch t {
	case EvtStarted:
		return "started"
	case EvtDragStart:
		return "drag_start"
	case EvtDragRelease:
		return "drag_release"
	case EvtLightToggled:
		return "light_toggled"
	}
	return "unknown"
}

// ReleasePayload carries the momentum handed over at the end of a drag
type ReleasePayload struct {
	VelX, VelY float64
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

// Dispatch processes the events queued so far. Events emitted by a
// handler stay queued for the next Dispatch.
func (eb *EventBus) Dispatch() {
	q := eb.queue
	eb.queue = nil
	for _, e := range q {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
}
