package game

type EventType int

const (
	EventJump      EventType = iota // horse started a jump
	EventCollision                  // two free horses started negotiating
	EventTrapped                    // an avoiding horse turned a full circle
	EventReleased                   // one of two mutually stopped horses was set avoiding
	EventSeparated                  // a horse's collision queue emptied
)

func (t EventType) String() string {
	switch t {
	case EventJump:
		return "jump"
	case EventCollision:
		return "collision"
	case EventTrapped:
		return "trapped"
	case EventReleased:
		return "released"
	case EventSeparated:
		return "separated"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	Horse int
	Other int // 0 when no second horse is involved
	X, Z  float32
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventJump; t <= EventSeparated; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
