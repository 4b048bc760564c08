package sim

import "log"

type EventType int

const (
	EventJump EventType = iota
	EventLand
	EventPickup
	EventCrash
	EventRestart
)

func (t EventType) String() string {
	switch t {
	case EventJump:
		return "jump"
	case EventLand:
		return "land"
	case EventPickup:
		return "pickup"
	case EventCrash:
		return "crash"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	X, Y float64
	Data int // Generic payload (score for pickups, distance for crashes).
}

type EventHandler func(Event)

// EventBus fans drained world events out to frontend subscribers (audio, logging).
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
	for t := EventJump; t <= EventRestart; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// Publish emits each event in order.
func (eb *EventBus) Publish(events []Event) {
	for _, e := range events {
		eb.Emit(e)
	}
}

// LogRuns writes run transitions to the standard logger.
func LogRuns(eb *EventBus, w *World) {
	eb.Subscribe(EventCrash, func(e Event) {
		log.Printf("run ended: dist %dm morale %d best %dm", e.Data, w.Score, w.Best)
	})
	eb.Subscribe(EventRestart, func(Event) {
		log.Printf("restart (best %dm)", w.Best)
	})
}
