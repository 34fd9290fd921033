package scene

import (
	"slices"

	"github.com/go-drift/scene/pkg/events"
)

// Event is a routed element event.
type Event struct {
	// Key is the element the event is addressed to.
	Key Key
	// Payload is the semantic content.
	Payload events.Payload
	// Message is the value registered with the listener that matched, nil
	// for events emitted without a listener.
	Message any
}

func (g *Gui) emit(key Key, p events.Payload, msg any) {
	g.pending = append(g.pending, Event{Key: key, Payload: p, Message: msg})
}

// flush moves the events of one dispatch into the queue. The batch is
// reversed and placed in front of anything still queued, so popping from the
// tail yields events in the order they were generated.
func (g *Gui) flush() int {
	n := len(g.pending)
	if n == 0 {
		return 0
	}
	slices.Reverse(g.pending)
	g.queue = append(g.pending, g.queue...)
	g.pending = nil
	return n
}

// Poll removes and returns the oldest queued event.
func (g *Gui) Poll() (Event, bool) {
	n := len(g.queue)
	if n == 0 {
		return Event{}, false
	}
	ev := g.queue[n-1]
	g.queue = g.queue[:n-1]
	return ev, true
}

// Pending returns the number of queued events.
func (g *Gui) Pending() int {
	return len(g.queue)
}

// Drain removes every queued event and returns them oldest first.
func (g *Gui) Drain() []Event {
	out := make([]Event, 0, len(g.queue))
	for {
		ev, ok := g.Poll()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}
