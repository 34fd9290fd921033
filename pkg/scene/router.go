package scene

import (
	"github.com/go-drift/scene/pkg/events"
	"github.com/go-drift/scene/pkg/geometry"
)

// Dispatch routes one environment event to the element listeners and queues
// the resulting element events. It returns the number of events queued.
//
// Pointer events are hit-tested against the containers committed by the last
// Update. Children are visited before their parent and later children before
// earlier ones, so the topmost element sees an event first. A shared state
// per dispatch lets the first Listen listener capture the event while Peek
// listeners observe it and Force listeners always fire.
func (g *Gui) Dispatch(ev events.Env) int {
	switch e := ev.(type) {
	case events.CursorMoved:
		g.cursorMoved(e.Position)
	case events.ButtonPressed:
		g.spatial(g.cursor, events.Click{Button: e.Button, Pressed: e.Pressed, Position: g.cursor})
	case events.Scrolled:
		g.spatial(g.cursor, events.Scroll{Delta: e.Delta, Position: g.cursor})
	case events.KeyPressed:
		g.broadcast(events.Key{Code: e.Code, Pressed: e.Pressed})
	case events.TextInput:
		g.broadcast(events.Text{Text: e.Text})
	case events.FileDrop:
		g.fileDrop(e)
	case Select:
		g.selectFocus(e)
	default:
		if ev != nil {
			g.logger.Warn("unhandled environment event", "kind", ev.EnvKind())
		}
	}
	n := g.flush()
	if n > 0 {
		g.logger.Debug("dispatch", "kind", ev.EnvKind(), "events", n)
	}
	return n
}

// visit calls fn for every visible attached element, children in reverse
// order before their parent.
func (g *Gui) visit(key Key, fn func(Key, *Element)) {
	el := &g.elements[key]
	if el.hidden {
		return
	}
	children := el.Children()
	for i := len(children) - 1; i >= 0; i-- {
		g.visit(children[i], fn)
	}
	fn(key, &g.elements[key])
}

// fire offers p to every matching listener of el.
func (g *Gui) fire(key Key, el *Element, state *events.State, p events.Payload) {
	for _, l := range el.listeners {
		if l.Type == p.Listener() && state.Offer(l.Kind) {
			g.emit(key, p, l.Message)
		}
	}
}

func (g *Gui) spatial(at geometry.Vector, p events.Payload) {
	var state events.State
	g.visit(g.root, func(key Key, el *Element) {
		if el.container.Contains(at) {
			g.fire(key, el, &state, p)
		}
	})
}

// broadcast delivers p to every listener of its type regardless of position,
// focus or listener kind.
func (g *Gui) broadcast(p events.Payload) {
	g.visit(g.root, func(key Key, el *Element) {
		for _, l := range el.listeners {
			if l.Type == p.Listener() {
				g.emit(key, p, l.Message)
			}
		}
	})
}

// cursorMoved compares each element's hit at the new and previous cursor.
// Before the first move there is no previous cursor, so nothing was hit.
// Moves, enters and leaves are captured independently so that an element
// that saw an enter always gets to see the matching leave.
func (g *Gui) cursorMoved(pos geometry.Vector) {
	g.prevCursor, g.cursor = g.cursor, pos
	prev, cur := g.prevCursor, g.cursor
	first := !g.hasCursor
	g.hasCursor = true

	var move, enter, leave events.State
	g.visit(g.root, func(key Key, el *Element) {
		now := el.container.Contains(cur)
		before := !first && el.container.Contains(prev)
		switch {
		case now && before:
			g.fire(key, el, &move, events.CursorMove{Current: cur, Previous: prev})
		case now:
			g.fire(key, el, &enter, events.CursorEnter{Position: cur})
		case before:
			g.fire(key, el, &leave, events.CursorLeave{Position: cur})
		}
	})
}

func (g *Gui) fileDrop(e events.FileDrop) {
	switch e.Phase {
	case events.DropHover:
		g.dragPath, g.dragging = e.Path, true
	case events.DropCancel:
		g.dragPath, g.dragging = "", false
	case events.DropDrop:
		g.dragPath, g.dragging = "", false
		if e.Path == "" {
			return
		}
		g.spatial(g.cursor, events.Dropped{Path: e.Path, Position: g.cursor})
	}
}

// HitTest returns the visible elements containing p, topmost first.
func (g *Gui) HitTest(p geometry.Vector) []Key {
	var keys []Key
	g.visit(g.root, func(key Key, el *Element) {
		if el.container.Contains(p) {
			keys = append(keys, key)
		}
	})
	return keys
}
