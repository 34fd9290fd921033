package scene

import (
	"github.com/go-drift/scene/pkg/events"
	"github.com/go-drift/scene/pkg/focus"
)

// SelectOp is a focus navigation command.
type SelectOp int

const (
	// SelectNext moves focus to the next candidate.
	SelectNext SelectOp = iota
	// SelectPrev moves focus to the previous candidate.
	SelectPrev
	// SelectKey focuses Select.Key.
	SelectKey
	// SelectConfirm tags the focused element without moving focus.
	SelectConfirm
	// SelectLock suppresses next and previous navigation.
	SelectLock
	// SelectUnlock re-enables next and previous navigation.
	SelectUnlock
	// SelectNone clears focus.
	SelectNone
)

func (op SelectOp) String() string {
	switch op {
	case SelectNext:
		return "next"
	case SelectPrev:
		return "prev"
	case SelectKey:
		return "key"
	case SelectConfirm:
		return "confirm"
	case SelectLock:
		return "lock"
	case SelectUnlock:
		return "unlock"
	case SelectNone:
		return "none"
	default:
		return "unknown"
	}
}

// Select is the focus navigation environment event. Key and Force only apply
// to SelectKey; with Force the key is focused even if it is not selectable.
// Leave and Enter are emitted only when focus actually moves, so selecting
// the key that already has focus produces no events.
type Select struct {
	Op    SelectOp
	Key   Key
	Force bool
}

// EnvKind implements events.Env.
func (Select) EnvKind() events.EnvKind { return events.EnvSelect }

// Candidates are those collected by the last Update, so navigation sees the
// tree as it was last laid out.
func (g *Gui) selectFocus(e Select) {
	switch e.Op {
	case SelectNext:
		g.focusChanged(g.selection.Next())
	case SelectPrev:
		g.focusChanged(g.selection.Prev())
	case SelectKey:
		g.focusChanged(g.selection.Select(e.Key, e.Force))
	case SelectNone:
		g.focusChanged(g.selection.Clear())
	case SelectConfirm:
		if k, ok := g.selection.Current(); ok {
			g.emitSelection(k, events.SelectConfirm)
		}
	case SelectLock:
		g.selection.Lock()
	case SelectUnlock:
		g.selection.Unlock()
	}
}

func (g *Gui) focusChanged(ch focus.Change[Key]) {
	if !ch.Changed() {
		return
	}
	if ch.HasPrevious {
		g.emitSelection(ch.Previous, events.SelectLeave)
	}
	if ch.HasCurrent {
		g.emitSelection(ch.Current, events.SelectEnter)
	}
}

// emitSelection queues a selection event for key whether or not it listens.
// The message of its first select listener, if any, is attached.
func (g *Gui) emitSelection(key Key, state events.SelectionState) {
	var msg any
	if el, ok := g.Element(key); ok {
		for _, l := range el.listeners {
			if l.Type == events.ListenSelect {
				msg = l.Message
				break
			}
		}
	}
	g.emit(key, events.Selection{State: state}, msg)
}
