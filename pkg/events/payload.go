package events

import "github.com/go-drift/scene/pkg/geometry"

// Payload is the semantic content of an element event.
type Payload interface {
	Listener() ListenerType
}

// Click is delivered for a button press or release over an element.
type Click struct {
	Button   MouseButton
	Pressed  bool
	Position geometry.Vector
}

func (Click) Listener() ListenerType { return ListenClick }

// Scroll is delivered for a scroll over an element.
type Scroll struct {
	Delta    geometry.Vector
	Position geometry.Vector
}

func (Scroll) Listener() ListenerType { return ListenScroll }

// CursorMove is delivered when the cursor moves while staying over an element.
type CursorMove struct {
	Current  geometry.Vector
	Previous geometry.Vector
}

func (CursorMove) Listener() ListenerType { return ListenMouseMove }

// CursorEnter is delivered when the cursor moves onto an element.
type CursorEnter struct {
	Position geometry.Vector
}

func (CursorEnter) Listener() ListenerType { return ListenHover }

// CursorLeave is delivered when the cursor moves off an element.
type CursorLeave struct {
	Position geometry.Vector
}

func (CursorLeave) Listener() ListenerType { return ListenHover }

// Dropped is delivered when a file is dropped on an element.
type Dropped struct {
	Path     string
	Position geometry.Vector
}

func (Dropped) Listener() ListenerType { return ListenDrop }

// Key is delivered to every element listening for keys.
type Key struct {
	Code    string
	Pressed bool
}

func (Key) Listener() ListenerType { return ListenKey }

// Text is delivered to every element listening for text input.
type Text struct {
	Text string
}

func (Text) Listener() ListenerType { return ListenText }

// SelectionState is the focus transition reported by a Selection event.
type SelectionState int

const (
	SelectEnter SelectionState = iota
	SelectLeave
	SelectConfirm
)

func (s SelectionState) String() string {
	switch s {
	case SelectEnter:
		return "enter"
	case SelectLeave:
		return "leave"
	default:
		return "confirm"
	}
}

// Selection reports that an element gained, lost, or confirmed focus.
type Selection struct {
	State SelectionState
}

func (Selection) Listener() ListenerType { return ListenSelect }
