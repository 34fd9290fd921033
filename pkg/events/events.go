// Package events defines the platform event vocabulary consumed by the scene
// graph and the payloads of the element events it produces.
package events

import (
	"fmt"

	"github.com/go-drift/scene/pkg/geometry"
)

// EnvKind identifies an environment event.
type EnvKind int

const (
	EnvCursorMoved EnvKind = iota
	EnvMouseButton
	EnvScroll
	EnvKey
	EnvText
	EnvFileDrop
	EnvSelect
)

func (k EnvKind) String() string {
	switch k {
	case EnvCursorMoved:
		return "cursor"
	case EnvMouseButton:
		return "button"
	case EnvScroll:
		return "scroll"
	case EnvKey:
		return "key"
	case EnvText:
		return "text"
	case EnvFileDrop:
		return "drop"
	case EnvSelect:
		return "select"
	default:
		return fmt.Sprintf("EnvKind(%d)", int(k))
	}
}

// Env is a raw, global event from the platform layer.
type Env interface {
	EnvKind() EnvKind
}

// CursorMoved reports the cursor position in viewport pixels.
type CursorMoved struct {
	Position geometry.Vector
}

func (CursorMoved) EnvKind() EnvKind { return EnvCursorMoved }

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "other"
	}
}

// ButtonPressed reports a mouse button press or release at the current cursor.
type ButtonPressed struct {
	Button  MouseButton
	Pressed bool
}

func (ButtonPressed) EnvKind() EnvKind { return EnvMouseButton }

// Scrolled reports a scroll delta at the current cursor.
type Scrolled struct {
	Delta geometry.Vector
}

func (Scrolled) EnvKind() EnvKind { return EnvScroll }

// KeyPressed reports a key press or release. Code is the platform key name.
type KeyPressed struct {
	Code    string
	Pressed bool
}

func (KeyPressed) EnvKind() EnvKind { return EnvKey }

// TextInput carries inserted text.
type TextInput struct {
	Text string
}

func (TextInput) EnvKind() EnvKind { return EnvText }

// DropPhase is the stage of a file drag.
type DropPhase int

const (
	DropHover DropPhase = iota
	DropDrop
	DropCancel
)

func (p DropPhase) String() string {
	switch p {
	case DropHover:
		return "hover"
	case DropDrop:
		return "drop"
	default:
		return "cancel"
	}
}

// FileDrop reports a file drag stage. Path is required for hover and drop.
type FileDrop struct {
	Path  string
	Phase DropPhase
}

func (FileDrop) EnvKind() EnvKind { return EnvFileDrop }
