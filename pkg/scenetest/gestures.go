package scenetest

import (
	"fmt"

	"github.com/go-drift/scene/pkg/events"
	"github.com/go-drift/scene/pkg/geometry"
	"github.com/go-drift/scene/pkg/scene"
)

// Tap moves the cursor to the center of key and clicks the left button.
func (t *Tester) Tap(key scene.Key) error {
	center, err := t.center("Tap", key)
	if err != nil {
		return err
	}
	t.TapAt(center)
	return nil
}

// TapAt moves the cursor to pos and presses and releases the left button.
func (t *Tester) TapAt(pos geometry.Vector) {
	t.MoveTo(pos)
	t.gui.Dispatch(events.ButtonPressed{Button: events.ButtonLeft, Pressed: true})
	t.gui.Dispatch(events.ButtonPressed{Button: events.ButtonLeft, Pressed: false})
}

// Hover moves the cursor to the center of key.
func (t *Tester) Hover(key scene.Key) error {
	center, err := t.center("Hover", key)
	if err != nil {
		return err
	}
	t.MoveTo(center)
	return nil
}

// MoveTo moves the cursor to pos.
func (t *Tester) MoveTo(pos geometry.Vector) {
	t.gui.Dispatch(events.CursorMoved{Position: pos})
}

// MoveThrough moves the cursor from start to end in steps equal moves.
func (t *Tester) MoveThrough(start, end geometry.Vector, steps int) {
	if steps < 1 {
		steps = 1
	}
	delta := end.Sub(start).Scale(1 / float32(steps))
	for i := 0; i <= steps; i++ {
		t.MoveTo(start.Add(delta.Scale(float32(i))))
	}
}

// ScrollAt moves the cursor to pos and scrolls by delta.
func (t *Tester) ScrollAt(pos, delta geometry.Vector) {
	t.MoveTo(pos)
	t.gui.Dispatch(events.Scrolled{Delta: delta})
}

// DropFile hovers a file over the window, moves to pos and drops it.
func (t *Tester) DropFile(pos geometry.Vector, path string) {
	t.gui.Dispatch(events.FileDrop{Path: path, Phase: events.DropHover})
	t.MoveTo(pos)
	t.gui.Dispatch(events.FileDrop{Path: path, Phase: events.DropDrop})
}

// PressKey presses and releases the key with the given code.
func (t *Tester) PressKey(code string) {
	t.gui.Dispatch(events.KeyPressed{Code: code, Pressed: true})
	t.gui.Dispatch(events.KeyPressed{Code: code, Pressed: false})
}

// Type sends text as a single text input event.
func (t *Tester) Type(text string) {
	t.gui.Dispatch(events.TextInput{Text: text})
}

// Select sends a focus navigation command.
func (t *Tester) Select(op scene.SelectOp) {
	t.gui.Dispatch(scene.Select{Op: op})
}

// Focus focuses key, forcing it when it is not selectable.
func (t *Tester) Focus(key scene.Key, force bool) {
	t.gui.Dispatch(scene.Select{Op: scene.SelectKey, Key: key, Force: force})
}

func (t *Tester) center(op string, key scene.Key) (geometry.Vector, error) {
	el, ok := t.gui.Element(key)
	if !ok {
		return geometry.Vector{}, fmt.Errorf("%s: unknown element %s", op, key)
	}
	if el.Hidden() {
		return geometry.Vector{}, fmt.Errorf("%s: element %s is hidden", op, key)
	}
	return el.Container().Position, nil
}
