package loader

import (
	"fmt"

	"github.com/go-drift/scene/pkg/events"
	"github.com/go-drift/scene/pkg/geometry"
	"github.com/go-drift/scene/pkg/scene"
)

// Control reports whether the step drives the frame loop (advance, update,
// resize) rather than producing input.
func (s Step) Control() bool {
	switch s.Action {
	case "advance", "update", "resize":
		return true
	}
	return false
}

// Envs converts an input step into the environment events it stands for.
// Labels used by select steps are resolved through sc.
func (s Step) Envs(sc *Scene) ([]events.Env, error) {
	at := geometry.Vec(s.X, s.Y)
	switch s.Action {
	case "move":
		return []events.Env{events.CursorMoved{Position: at}}, nil
	case "press", "release":
		b, err := button(s.Button)
		if err != nil {
			return nil, err
		}
		return []events.Env{events.ButtonPressed{Button: b, Pressed: s.Action == "press"}}, nil
	case "click":
		b, err := button(s.Button)
		if err != nil {
			return nil, err
		}
		return []events.Env{
			events.CursorMoved{Position: at},
			events.ButtonPressed{Button: b, Pressed: true},
			events.ButtonPressed{Button: b, Pressed: false},
		}, nil
	case "scroll":
		return []events.Env{
			events.CursorMoved{Position: at},
			events.Scrolled{Delta: geometry.Vec(s.DX, s.DY)},
		}, nil
	case "key":
		return []events.Env{
			events.KeyPressed{Code: s.Code, Pressed: true},
			events.KeyPressed{Code: s.Code, Pressed: false},
		}, nil
	case "text":
		return []events.Env{events.TextInput{Text: s.Text}}, nil
	case "hover":
		return []events.Env{events.FileDrop{Path: s.Path, Phase: events.DropHover}}, nil
	case "cancel":
		return []events.Env{events.FileDrop{Phase: events.DropCancel}}, nil
	case "drop":
		return []events.Env{
			events.CursorMoved{Position: at},
			events.FileDrop{Path: s.Path, Phase: events.DropDrop},
		}, nil
	case "select":
		sel, err := s.selection(sc)
		if err != nil {
			return nil, err
		}
		return []events.Env{sel}, nil
	}
	return nil, fmt.Errorf("unknown script action %q", s.Action)
}

func (s Step) selection(sc *Scene) (scene.Select, error) {
	ops := map[string]scene.SelectOp{
		"next":    scene.SelectNext,
		"prev":    scene.SelectPrev,
		"key":     scene.SelectKey,
		"confirm": scene.SelectConfirm,
		"lock":    scene.SelectLock,
		"unlock":  scene.SelectUnlock,
		"none":    scene.SelectNone,
	}
	op, ok := ops[s.Op]
	if !ok {
		return scene.Select{}, fmt.Errorf("unknown select op %q", s.Op)
	}
	sel := scene.Select{Op: op, Force: s.Force}
	if op == scene.SelectKey {
		k, ok := sc.Lookup(s.Target)
		if !ok {
			return scene.Select{}, fmt.Errorf("select target %q not found", s.Target)
		}
		sel.Key = k
	}
	return sel, nil
}

func button(name string) (events.MouseButton, error) {
	switch name {
	case "", "left":
		return events.ButtonLeft, nil
	case "right":
		return events.ButtonRight, nil
	case "middle":
		return events.ButtonMiddle, nil
	case "other":
		return events.ButtonOther, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}
