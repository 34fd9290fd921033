package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/scene/pkg/errors"
	"github.com/go-drift/scene/pkg/events"
	"github.com/go-drift/scene/pkg/loader"
	"github.com/go-drift/scene/pkg/scene"
	"github.com/go-drift/scene/pkg/scenetest"
)

// routed is one element event as printed by simulate.
type routed struct {
	Step    int    `json:"step"`
	Action  string `json:"action"`
	Key     string `json:"key"`
	Label   string `json:"label,omitempty"`
	Event   string `json:"event"`
	Detail  string `json:"detail"`
	Message any    `json:"message,omitempty"`
}

// simulateCommand creates the simulate command.
func (c *CLI) simulateCommand() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "simulate [scene.yaml|scene.toml]",
		Short: "Replay a document's script and print the routed events",
		Long: `Replay a document's script and print the routed events.

Each script step is turned into environment events and dispatched. Steps
with action advance move the clock, update runs a layout pass and resize
changes the viewport. Events are printed in the order they were routed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.Guard("scenectl.simulate", func() error {
				return c.runSimulate(args[0], flags)
			})
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "print JSON")

	return cmd
}

func (c *CLI) runSimulate(path string, flags viewFlags) error {
	tester, sc, err := c.open(path, flags)
	if err != nil {
		return err
	}
	out, err := replay(tester, sc, c.Logger.Warn)
	if err != nil {
		return err
	}

	if c.wantJSON(flags) {
		enc := json.NewEncoder(c.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, r := range out {
		line := fmt.Sprintf("%s %s %s %s %s",
			styleDim.Render(fmt.Sprintf("%3d %-7s", r.Step, r.Action)),
			styleKey.Render(r.Key),
			styleLabel.Render(r.Label),
			styleEvent.Render(r.Event),
			r.Detail,
		)
		if r.Message != nil {
			line += " " + styleDim.Render(fmt.Sprintf("msg=%v", r.Message))
		}
		fmt.Fprintln(c.Out, line)
	}
	if len(out) == 0 {
		fmt.Fprintln(c.Out, styleError.Render("no events routed"))
	}
	return nil
}

// replay runs the script against tester and collects the routed events.
// Layout errors are passed to warn and do not stop the replay.
func replay(tester *scenetest.Tester, sc *loader.Scene, warn func(msg any, kv ...any)) ([]routed, error) {
	g := tester.Gui()
	var out []routed

	for i, step := range sc.Script {
		if step.Control() {
			if err := control(tester, step, i, warn); err != nil {
				return out, err
			}
		} else {
			envs, err := step.Envs(sc)
			if err != nil {
				return out, fmt.Errorf("step %d: %w", i, err)
			}
			for _, env := range envs {
				g.Dispatch(env)
			}
		}

		for _, ev := range g.Drain() {
			out = append(out, describe(g, i, step.Action, ev))
		}
	}
	return out, nil
}

// control applies a frame loop step.
func control(tester *scenetest.Tester, step loader.Step, i int, warn func(msg any, kv ...any)) error {
	switch step.Action {
	case "advance":
		tester.Clock().Advance(time.Duration(step.Ms) * time.Millisecond)
	case "update":
		if err := tester.Pump(); err != nil {
			warn("layout pass reported errors", "step", i, "err", err)
		}
	case "resize":
		if err := tester.Gui().Resize(step.Width, step.Height); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func describe(g *scene.Gui, step int, action string, ev scene.Event) routed {
	r := routed{
		Step:    step,
		Action:  action,
		Key:     ev.Key.String(),
		Event:   eventName(ev.Payload),
		Detail:  fmt.Sprintf("%+v", ev.Payload),
		Message: ev.Message,
	}
	if el, ok := g.Element(ev.Key); ok {
		r.Label = el.Label
	}
	return r
}

func eventName(p events.Payload) string {
	switch p := p.(type) {
	case events.CursorEnter:
		return "enter"
	case events.CursorLeave:
		return "leave"
	case events.Selection:
		return "select:" + p.State.String()
	default:
		return p.Listener().String()
	}
}
