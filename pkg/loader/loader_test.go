package loader

import (
	stderrors "errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/scene/pkg/errors"
	"github.com/go-drift/scene/pkg/events"
	"github.com/go-drift/scene/pkg/expr"
	"github.com/go-drift/scene/pkg/geometry"
	"github.com/go-drift/scene/pkg/scene"
	"github.com/go-drift/scene/pkg/scenetest"
	"github.com/go-drift/scene/pkg/style"
)

const yamlDoc = `
version: "1.2"
viewport: {width: 800, height: 600}
variables:
  - {name: half, kind: normal}
  - {name: gap, kind: constant, value: 10}
root:
  label: screen
  color: "#102030"
  procedures:
    - {set: half, value: viewport.width.half}
  children:
    - label: panel
      width: $half
      height: {of: parent, scalar: height, portion: percent, amount: 50}
      padding: $gap
      rotation: {deg: 90}
      overflow: clip
      rounding: {radius: 8}
      selectable: true
      listeners:
        - {on: click, kind: peek, message: panel}
      children:
        - label: badge
          width: {add: [20, {mul: [2, 5]}]}
          height: {sub: [40, 10]}
          position: {x: 0, y: 0}
          origin: {x: 0, y: 0}
          alpha: {neg: -0.5}
script:
  - {action: click, x: 400, y: 300}
  - {action: select, op: key, target: panel}
  - {action: advance, ms: 100}
`

const tomlDoc = `
version = "1.0.0"

[viewport]
width = 400
height = 200

[[variables]]
name = "w"

[root]
label = "screen"
procedures = [{set = "w", value = 120}]

[[root.children]]
label = "left"
width = "$w"
height = "parent.height.half"
color = "#ff0000"
listeners = [{on = "key"}]

[[root.children]]
label = "right"
width = {px = 50}
height = 50
hidden = true

[[script]]
action = "key"
code = "Enter"
`

func build(t *testing.T, src string, format Format) *Scene {
	t.Helper()
	doc, err := Parse([]byte(src), format)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sc, err := doc.New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sc.Gui.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	return sc
}

func mustLookup(t *testing.T, sc *Scene, label string) *scene.Element {
	t.Helper()
	k, ok := sc.Lookup(label)
	if !ok {
		t.Fatalf("label %q not found", label)
	}
	return sc.Gui.MustElement(k)
}

func TestParse_YAML(t *testing.T) {
	sc := build(t, yamlDoc, YAML)

	screen := mustLookup(t, sc, "screen")
	if screen.Visual().Color != style.RGB(0x10, 0x20, 0x30) {
		t.Errorf("unexpected root color %v", screen.Visual().Color)
	}

	panel := mustLookup(t, sc, "panel")
	c := panel.Container()
	if c.Size != geometry.Vec(380, 280) {
		t.Errorf("expected padded 380x280 panel, got %+v", c.Size)
	}
	if !panel.Visual().Clip || panel.Visual().Rounding.Radius != 8 || !panel.Selectable() {
		t.Errorf("unexpected panel visual %+v", panel.Visual())
	}
	if l := panel.Listeners(); len(l) != 1 || l[0].Kind != events.Peek || l[0].Message != "panel" {
		t.Errorf("unexpected listeners %+v", l)
	}

	badge := mustLookup(t, sc, "badge")
	if got := badge.Container().Size; got != geometry.Vec(30, 30) {
		t.Errorf("expected 30x30 badge, got %+v", got)
	}
	if got := badge.Visual().Alpha; got != 0.5 {
		t.Errorf("expected alpha 0.5, got %v", got)
	}

	if len(sc.Script) != 3 || sc.Script[2].Ms != 100 {
		t.Errorf("unexpected script %+v", sc.Script)
	}
}

func TestParse_TOML(t *testing.T) {
	sc := build(t, tomlDoc, TOML)

	left := mustLookup(t, sc, "left")
	if got := left.Container().Size; got != geometry.Vec(120, 100) {
		t.Errorf("expected 120x100, got %+v", got)
	}
	if left.Visual().Color != style.ColorRed {
		t.Errorf("expected red, got %v", left.Visual().Color)
	}
	if !mustLookup(t, sc, "right").Hidden() {
		t.Error("expected right to be hidden")
	}
	if len(sc.Script) != 1 || sc.Script[0].Code != "Enter" {
		t.Errorf("unexpected script %+v", sc.Script)
	}
}

func TestParse_Version(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"", true},
		{"1", true},
		{"v1.4.2", true},
		{"2.0", false},
		{"banana", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			src := "version: \"" + tt.version + "\"\nviewport: {width: 10, height: 10}\n"
			_, err := Parse([]byte(src), YAML)
			if (err == nil) != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, err)
			}
			if err != nil {
				var se *errors.SceneError
				if !stderrors.As(err, &se) || se.Kind != errors.KindDocument {
					t.Errorf("expected document SceneError, got %#v", err)
				}
			}
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	if _, err := Parse([]byte("viewport: {width: 1, height: 1}\nbogus: 1\n"), YAML); err == nil {
		t.Error("expected unknown top-level field to be rejected")
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		path string
	}{
		{"undeclared variable", "root: {width: $nope}", "root.width"},
		{"bad query", "root: {width: parent.depth}", "root.width"},
		{"bad reference", "root: {width: {of: sky}}", "root.width.of"},
		{"bad color", "root: {color: \"#12\"}", "root.color"},
		{"bad listener", "root: {listeners: [{on: wiggle}]}", "root.listeners[0].on"},
		{"bad kind", "root: {listeners: [{on: click, kind: grab}]}", "root.listeners[0].kind"},
		{"both angles", "root: {rotation: {deg: 1, rad: 1}}", "root.rotation"},
		{"constant without value", "variables: [{name: c, kind: constant}]", "variables[0].value"},
		{"duplicate variable", "variables: [{name: a}, {name: a}]", "variables[1].name"},
		{"missing image", "root: {image: missing.png}", "root.image"},
		{"bad child", "root: {children: [{height: {sub: [1]}}]}", "root.children[0].height.sub"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte("viewport: {width: 100, height: 100}\n"+tt.src), YAML)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			_, err = doc.New(t.TempDir())
			var de *errors.DocumentError
			if !stderrors.As(err, &de) {
				t.Fatalf("expected DocumentError, got %v", err)
			}
			if de.Path != tt.path {
				t.Errorf("expected path %q, got %q", tt.path, de.Path)
			}
		})
	}
}

func TestBuild_InvalidViewport(t *testing.T) {
	doc, err := Parse([]byte("viewport: {width: 0, height: 100}\n"), YAML)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.New(""); !stderrors.Is(err, scene.ErrInvalidViewport) {
		t.Errorf("expected ErrInvalidViewport, got %v", err)
	}
}

func TestBuild_ImageRelativeToBase(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "icon.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 24, 12))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	src := `
viewport: {width: 100, height: 100}
root:
  children:
    - label: icon
      image: icon.png
      tint: "#00ff00"
      width: image.width
      height: image.height
`
	doc, err := Parse([]byte(src), YAML)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := doc.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sc.Gui.Update()

	icon := mustLookup(t, sc, "icon")
	if got := icon.Container().Size; got != geometry.Vec(24, 12) {
		t.Errorf("expected 24x12, got %+v", got)
	}
	if img := icon.Visual().Image; img == nil || img.Tint != style.ColorGreen {
		t.Errorf("unexpected image visual %+v", img)
	}
}

func TestBuild_TimeMarksDynamic(t *testing.T) {
	doc, err := Parse([]byte("viewport: {width: 10, height: 10}\nroot: {width: {mul: [time, 10]}}\n"), YAML)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := doc.New("")
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Gui.Style(sc.Gui.Root()).Width.Dynamic() {
		t.Error("expected a time-driven width to be dynamic")
	}
}

func TestBuild_TimeDrivenVisualsAnimate(t *testing.T) {
	const src = `
viewport: {width: 100, height: 100}
root:
  rounding: {radius: {mul: [time, 10]}}
  linear:
    start: {x: {mul: [time, 10]}, y: 0}
    end: {x: 100, y: 100}
    from: "#000000"
    to: "#ffffff"
  radial:
    center: {x: 50, y: 50}
    radius: 20
    inner: "#000000"
    outer: "#ffffff"
`
	doc, err := Parse([]byte(src), YAML)
	if err != nil {
		t.Fatal(err)
	}
	clk := scenetest.NewFakeClock()
	sc, err := doc.New("", scene.WithClock(clk))
	if err != nil {
		t.Fatal(err)
	}

	s := sc.Gui.Style(sc.Gui.Root())
	if !s.Rounding.Dynamic() || !s.LinearGradient.Dynamic() {
		t.Error("expected time-driven rounding and gradient to be dynamic")
	}
	if s.RadialGradient.Dynamic() {
		t.Error("expected a constant radial gradient to stay static")
	}

	sc.Gui.Update()
	clk.Advance(time.Second)
	sc.Gui.Update()

	v := sc.Gui.MustElement(sc.Gui.Root()).Visual()
	if v.Rounding.Radius != 10 {
		t.Errorf("expected radius 10 after one second, got %v", v.Rounding.Radius)
	}
	if v.Linear == nil || v.Linear.Start.X != 10 {
		t.Errorf("expected gradient start x 10 after one second, got %+v", v.Linear)
	}
}

func TestValue_Forms(t *testing.T) {
	vars := expr.NewVariables()
	vars.Add("v", expr.Normal)
	p := parser{vars: vars}
	ctx := &expr.Context{
		Parent:   geometry.Viewport(200, 100),
		Viewport: geometry.Viewport(400, 300),
	}

	tests := []struct {
		name string
		src  any
		want float32
	}{
		{"int", 5, 5},
		{"float", 2.5, 2.5},
		{"px word", "12px", 12},
		{"zero", "zero", 0},
		{"query", "parent.width", 200},
		{"query half", "viewport.height.half", 150},
		{"px map", map[string]any{"px": 7}, 7},
		{"divisor", map[string]any{"of": "parent", "scalar": "width", "portion": "divisor", "amount": 4}, 50},
		{"multiplier", map[string]any{"of": "viewport", "scalar": "min", "portion": "multiplier", "amount": 2.0}, 600},
		{"set", map[string]any{"set": "v", "value": 9}, 9},
		{"var", "$v", 9},
		{"var map", map[string]any{"var": "v"}, 9},
		{"add", map[string]any{"add": []any{1, 2, 3}}, 6},
		{"mul toml", map[string]any{"mul": []any{int64(2), 4.0}}, 8},
		{"sub", map[string]any{"sub": []any{10, 4}}, 6},
		{"neg", map[string]any{"neg": 3}, -3},
		{"debug", map[string]any{"debug": "x", "value": 1}, 1},
	}
	vars.Prepare()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := p.value("v", tt.src)
			if err != nil {
				t.Fatalf("value: %v", err)
			}
			if got := val.Calc(ctx, vars); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
	if err := ctx.Err(); err != nil {
		t.Errorf("unexpected evaluation errors: %v", err)
	}
}

func TestStep_Envs(t *testing.T) {
	sc := build(t, yamlDoc, YAML)

	tests := []struct {
		step Step
		n    int
	}{
		{Step{Action: "move"}, 1},
		{Step{Action: "click", Button: "right"}, 3},
		{Step{Action: "scroll", DY: 1}, 2},
		{Step{Action: "key", Code: "A"}, 2},
		{Step{Action: "text", Text: "a"}, 1},
		{Step{Action: "hover", Path: "a"}, 1},
		{Step{Action: "cancel"}, 1},
		{Step{Action: "drop", Path: "a"}, 2},
		{Step{Action: "select", Op: "next"}, 1},
		{Step{Action: "select", Op: "key", Target: "panel"}, 1},
	}
	for _, tt := range tests {
		envs, err := tt.step.Envs(sc)
		if err != nil {
			t.Errorf("%s: %v", tt.step.Action, err)
			continue
		}
		if len(envs) != tt.n {
			t.Errorf("%s: expected %d events, got %d", tt.step.Action, tt.n, len(envs))
		}
	}

	bad := []Step{
		{Action: "dance"},
		{Action: "click", Button: "thumb"},
		{Action: "select", Op: "sideways"},
		{Action: "select", Op: "key", Target: "ghost"},
	}
	for _, s := range bad {
		if _, err := s.Envs(sc); err == nil {
			t.Errorf("expected error for %+v", s)
		}
	}
	if !(Step{Action: "advance"}).Control() || (Step{Action: "key"}).Control() {
		t.Error("unexpected Control classification")
	}
}

func TestFormatFor(t *testing.T) {
	if f, err := FormatFor("a/b.YML"); err != nil || f != YAML {
		t.Errorf("expected yaml, got %v %v", f, err)
	}
	if f, err := FormatFor("scene.toml"); err != nil || f != TOML {
		t.Errorf("expected toml, got %v %v", f, err)
	}
	if _, err := FormatFor("scene.json"); err == nil {
		t.Error("expected error for json")
	}
}
