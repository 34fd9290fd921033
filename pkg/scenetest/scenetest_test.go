package scenetest

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/scene/pkg/events"
	"github.com/go-drift/scene/pkg/expr"
	"github.com/go-drift/scene/pkg/scene"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	if elapsed := clk.Now().Sub(start); elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestNewTester_InvalidViewport(t *testing.T) {
	if _, err := NewTester(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestPumpFor_DrivesTime(t *testing.T) {
	tester := NewTesterWithT(t, 100, 100)
	g := tester.Gui()
	g.Style(g.Root()).SetAlpha(expr.Mul{L: expr.Time{}, R: expr.Px(2)})

	if err := tester.PumpFor(250 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if got := g.MustElement(g.Root()).Visual().Alpha; got != 0.5 {
		t.Errorf("expected alpha 0.5, got %v", got)
	}
}

func TestTap_Key(t *testing.T) {
	tester := NewTesterWithT(t, 0, 0)
	g := tester.Gui()
	button, _ := g.AddChild(g.Root(), "button")
	g.Style(button).SetSize(expr.Px(100), expr.Px(40))
	g.Listen(button, events.ListenClick, events.Listen, "ok")
	tester.Pump()

	if err := tester.Tap(button); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	evs := tester.Events()
	if len(evs) != 2 || evs[0].Message != "ok" {
		t.Errorf("expected press and release with message, got %+v", evs)
	}
}

func TestTap_UnknownAndHidden(t *testing.T) {
	tester := NewTesterWithT(t, 0, 0)
	g := tester.Gui()
	if err := tester.Tap(scene.Key(9)); err == nil {
		t.Error("expected error for unknown key")
	}
	a, _ := g.AddChild(g.Root(), "a")
	g.SetHidden(a, true)
	if err := tester.Hover(a); err == nil {
		t.Error("expected error for hidden element")
	}
}

func TestMoveThrough_EntersOnce(t *testing.T) {
	tester := NewTesterWithT(t, 0, 0)
	g := tester.Gui()
	a, _ := g.AddChild(g.Root(), "a")
	g.Style(a).SetSize(expr.Px(100), expr.Px(100))
	g.Listen(a, events.ListenHover, events.Listen, nil)
	tester.Pump()

	tester.MoveThrough(tester.Gui().Cursor(), g.MustElement(a).Container().Position, 8)
	enters := 0
	for _, ev := range tester.Events() {
		if _, ok := ev.Payload.(events.CursorEnter); ok {
			enters++
		}
	}
	if enters != 1 {
		t.Errorf("expected exactly one enter, got %d", enters)
	}
}

func TestSnapshot_Diff(t *testing.T) {
	tester := NewTesterWithT(t, 0, 0)
	g := tester.Gui()
	a, _ := g.AddChild(g.Root(), "a")
	tester.Pump()

	first := tester.CaptureSnapshot()
	if diff := first.Diff(tester.CaptureSnapshot()); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
	if len(first.Nodes) != 2 || first.Nodes[1].Label != "a" || first.Nodes[1].Depth != 1 {
		t.Fatalf("unexpected nodes %+v", first.Nodes)
	}

	g.Style(a).Width.Set(expr.Px(10))
	tester.Pump()
	if diff := first.Diff(tester.CaptureSnapshot()); diff == "" {
		t.Error("expected diff after a width change")
	}
}

type fakeT struct {
	fatals []string
	errs   []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errs = append(f.errs, fmt.Sprintf(format, args...))
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	tester := NewTesterWithT(t, 200, 100)
	tester.Pump()
	snap := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "nested", "root.snapshot.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	ft := &fakeT{}
	snap.MatchesFile(ft, path)
	if len(ft.fatals)+len(ft.errs) != 0 {
		t.Errorf("expected match, got %v %v", ft.fatals, ft.errs)
	}

	tester.Gui().Resize(300, 100)
	tester.Pump()
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if len(ft.errs) != 1 {
		t.Errorf("expected one mismatch, got %v", ft.errs)
	}
}

func TestSnapshot_MissingFile(t *testing.T) {
	tester := NewTesterWithT(t, 0, 0)
	tester.Pump()
	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, filepath.Join(t.TempDir(), "missing.json"))
	if len(ft.fatals) != 1 {
		t.Errorf("expected missing file to be fatal, got %v", ft.fatals)
	}
}
