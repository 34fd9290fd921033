package scenetest

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/go-drift/scene/pkg/scene"
)

const (
	// DefaultWidth is the default viewport width.
	DefaultWidth = 800
	// DefaultHeight is the default viewport height.
	DefaultHeight = 600
)

// Tester drives a Gui with a fake clock and synthetic input.
type Tester struct {
	gui   *scene.Gui
	clock *FakeClock
}

// NewTester creates a tester with a width by height viewport. Extra options
// are applied after the fake clock.
func NewTester(width, height float32, opts ...scene.Option) (*Tester, error) {
	clk := NewFakeClock()
	opts = append([]scene.Option{scene.WithClock(clk)}, opts...)
	gui, err := scene.New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	return &Tester{gui: gui, clock: clk}, nil
}

// NewTesterWithT creates a tester and fails the test on error. Pass zero for
// either side to use the defaults. Pass-level logging goes to the test log.
func NewTesterWithT(t testing.TB, width, height float32) *Tester {
	t.Helper()
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	logger := log.NewWithOptions(testWriter{t}, log.Options{Level: log.WarnLevel})
	tester, err := NewTester(width, height, scene.WithLogger(logger))
	if err != nil {
		t.Fatalf("scenetest: %v", err)
	}
	return tester
}

// Gui returns the scene under test.
func (t *Tester) Gui() *scene.Gui {
	return t.gui
}

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Pump runs one update pass.
func (t *Tester) Pump() error {
	return t.gui.Update()
}

// PumpFor advances the clock by d and runs one update pass.
func (t *Tester) PumpFor(d time.Duration) error {
	t.clock.Advance(d)
	return t.gui.Update()
}

// Events drains the event queue, oldest first.
func (t *Tester) Events() []scene.Event {
	return t.gui.Drain()
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
