// Package scenetest provides a harness for driving a scene in tests.
//
// # Quick Start
//
// Create a tester, build a tree, pump a pass and simulate input:
//
//	func TestButton(t *testing.T) {
//	    tester := scenetest.NewTesterWithT(t, 800, 600)
//	    gui := tester.Gui()
//	    button, _ := gui.AddChild(gui.Root(), "button")
//	    gui.Style(button).SetSize(expr.Px(100), expr.Px(40))
//	    gui.Listen(button, events.ListenClick, events.Listen, "ok")
//	    tester.Pump()
//
//	    tester.Tap(button)
//	    if got := tester.Events(); len(got) != 2 {
//	        t.Errorf("expected press and release, got %d", len(got))
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare the laid out tree:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/button.snapshot.json")
//
// Update snapshots with:
//
//	SCENE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Time
//
// Expressions that read time use the tester's fake clock:
//
//	tester.Clock().Advance(500 * time.Millisecond)
//	tester.Pump()
package scenetest
