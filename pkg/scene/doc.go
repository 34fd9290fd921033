// Package scene is a retained-mode scene graph.
//
// A [Gui] owns every element in a flat arena addressed by [Key]. Elements
// hold their children as keys, never as pointers, and there is no parent
// link: parent identity is known only while traversing.
//
// Each frame the caller runs [Gui.Update], which walks the visible tree once
// and recomputes, in a fixed order, the size, position, rotation, derived
// visuals, and scroll offset of every element whose inputs changed. Style
// cells carry their own dirty flags (see [style.Component]); a stage runs
// when one of its own cells is dirty or when the parent's transform changed
// in the same pass.
//
// Platform input enters through [Gui.Dispatch]. The router hit-tests
// elements children first, topmost child first, and appends element events
// to a queue drained with [Gui.Poll].
//
// A Gui is not safe for concurrent use; at most one Update or Dispatch may
// run at a time.
package scene
