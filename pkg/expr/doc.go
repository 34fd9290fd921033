// Package expr implements the small declarative language that computes style
// scalars.
//
// A [Value] is an immutable tree evaluated against a [Context] (the parent,
// viewport, in-progress self, and image geometries plus elapsed time) and a
// [Variables] store. Evaluation is a pure tree walk except for [SetVar], whose
// write is visible to every later read within the same update pass.
//
// [Position] composes two values into a point placed relative to a reference
// container, and [Rotation] turns a value into radians.
package expr
