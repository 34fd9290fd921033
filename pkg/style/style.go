// Package style defines the dirty-tracked attribute set owned by every
// element.
package style

import (
	"github.com/go-drift/scene/pkg/expr"
	"github.com/go-drift/scene/pkg/images"
)

// Overflow controls whether children are clipped to the element bounds.
type Overflow int

const (
	// OverflowVisible lets children draw outside the element.
	OverflowVisible Overflow = iota
	// OverflowClip confines children to the element shape.
	OverflowClip
)

func (o Overflow) String() string {
	if o == OverflowClip {
		return "clip"
	}
	return "visible"
}

// Rounding describes rounded corners. A nil Radius means square corners.
type Rounding struct {
	Radius    expr.Value
	AntiAlias expr.Value
}

// LinearGradient blends two colors between two points. The points are
// evaluated in the element's rotated frame so the gradient turns with it.
type LinearGradient struct {
	Start      expr.Position
	End        expr.Position
	StartColor Color
	EndColor   Color
}

// RadialGradient blends from Inner at Center to Outer at Radius.
type RadialGradient struct {
	Center expr.Position
	Radius expr.Value
	Inner  Color
	Outer  Color
}

// Dynamic reports whether the radius or anti-alias width reads the clock.
func (r Rounding) Dynamic() bool {
	return expr.Dynamic(r.Radius) || expr.Dynamic(r.AntiAlias)
}

// Dynamic reports whether either endpoint reads the clock.
func (g *LinearGradient) Dynamic() bool {
	return g != nil && (g.Start.Dynamic() || g.End.Dynamic())
}

// Dynamic reports whether the center or radius reads the clock.
func (g *RadialGradient) Dynamic() bool {
	return g != nil && (g.Center.Dynamic() || expr.Dynamic(g.Radius))
}

// Style is the fixed collection of attributes of one element.
//
// Size, padding, position, origin and rotation make up the transform.
// Rounding and the gradients depend on the transform. Color, alpha, overflow
// and image tint are independent of it.
type Style struct {
	Width     Component[expr.Value]
	Height    Component[expr.Value]
	MinWidth  Component[expr.Value]
	MaxWidth  Component[expr.Value]
	MinHeight Component[expr.Value]
	MaxHeight Component[expr.Value]
	Padding   Component[expr.Value]

	Position Component[expr.Position]
	Origin   Component[expr.Position]
	Rotation Component[expr.Rotation]

	Rounding       Component[Rounding]
	LinearGradient Component[*LinearGradient]
	RadialGradient Component[*RadialGradient]

	Color     Component[Color]
	Alpha     Component[expr.Value]
	Overflow  Component[Overflow]
	Image     Component[images.Source]
	ImageTint Component[Color]

	ScrollX Component[expr.Value]
	ScrollY Component[expr.Value]
}

// Default returns a style that fills and centers on its parent, with every
// cell dirty.
func Default() Style {
	return Style{
		Width:     NewComponent[expr.Value](expr.Of(expr.Parent, expr.Width, expr.Full())),
		Height:    NewComponent[expr.Value](expr.Of(expr.Parent, expr.Height, expr.Full())),
		MinWidth:  NewComponent[expr.Value](nil),
		MaxWidth:  NewComponent[expr.Value](nil),
		MinHeight: NewComponent[expr.Value](nil),
		MaxHeight: NewComponent[expr.Value](nil),
		Padding:   NewComponent[expr.Value](nil),

		Position: NewComponent(expr.Center(expr.Parent)),
		Origin:   NewComponent(expr.Center(expr.Self)),
		Rotation: NewComponent(expr.Rotation{}),

		Rounding:       NewComponent(Rounding{}),
		LinearGradient: NewComponent[*LinearGradient](nil),
		RadialGradient: NewComponent[*RadialGradient](nil),

		Color:     NewComponent(ColorTransparent),
		Alpha:     NewComponent[expr.Value](expr.Px(1)),
		Overflow:  NewComponent(OverflowVisible),
		Image:     NewComponent[images.Source](nil),
		ImageTint: NewComponent(ColorWhite),

		ScrollX: NewComponent[expr.Value](nil),
		ScrollY: NewComponent[expr.Value](nil),
	}
}

type marker interface {
	MarkDirty()
	Dirty() bool
}

func (s *Style) cells() []marker {
	return []marker{
		&s.Width, &s.Height, &s.MinWidth, &s.MaxWidth, &s.MinHeight, &s.MaxHeight, &s.Padding,
		&s.Position, &s.Origin, &s.Rotation,
		&s.Rounding, &s.LinearGradient, &s.RadialGradient,
		&s.Color, &s.Alpha, &s.Overflow, &s.Image, &s.ImageTint,
		&s.ScrollX, &s.ScrollY,
	}
}

// MarkAllDirty flags every cell, forcing a full recomputation.
func (s *Style) MarkAllDirty() {
	for _, c := range s.cells() {
		c.MarkDirty()
	}
}

// AnyDirty reports whether any cell is dirty.
func (s *Style) AnyDirty() bool {
	for _, c := range s.cells() {
		if c.Dirty() {
			return true
		}
	}
	return false
}

// SetSize sets both width and height.
func (s *Style) SetSize(w, h expr.Value) {
	s.Width.Set(w)
	s.Height.Set(h)
}

// SetPosition places the element's origin at p. The origin defaults to the
// element center.
func (s *Style) SetPosition(p expr.Position) {
	s.Position.Set(p)
}

// SetRotation sets the rotation and marks it dynamic when it reads the clock.
func (s *Style) SetRotation(r expr.Rotation) {
	s.Rotation.Set(r)
	s.Rotation.SetDynamic(r.Dynamic())
}

// SetAlpha sets the alpha expression and marks it dynamic when it reads the
// clock.
func (s *Style) SetAlpha(v expr.Value) {
	s.Alpha.Set(v)
	s.Alpha.SetDynamic(v != nil && expr.Dynamic(v))
}

// SetRounding sets the corner rounding and marks it dynamic when it reads
// the clock.
func (s *Style) SetRounding(r Rounding) {
	s.Rounding.Set(r)
	s.Rounding.SetDynamic(r.Dynamic())
}

// SetLinearGradient sets the linear gradient, nil removing it, and marks it
// dynamic when an endpoint reads the clock.
func (s *Style) SetLinearGradient(g *LinearGradient) {
	s.LinearGradient.Set(g)
	s.LinearGradient.SetDynamic(g.Dynamic())
}

// SetRadialGradient sets the radial gradient, nil removing it, and marks it
// dynamic when it reads the clock.
func (s *Style) SetRadialGradient(g *RadialGradient) {
	s.RadialGradient.Set(g)
	s.RadialGradient.SetDynamic(g.Dynamic())
}
