package expr

import (
	"fmt"

	"github.com/go-drift/scene/pkg/geometry"
)

// Position places a point inside a reference container. X and Y are measured
// from the container's top-left corner.
type Position struct {
	Of Reference
	X  Value
	Y  Value
}

// At builds a Position.
func At(of Reference, x, y Value) Position {
	return Position{Of: of, X: x, Y: y}
}

// Center returns the position of the center of the reference container.
func Center(of Reference) Position {
	return Position{
		Of: of,
		X:  Of(of, Width, Half()),
		Y:  Of(of, Height, Half()),
	}
}

func (p Position) eval(ctx *Context, vars *Variables) geometry.Vector {
	return geometry.Vector{X: calcOrZero(p.X, ctx, vars), Y: calcOrZero(p.Y, ctx, vars)}
}

// Calc returns the absolute point. The reference rotation is ignored.
func (p Position) Calc(ctx *Context, vars *Variables) geometry.Vector {
	ref := ctx.Container(p.Of)
	return ref.TopLeft().Add(p.eval(ctx, vars))
}

// CalcRelative returns the offset of the point from the reference center.
func (p Position) CalcRelative(ctx *Context, vars *Variables) geometry.Vector {
	ref := ctx.Container(p.Of)
	return p.eval(ctx, vars).Sub(ref.Size.Half())
}

// CalcRot returns the absolute point after rotating its offset from the
// reference center by the reference rotation.
func (p Position) CalcRot(ctx *Context, vars *Variables) geometry.Vector {
	ref := ctx.Container(p.Of)
	return p.CalcRelative(ctx, vars).Rotate(ref.Rotation).Add(ref.Position)
}

// Dynamic reports whether either axis reads the clock.
func (p Position) Dynamic() bool {
	return (p.X != nil && Dynamic(p.X)) || (p.Y != nil && Dynamic(p.Y))
}

func (p Position) String() string {
	return fmt.Sprintf("%s(%v, %v)", p.Of, p.X, p.Y)
}

// AngleUnit selects how a Rotation value is interpreted.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

// Rotation is an angle expression.
type Rotation struct {
	Value Value
	Unit  AngleUnit
}

// Deg builds a rotation of v degrees.
func Deg(v Value) Rotation { return Rotation{Value: v, Unit: Degrees} }

// Rad builds a rotation of v radians.
func Rad(v Value) Rotation { return Rotation{Value: v, Unit: Radians} }

// Calc returns the angle in radians. A nil value is no rotation.
func (r Rotation) Calc(ctx *Context, vars *Variables) float32 {
	a := calcOrZero(r.Value, ctx, vars)
	if r.Unit == Degrees {
		return a * geometry.DegToRad
	}
	return a
}

// Dynamic reports whether the angle reads the clock.
func (r Rotation) Dynamic() bool {
	return r.Value != nil && Dynamic(r.Value)
}

func (r Rotation) String() string {
	if r.Unit == Degrees {
		return fmt.Sprintf("%vdeg", r.Value)
	}
	return fmt.Sprintf("%vrad", r.Value)
}

func calcOrZero(v Value, ctx *Context, vars *Variables) float32 {
	if v == nil {
		return 0
	}
	return v.Calc(ctx, vars)
}
