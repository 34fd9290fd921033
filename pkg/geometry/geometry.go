// Package geometry provides the float32 vector, rectangle, and container
// transform primitives shared by layout, hit testing, and rendering.
package geometry

import "github.com/chewxy/math32"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// DegToRad is the number of radians per degree.
const DegToRad = math32.Pi / 180

// Vector represents a 2D point or displacement in viewport pixels.
type Vector struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Vec constructs a Vector.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s on both axes.
func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Half returns v scaled by one half.
func (v Vector) Half() Vector {
	return v.Scale(0.5)
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Length returns the euclidean length of v.
func (v Vector) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Rotate returns v rotated by angle radians about the origin. Positive
// angles turn +X towards +Y, which is clockwise on screen.
func (v Vector) Rotate(angle float32) Vector {
	if angle == 0 {
		return v
	}
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Vector{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// RotateAround returns v rotated by angle radians about center.
func (v Vector) RotateAround(center Vector, angle float32) Vector {
	return v.Sub(center).Rotate(angle).Add(center)
}

// ApproxEqual reports whether v and o differ by less than a small tolerance on each axis.
func (v Vector) ApproxEqual(o Vector) bool {
	return math32.Abs(v.X-o.X) <= epsilon && math32.Abs(v.Y-o.Y) <= epsilon
}

// Rect is an axis-aligned rectangle described by its minimum and maximum corners.
type Rect struct {
	Min Vector `json:"min"`
	Max Vector `json:"max"`
}

// RectFromCenter constructs a Rect from its center and full size.
func RectFromCenter(center, size Vector) Rect {
	half := size.Half()
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector {
	return Vector{X: (r.Min.X + r.Max.X) * 0.5, Y: (r.Min.Y + r.Max.Y) * 0.5}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Container is the resolved transform of an element: its absolute center,
// full size, and rotation in radians accumulated from its ancestors.
type Container struct {
	Position Vector  `json:"position"`
	Size     Vector  `json:"size"`
	Rotation float32 `json:"rotation"`
}

// Viewport returns the container covering a width by height viewport whose
// top-left corner is the origin.
func Viewport(width, height float32) Container {
	return Container{
		Position: Vector{X: width / 2, Y: height / 2},
		Size:     Vector{X: width, Y: height},
	}
}

// TopLeft returns the unrotated top-left corner of the container.
func (c Container) TopLeft() Vector {
	return c.Position.Sub(c.Size.Half())
}

// Bounds returns the unrotated axis-aligned bounds of the container.
func (c Container) Bounds() Rect {
	return RectFromCenter(c.Position, c.Size)
}

// Width returns the container width.
func (c Container) Width() float32 { return c.Size.X }

// Height returns the container height.
func (c Container) Height() float32 { return c.Size.Y }

// Diagonal returns the length of the container diagonal.
func (c Container) Diagonal() float32 { return c.Size.Length() }

// Contains reports whether p hits the container. The point is rotated by the
// negative of the container rotation about its center and then tested against
// the unrotated half extents.
func (c Container) Contains(p Vector) bool {
	local := p.RotateAround(c.Position, -c.Rotation).Sub(c.Position)
	half := c.Size.Half()
	return math32.Abs(local.X) <= half.X && math32.Abs(local.Y) <= half.Y
}

// Corners returns the four rotated corners in the order top-left, top-right,
// bottom-right, bottom-left.
func (c Container) Corners() [4]Vector {
	half := c.Size.Half()
	local := [4]Vector{
		{X: -half.X, Y: -half.Y},
		{X: half.X, Y: -half.Y},
		{X: half.X, Y: half.Y},
		{X: -half.X, Y: half.Y},
	}
	var out [4]Vector
	for i, v := range local {
		out[i] = v.Rotate(c.Rotation).Add(c.Position)
	}
	return out
}
