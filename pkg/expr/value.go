package expr

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"

	"github.com/go-drift/scene/pkg/geometry"
)

// Value is a node of a style expression.
type Value interface {
	// Calc evaluates the expression. Configuration errors are recorded on
	// ctx and the failing node evaluates to zero.
	Calc(ctx *Context, vars *Variables) float32
	String() string
}

// Reference selects the container a query measures.
type Reference int

const (
	Parent Reference = iota
	Viewport
	Self
	Image
)

func (r Reference) String() string {
	switch r {
	case Viewport:
		return "viewport"
	case Self:
		return "self"
	case Image:
		return "image"
	default:
		return "parent"
	}
}

// Scalar selects which measurement of the reference container a query reads.
type Scalar int

const (
	Width Scalar = iota
	Height
	Diagonal
	Max
	Min
	Avg
)

func (s Scalar) String() string {
	switch s {
	case Height:
		return "height"
	case Diagonal:
		return "diagonal"
	case Max:
		return "max"
	case Min:
		return "min"
	case Avg:
		return "avg"
	default:
		return "width"
	}
}

func (s Scalar) measure(c geometry.Container) float32 {
	w, h := c.Size.X, c.Size.Y
	switch s {
	case Height:
		return h
	case Diagonal:
		return c.Diagonal()
	case Max:
		return math32.Max(w, h)
	case Min:
		return math32.Min(w, h)
	case Avg:
		return (w + h) / 2
	default:
		return w
	}
}

// PortionKind selects how a Portion scales a measurement.
type PortionKind int

const (
	PortionFull PortionKind = iota
	PortionHalf
	PortionZero
	PortionPercent
	PortionMultiplier
	PortionDivisor
)

// Portion scales a measurement.
type Portion struct {
	Kind   PortionKind
	Amount float32
}

// Full keeps the whole measurement.
func Full() Portion { return Portion{Kind: PortionFull} }

// Half takes half of the measurement.
func Half() Portion { return Portion{Kind: PortionHalf} }

// None discards the measurement.
func None() Portion { return Portion{Kind: PortionZero} }

// Percent takes p percent of the measurement.
func Percent(p float32) Portion { return Portion{Kind: PortionPercent, Amount: p} }

// Multiplier multiplies the measurement by m.
func Multiplier(m float32) Portion { return Portion{Kind: PortionMultiplier, Amount: m} }

// Divisor divides the measurement by d.
func Divisor(d float32) Portion { return Portion{Kind: PortionDivisor, Amount: d} }

// Apply scales v.
func (p Portion) Apply(v float32) float32 {
	switch p.Kind {
	case PortionHalf:
		return v / 2
	case PortionZero:
		return 0
	case PortionPercent:
		return v * p.Amount / 100
	case PortionMultiplier:
		return v * p.Amount
	case PortionDivisor:
		return v / p.Amount
	default:
		return v
	}
}

func (p Portion) String() string {
	switch p.Kind {
	case PortionHalf:
		return "half"
	case PortionZero:
		return "zero"
	case PortionPercent:
		return ftoa(p.Amount) + "%"
	case PortionMultiplier:
		return "*" + ftoa(p.Amount)
	case PortionDivisor:
		return "/" + ftoa(p.Amount)
	default:
		return "full"
	}
}

// Px is a constant in pixels.
type Px float32

func (v Px) Calc(*Context, *Variables) float32 { return float32(v) }
func (v Px) String() string                     { return ftoa(float32(v)) + "px" }

// Zero always evaluates to 0.
type Zero struct{}

func (Zero) Calc(*Context, *Variables) float32 { return 0 }
func (Zero) String() string                     { return "0" }

// Query measures a reference container.
type Query struct {
	Of      Reference
	Scalar  Scalar
	Portion Portion
}

// Of builds a Query.
func Of(ref Reference, scalar Scalar, portion Portion) Query {
	return Query{Of: ref, Scalar: scalar, Portion: portion}
}

func (q Query) Calc(ctx *Context, _ *Variables) float32 {
	return q.Portion.Apply(q.Scalar.measure(ctx.Container(q.Of)))
}

func (q Query) String() string {
	return fmt.Sprintf("%s.%s(%s)", q.Of, q.Scalar, q.Portion)
}

// Time evaluates to the elapsed time in seconds.
type Time struct{}

func (Time) Calc(ctx *Context, _ *Variables) float32 { return ctx.Time }
func (Time) String() string                         { return "time" }

// Var reads a variable slot.
type Var struct {
	Key VarKey
}

func (v Var) Calc(ctx *Context, vars *Variables) float32 {
	val, err := vars.Get(v.Key)
	if err != nil {
		ctx.Fail(err)
		return 0
	}
	return val
}

func (v Var) String() string { return "$" + strconv.Itoa(int(v.Key)) }

// SetVar evaluates Value, writes the result to a Normal slot and returns it.
// A failed write is recorded on the context; the computed value is still
// returned.
type SetVar struct {
	Key   VarKey
	Value Value
}

func (v SetVar) Calc(ctx *Context, vars *Variables) float32 {
	val := v.Value.Calc(ctx, vars)
	if err := vars.Set(v.Key, val); err != nil {
		ctx.Fail(err)
	}
	return val
}

func (v SetVar) String() string {
	return fmt.Sprintf("$%d = %s", v.Key, v.Value)
}

// Add sums two values.
type Add struct {
	L, R Value
}

func (v Add) Calc(ctx *Context, vars *Variables) float32 {
	return v.L.Calc(ctx, vars) + v.R.Calc(ctx, vars)
}

func (v Add) String() string { return fmt.Sprintf("(%s + %s)", v.L, v.R) }

// Mul multiplies two values.
type Mul struct {
	L, R Value
}

func (v Mul) Calc(ctx *Context, vars *Variables) float32 {
	return v.L.Calc(ctx, vars) * v.R.Calc(ctx, vars)
}

func (v Mul) String() string { return fmt.Sprintf("(%s * %s)", v.L, v.R) }

// Neg negates a value.
type Neg struct {
	Value Value
}

func (v Neg) Calc(ctx *Context, vars *Variables) float32 {
	return -v.Value.Calc(ctx, vars)
}

func (v Neg) String() string { return fmt.Sprintf("-%s", v.Value) }

// Debug logs the result of Value and passes it through.
type Debug struct {
	Label string
	Value Value
}

func (v Debug) Calc(ctx *Context, vars *Variables) float32 {
	val := v.Value.Calc(ctx, vars)
	ctx.logger().Debug("expr", "label", v.Label, "expr", v.Value.String(), "value", val)
	return val
}

func (v Debug) String() string { return fmt.Sprintf("debug(%q, %s)", v.Label, v.Value) }

// Sub returns l - r.
func Sub(l, r Value) Value { return Add{L: l, R: Neg{Value: r}} }

// Dynamic reports whether v reads the clock anywhere in its tree, meaning it
// must be recomputed every pass.
func Dynamic(v Value) bool {
	switch n := v.(type) {
	case Time:
		return true
	case SetVar:
		return Dynamic(n.Value)
	case Add:
		return Dynamic(n.L) || Dynamic(n.R)
	case Mul:
		return Dynamic(n.L) || Dynamic(n.R)
	case Neg:
		return Dynamic(n.Value)
	case Debug:
		return Dynamic(n.Value)
	default:
		return false
	}
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
