package expr

import (
	stderrors "errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/go-drift/scene/pkg/geometry"
)

func testContext() *Context {
	return &Context{
		Parent:   geometry.Container{Position: geometry.Vec(100, 50), Size: geometry.Vec(200, 100)},
		Viewport: geometry.Viewport(800, 600),
		This:     geometry.Container{Position: geometry.Vec(100, 50), Size: geometry.Vec(30, 40)},
		Image:    geometry.Vec(64, 32),
		Time:     2.5,
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float32
	}{
		{"parent width", Of(Parent, Width, Full()), 200},
		{"parent height half", Of(Parent, Height, Half()), 50},
		{"viewport max", Of(Viewport, Max, Full()), 800},
		{"viewport min", Of(Viewport, Min, Full()), 600},
		{"viewport avg", Of(Viewport, Avg, Full()), 700},
		{"viewport diagonal", Of(Viewport, Diagonal, Full()), 1000},
		{"self percent", Of(Self, Height, Percent(25)), 10},
		{"self multiplier", Of(Self, Width, Multiplier(3)), 90},
		{"image divisor", Of(Image, Width, Divisor(4)), 16},
		{"zero portion", Of(Parent, Width, None()), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Calc(testContext(), NewVariables()); math32.Abs(got-tt.want) > 1e-3 {
				t.Errorf("%s = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	ctx := testContext()
	vars := NewVariables()
	v := Add{L: Px(10), R: Mul{L: Of(Parent, Width, Full()), R: Px(0.5)}}
	if got := v.Calc(ctx, vars); got != 110 {
		t.Errorf("%s = %v, want 110", v, got)
	}
	if got := Sub(Px(10), Px(4)).Calc(ctx, vars); got != 6 {
		t.Errorf("Sub = %v, want 6", got)
	}
	if got := (Neg{Value: Time{}}).Calc(ctx, vars); got != -2.5 {
		t.Errorf("Neg(time) = %v, want -2.5", got)
	}
	if got := (Debug{Label: "probe", Value: Px(7)}).Calc(ctx, vars); got != 7 {
		t.Errorf("Debug passthrough = %v, want 7", got)
	}
}

func TestSetVarVisibleToLaterReads(t *testing.T) {
	ctx := testContext()
	vars := NewVariables()
	gap := vars.Add("gap", Normal)

	set := SetVar{Key: gap, Value: Of(Parent, Width, Percent(10))}
	if got := set.Calc(ctx, vars); got != 20 {
		t.Fatalf("SetVar returned %v, want 20", got)
	}
	read := Add{L: Var{Key: gap}, R: Var{Key: gap}}
	if got := read.Calc(ctx, vars); got != 40 {
		t.Errorf("read after set = %v, want 40", got)
	}
	if err := ctx.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnsetReadIsRecorded(t *testing.T) {
	ctx := testContext()
	vars := NewVariables()
	k := vars.Add("late", Normal)

	if got := (Var{Key: k}).Calc(ctx, vars); got != 0 {
		t.Errorf("unset read = %v, want 0", got)
	}
	if !stderrors.Is(ctx.Err(), ErrUnsetVariable) {
		t.Errorf("expected ErrUnsetVariable, got %v", ctx.Err())
	}
	ctx.ResetErrors()
	if ctx.Err() != nil {
		t.Error("ResetErrors should clear recorded errors")
	}
}

func TestSetVarOnConstantFails(t *testing.T) {
	ctx := testContext()
	vars := NewVariables()
	k := vars.AddConstant("unit", 8)

	got := SetVar{Key: k, Value: Px(3)}.Calc(ctx, vars)
	if got != 3 {
		t.Errorf("SetVar should still return its value, got %v", got)
	}
	if !stderrors.Is(ctx.Err(), ErrWrongVariableKind) {
		t.Errorf("expected ErrWrongVariableKind, got %v", ctx.Err())
	}
	if v, _ := vars.Get(k); v != 8 {
		t.Errorf("constant changed to %v", v)
	}
}

func TestDynamic(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Px(1), false},
		{Time{}, true},
		{Add{L: Px(1), R: Mul{L: Time{}, R: Px(2)}}, true},
		{SetVar{Key: 0, Value: Of(Parent, Width, Full())}, false},
		{Debug{Label: "t", Value: Neg{Value: Time{}}}, true},
	}
	for _, tt := range tests {
		if got := Dynamic(tt.v); got != tt.want {
			t.Errorf("Dynamic(%s) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestPosition(t *testing.T) {
	ctx := testContext()
	vars := NewVariables()

	center := Center(Parent)
	if got := center.Calc(ctx, vars); got != geometry.Vec(100, 50) {
		t.Errorf("Center.Calc = %v, want parent center", got)
	}

	p := At(Parent, Px(10), Px(20))
	if got := p.Calc(ctx, vars); got != geometry.Vec(10, 20) {
		t.Errorf("Calc = %v, want (10, 20)", got)
	}

	origin := At(Self, Zero{}, Zero{})
	if got := origin.CalcRelative(ctx, vars); got != geometry.Vec(-15, -20) {
		t.Errorf("CalcRelative = %v, want (-15, -20)", got)
	}
	if got := Center(Self).CalcRelative(ctx, vars); got != geometry.Vec(0, 0) {
		t.Errorf("self center offset = %v, want zero", got)
	}
}

func TestPositionCalcRot(t *testing.T) {
	ctx := testContext()
	ctx.This.Rotation = math32.Pi / 2
	vars := NewVariables()

	right := At(Self, Of(Self, Width, Full()), Of(Self, Height, Half()))
	got := right.CalcRot(ctx, vars)
	if want := geometry.Vec(100, 65); !got.ApproxEqual(want) {
		t.Errorf("CalcRot = %v, want %v", got, want)
	}
}

func TestRotation(t *testing.T) {
	ctx := testContext()
	vars := NewVariables()
	if got := Deg(Px(180)).Calc(ctx, vars); math32.Abs(got-math32.Pi) > 1e-5 {
		t.Errorf("180deg = %v rad", got)
	}
	if got := Rad(Px(1)).Calc(ctx, vars); got != 1 {
		t.Errorf("1rad = %v", got)
	}
	if got := (Rotation{}).Calc(ctx, vars); got != 0 {
		t.Errorf("empty rotation = %v", got)
	}
	if !Deg(Mul{L: Time{}, R: Px(90)}).Dynamic() {
		t.Error("time-driven rotation should be dynamic")
	}
}
