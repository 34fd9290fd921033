package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/scene/pkg/errors"
	"github.com/go-drift/scene/pkg/expr"
)

// parser turns decoded document values into expressions. Variable names are
// resolved against vars.
type parser struct {
	vars *expr.Variables
}

func invalid(path string, got any, reason string) error {
	return &errors.DocumentError{Path: path, Got: got, Reason: reason}
}

// value parses one value. A nil input yields a nil expression.
func (p *parser) value(path string, v any) (expr.Value, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case int, int64, uint64, float32, float64:
		n, _ := number(v)
		return expr.Px(n), nil
	case string:
		return p.word(path, v)
	case map[string]any:
		return p.form(path, v)
	default:
		return nil, invalid(path, v, "expected a number, word or map")
	}
}

func (p *parser) word(path, s string) (expr.Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "zero":
		return expr.Zero{}, nil
	case s == "time":
		return expr.Time{}, nil
	case strings.HasPrefix(s, "$"):
		key, err := p.variable(path, s[1:])
		if err != nil {
			return nil, err
		}
		return expr.Var{Key: key}, nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 32); err == nil {
		return expr.Px(f), nil
	}
	return query(path, s)
}

// query parses ref.scalar with an optional full, half or zero portion.
func query(path, s string) (expr.Value, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, invalid(path, s, "expected ref.scalar or ref.scalar.portion")
	}
	ref, err := reference(path, parts[0])
	if err != nil {
		return nil, err
	}
	sc, err := scalar(path, parts[1])
	if err != nil {
		return nil, err
	}
	portion := expr.Full()
	if len(parts) == 3 {
		if portion, err = simplePortion(path, parts[2]); err != nil {
			return nil, err
		}
	}
	return expr.Of(ref, sc, portion), nil
}

func (p *parser) form(path string, m map[string]any) (expr.Value, error) {
	switch {
	case has(m, "px"):
		n, ok := number(m["px"])
		if !ok {
			return nil, invalid(path+".px", m["px"], "expected a number")
		}
		return expr.Px(n), nil

	case has(m, "of"):
		return p.queryForm(path, m)

	case has(m, "var"):
		name, _ := m["var"].(string)
		key, err := p.variable(path+".var", name)
		if err != nil {
			return nil, err
		}
		return expr.Var{Key: key}, nil

	case has(m, "set"):
		name, _ := m["set"].(string)
		key, err := p.variable(path+".set", name)
		if err != nil {
			return nil, err
		}
		inner, err := p.required(path+".value", m["value"])
		if err != nil {
			return nil, err
		}
		return expr.SetVar{Key: key, Value: inner}, nil

	case has(m, "add"), has(m, "mul"):
		op := "add"
		if has(m, "mul") {
			op = "mul"
		}
		return p.fold(path+"."+op, op, m[op])

	case has(m, "sub"):
		items, ok := list(m["sub"])
		if !ok || len(items) != 2 {
			return nil, invalid(path+".sub", m["sub"], "expected a list of two values")
		}
		l, err := p.required(path+".sub[0]", items[0])
		if err != nil {
			return nil, err
		}
		r, err := p.required(path+".sub[1]", items[1])
		if err != nil {
			return nil, err
		}
		return expr.Sub(l, r), nil

	case has(m, "neg"):
		inner, err := p.required(path+".neg", m["neg"])
		if err != nil {
			return nil, err
		}
		return expr.Neg{Value: inner}, nil

	case has(m, "debug"):
		label, _ := m["debug"].(string)
		inner, err := p.required(path+".value", m["value"])
		if err != nil {
			return nil, err
		}
		return expr.Debug{Label: label, Value: inner}, nil
	}
	return nil, invalid(path, m, "unknown value form")
}

func (p *parser) queryForm(path string, m map[string]any) (expr.Value, error) {
	of, _ := m["of"].(string)
	ref, err := reference(path+".of", of)
	if err != nil {
		return nil, err
	}
	name, _ := m["scalar"].(string)
	if name == "" {
		name = "width"
	}
	sc, err := scalar(path+".scalar", name)
	if err != nil {
		return nil, err
	}
	portion := expr.Full()
	if kind, _ := m["portion"].(string); kind != "" {
		amount, _ := number(m["amount"])
		switch kind {
		case "percent":
			portion = expr.Percent(amount)
		case "multiplier":
			portion = expr.Multiplier(amount)
		case "divisor":
			if amount == 0 {
				return nil, invalid(path+".amount", m["amount"], "divisor must be nonzero")
			}
			portion = expr.Divisor(amount)
		default:
			if portion, err = simplePortion(path+".portion", kind); err != nil {
				return nil, err
			}
		}
	}
	return expr.Of(ref, sc, portion), nil
}

func (p *parser) fold(path, op string, v any) (expr.Value, error) {
	items, ok := list(v)
	if !ok || len(items) == 0 {
		return nil, invalid(path, v, "expected a non-empty list")
	}
	var acc expr.Value
	for i, item := range items {
		x, err := p.required(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
		switch {
		case acc == nil:
			acc = x
		case op == "mul":
			acc = expr.Mul{L: acc, R: x}
		default:
			acc = expr.Add{L: acc, R: x}
		}
	}
	return acc, nil
}

func (p *parser) required(path string, v any) (expr.Value, error) {
	if v == nil {
		return nil, invalid(path, v, "value is required")
	}
	return p.value(path, v)
}

func (p *parser) variable(path, name string) (expr.VarKey, error) {
	key, ok := p.vars.Find(name)
	if !ok {
		return 0, invalid(path, name, "undeclared variable")
	}
	return key, nil
}

// position parses spec, measuring from defaultOf when it names no
// reference. A nil spec yields fallback.
func (p *parser) position(path string, spec *PositionSpec, defaultOf string, fallback expr.Position) (expr.Position, error) {
	if spec == nil {
		return fallback, nil
	}
	of := spec.Of
	if of == "" {
		of = defaultOf
	}
	ref, err := reference(path+".of", of)
	if err != nil {
		return expr.Position{}, err
	}
	x, err := p.value(path+".x", spec.X)
	if err != nil {
		return expr.Position{}, err
	}
	y, err := p.value(path+".y", spec.Y)
	if err != nil {
		return expr.Position{}, err
	}
	return expr.At(ref, x, y), nil
}

func (p *parser) rotation(path string, spec *RotationSpec) (expr.Rotation, error) {
	if spec.Deg != nil && spec.Rad != nil {
		return expr.Rotation{}, invalid(path, spec, "give deg or rad, not both")
	}
	if spec.Rad != nil {
		v, err := p.value(path+".rad", spec.Rad)
		return expr.Rad(v), err
	}
	v, err := p.value(path+".deg", spec.Deg)
	return expr.Deg(v), err
}

func reference(path, s string) (expr.Reference, error) {
	switch s {
	case "parent":
		return expr.Parent, nil
	case "viewport":
		return expr.Viewport, nil
	case "self":
		return expr.Self, nil
	case "image":
		return expr.Image, nil
	}
	return 0, invalid(path, s, "expected parent, viewport, self or image")
}

func scalar(path, s string) (expr.Scalar, error) {
	for sc := expr.Width; sc <= expr.Avg; sc++ {
		if sc.String() == s {
			return sc, nil
		}
	}
	return 0, invalid(path, s, "expected width, height, diagonal, max, min or avg")
}

func simplePortion(path, s string) (expr.Portion, error) {
	switch s {
	case "full":
		return expr.Full(), nil
	case "half":
		return expr.Half(), nil
	case "zero", "none":
		return expr.None(), nil
	}
	return expr.Portion{}, invalid(path, s, "expected full, half or zero")
}

func has(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func number(v any) (float32, bool) {
	switch n := v.(type) {
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	case float32:
		return n, true
	case float64:
		return float32(n), true
	}
	return 0, false
}

// list accepts the slice shapes produced by both decoders.
func list(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}
