package loader

import (
	"fmt"
	"path/filepath"

	"github.com/go-drift/scene/pkg/events"
	"github.com/go-drift/scene/pkg/expr"
	"github.com/go-drift/scene/pkg/images"
	"github.com/go-drift/scene/pkg/scene"
	"github.com/go-drift/scene/pkg/style"
)

// Scene is a document built into a Gui.
type Scene struct {
	Gui *scene.Gui
	// Labels maps each label to the first element carrying it in pre-order.
	Labels map[string]scene.Key
	Script []Step
}

// Lookup returns the key of the element labelled label.
func (s *Scene) Lookup(label string) (scene.Key, bool) {
	k, ok := s.Labels[label]
	return k, ok
}

// Build declares the document's variables on g, styles g's root from the
// document root and attaches the rest of the tree under it. Image paths are
// resolved against baseDir.
func (d *Document) Build(g *scene.Gui, baseDir string) (*Scene, error) {
	b := &builder{
		gui:    g,
		dir:    baseDir,
		parser: parser{vars: g.Variables()},
		labels: make(map[string]scene.Key),
	}
	if err := b.variables(d.Variables); err != nil {
		return nil, wrap("loader.Build", err)
	}
	if err := b.element("root", g.Root(), d.Root); err != nil {
		return nil, wrap("loader.Build", err)
	}
	return &Scene{Gui: g, Labels: b.labels, Script: d.Script}, nil
}

// New creates a Gui sized to the document viewport and builds the document
// into it.
func (d *Document) New(baseDir string, opts ...scene.Option) (*Scene, error) {
	g, err := scene.New(d.Viewport.Width, d.Viewport.Height, opts...)
	if err != nil {
		return nil, err
	}
	return d.Build(g, baseDir)
}

type builder struct {
	gui    *scene.Gui
	dir    string
	parser parser
	labels map[string]scene.Key
}

func (b *builder) variables(specs []VariableSpec) error {
	vars := b.gui.Variables()
	for i, v := range specs {
		path := fmt.Sprintf("variables[%d]", i)
		if v.Name == "" {
			return invalid(path+".name", v.Name, "name is required")
		}
		if _, dup := vars.Find(v.Name); dup {
			return invalid(path+".name", v.Name, "duplicate variable")
		}
		switch v.Kind {
		case "", "normal":
			vars.Add(v.Name, expr.Normal)
		case "constant":
			if v.Value == nil {
				return invalid(path+".value", nil, "constant needs a value")
			}
			vars.AddConstant(v.Name, *v.Value)
		default:
			return invalid(path+".kind", v.Kind, "expected normal or constant")
		}
	}
	return nil
}

func (b *builder) element(path string, key scene.Key, spec ElementSpec) error {
	el := b.gui.MustElement(key)
	if spec.Label != "" {
		el.Label = spec.Label
		if _, seen := b.labels[spec.Label]; !seen {
			b.labels[spec.Label] = key
		}
	}

	if err := b.style(path, el.Style(), spec); err != nil {
		return err
	}

	for i, src := range spec.Procedures {
		v, err := b.parser.required(fmt.Sprintf("%s.procedures[%d]", path, i), src)
		if err != nil {
			return err
		}
		b.gui.AddProcedure(key, v)
	}
	for i, l := range spec.Listeners {
		lp := fmt.Sprintf("%s.listeners[%d]", path, i)
		typ, ok := events.ParseListenerType(l.On)
		if !ok {
			return invalid(lp+".on", l.On, "unknown listener type")
		}
		kind := events.Listen
		if l.Kind != "" {
			if kind, ok = events.ParseKind(l.Kind); !ok {
				return invalid(lp+".kind", l.Kind, "expected listen, peek or force")
			}
		}
		var msg any
		if l.Message != "" {
			msg = l.Message
		}
		b.gui.Listen(key, typ, kind, msg)
	}
	b.gui.SetSelectable(key, spec.Selectable)
	if spec.Hidden {
		b.gui.SetHidden(key, true)
	}

	for i, child := range spec.Children {
		ck, err := b.gui.AddChild(key, child.Label)
		if err != nil {
			return err
		}
		if err := b.element(fmt.Sprintf("%s.children[%d]", path, i), ck, child); err != nil {
			return err
		}
	}
	return nil
}

// cell sets a value cell when src is present and marks it dynamic when the
// expression reads the clock.
func (b *builder) cell(path string, c *style.Component[expr.Value], src any) error {
	if src == nil {
		return nil
	}
	v, err := b.parser.value(path, src)
	if err != nil {
		return err
	}
	c.Set(v)
	c.SetDynamic(expr.Dynamic(v))
	return nil
}

func (b *builder) style(path string, s *style.Style, spec ElementSpec) error {
	cells := []struct {
		name string
		cell *style.Component[expr.Value]
		src  any
	}{
		{"width", &s.Width, spec.Width},
		{"height", &s.Height, spec.Height},
		{"minWidth", &s.MinWidth, spec.MinWidth},
		{"maxWidth", &s.MaxWidth, spec.MaxWidth},
		{"minHeight", &s.MinHeight, spec.MinHeight},
		{"maxHeight", &s.MaxHeight, spec.MaxHeight},
		{"padding", &s.Padding, spec.Padding},
		{"alpha", &s.Alpha, spec.Alpha},
		{"scrollX", &s.ScrollX, spec.ScrollX},
		{"scrollY", &s.ScrollY, spec.ScrollY},
	}
	for _, c := range cells {
		if err := b.cell(path+"."+c.name, c.cell, c.src); err != nil {
			return err
		}
	}

	pos, err := b.parser.position(path+".position", spec.Position, "parent", s.Position.Get())
	if err != nil {
		return err
	}
	s.Position.Set(pos)
	s.Position.SetDynamic(pos.Dynamic())

	origin, err := b.parser.position(path+".origin", spec.Origin, "self", s.Origin.Get())
	if err != nil {
		return err
	}
	s.Origin.Set(origin)
	s.Origin.SetDynamic(origin.Dynamic())

	if spec.Rotation != nil {
		r, err := b.parser.rotation(path+".rotation", spec.Rotation)
		if err != nil {
			return err
		}
		s.SetRotation(r)
	}

	return b.visuals(path, s, spec)
}

func (b *builder) visuals(path string, s *style.Style, spec ElementSpec) error {
	if err := b.color(path+".color", spec.Color, &s.Color); err != nil {
		return err
	}
	if err := b.color(path+".tint", spec.Tint, &s.ImageTint); err != nil {
		return err
	}

	switch spec.Overflow {
	case "", "visible":
	case "clip":
		s.Overflow.Set(style.OverflowClip)
	default:
		return invalid(path+".overflow", spec.Overflow, "expected visible or clip")
	}

	if r := spec.Rounding; r != nil {
		radius, err := b.parser.value(path+".rounding.radius", r.Radius)
		if err != nil {
			return err
		}
		aa, err := b.parser.value(path+".rounding.antiAlias", r.AntiAlias)
		if err != nil {
			return err
		}
		s.SetRounding(style.Rounding{Radius: radius, AntiAlias: aa})
	}

	if l := spec.Linear; l != nil {
		g := &style.LinearGradient{}
		var err error
		if g.Start, err = b.parser.position(path+".linear.start", &l.Start, "self", expr.Position{}); err != nil {
			return err
		}
		if g.End, err = b.parser.position(path+".linear.end", &l.End, "self", expr.Position{}); err != nil {
			return err
		}
		if g.StartColor, err = parseColor(path+".linear.from", l.From); err != nil {
			return err
		}
		if g.EndColor, err = parseColor(path+".linear.to", l.To); err != nil {
			return err
		}
		s.SetLinearGradient(g)
	}

	if r := spec.Radial; r != nil {
		g := &style.RadialGradient{}
		var err error
		if g.Center, err = b.parser.position(path+".radial.center", &r.Center, "self", expr.Position{}); err != nil {
			return err
		}
		if g.Radius, err = b.parser.value(path+".radial.radius", r.Radius); err != nil {
			return err
		}
		if g.Inner, err = parseColor(path+".radial.inner", r.Inner); err != nil {
			return err
		}
		if g.Outer, err = parseColor(path+".radial.outer", r.Outer); err != nil {
			return err
		}
		s.SetRadialGradient(g)
	}

	if spec.Image != "" {
		p := spec.Image
		if !filepath.IsAbs(p) {
			p = filepath.Join(b.dir, p)
		}
		info, err := images.Load(p)
		if err != nil {
			return invalid(path+".image", spec.Image, err.Error())
		}
		s.Image.Set(info)
	}
	return nil
}

func (b *builder) color(path, src string, c *style.Component[style.Color]) error {
	if src == "" {
		return nil
	}
	col, err := parseColor(path, src)
	if err != nil {
		return err
	}
	c.Set(col)
	return nil
}

func parseColor(path, src string) (style.Color, error) {
	if src == "" {
		return style.ColorTransparent, nil
	}
	c, err := style.ParseColor(src)
	if err != nil {
		return 0, invalid(path, src, "expected #rgb, #rrggbb or #rrggbbaa")
	}
	return c, nil
}
