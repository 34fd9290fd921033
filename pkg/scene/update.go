package scene

import (
	stderrors "errors"

	"github.com/go-drift/scene/pkg/errors"
	"github.com/go-drift/scene/pkg/expr"
	"github.com/go-drift/scene/pkg/geometry"
	"github.com/go-drift/scene/pkg/style"
)

// frame is what a parent hands down to each child: its content container and
// which parts of it moved during this pass.
type frame struct {
	container   geometry.Container
	sizeChanged bool
	posChanged  bool
	rotChanged  bool
	// viewport is set for the whole walk after a resize so that every
	// expression reading the viewport is re-evaluated.
	viewport bool
}

// Update runs one layout pass over the attached tree.
//
// Normal variables are reset and the focus candidates are rebuilt before the
// walk. Each element recomputes only the stages whose own cells are dirty or
// whose parent changed the matching part of its container. Variable errors
// raised while evaluating are reported to the error handler and returned
// joined; the pass still completes with zero substituted for unset reads.
func (g *Gui) Update() error {
	g.stats = Stats{Pass: g.stats.Pass + 1}
	g.passErrs = g.passErrs[:0]
	g.vars.Prepare()
	g.selection.Begin()

	g.ctx = expr.Context{
		Viewport: g.viewport,
		Time:     float32(g.clock.Now().Sub(g.start).Seconds()),
		Logger:   g.logger,
	}

	changed := g.viewportChanged
	g.viewportChanged = false
	g.updateElement(g.root, frame{
		container:   g.viewport,
		sizeChanged: changed,
		posChanged:  changed,
		rotChanged:  changed,
		viewport:    changed,
	})

	for _, err := range g.passErrs {
		var se *errors.SceneError
		if stderrors.As(err, &se) {
			errors.Report(se)
		}
	}
	g.logger.Debug("update pass",
		"pass", g.stats.Pass,
		"visited", g.stats.Visited,
		"recomputed", g.stats.Recomputed(),
		"errors", len(g.passErrs),
	)
	return stderrors.Join(g.passErrs...)
}

func (g *Gui) updateElement(key Key, parent frame) {
	el := &g.elements[key]
	if el.hidden {
		return
	}
	g.stats.Visited++

	s := &el.style
	if el.forced {
		s.MarkAllDirty()
		el.dirtyStyles = true
		el.forced = false
	}

	ctx := &g.ctx
	ctx.Parent = parent.container
	ctx.This = el.container
	ctx.ResetErrors()

	// Image.
	src, imageChanged := s.Image.FixDirty()
	if imageChanged {
		g.stats.Images++
		el.imageSize = geometry.Vector{}
		if src != nil {
			el.imageSize = src.Size()
		}
	}
	ctx.Image = el.imageSize

	next := el.container

	// Size, clamped and then reduced by padding.
	sizeGate := parent.viewport || parent.sizeChanged || imageChanged ||
		s.Width.Dirty() || s.Height.Dirty() ||
		s.MinWidth.Dirty() || s.MaxWidth.Dirty() ||
		s.MinHeight.Dirty() || s.MaxHeight.Dirty() ||
		s.Padding.Dirty()
	if sizeGate {
		g.stats.Sizes++
		w := g.clamp(g.calc(s.Width.FixDirtyForce()), s.MinWidth.FixDirtyForce(), s.MaxWidth.FixDirtyForce())
		h := g.clamp(g.calc(s.Height.FixDirtyForce()), s.MinHeight.FixDirtyForce(), s.MaxHeight.FixDirtyForce())
		pad := g.calc(s.Padding.FixDirtyForce())
		next.Size = geometry.Vec(w-2*pad, h-2*pad)
		ctx.This.Size = next.Size
	}
	sizeChanged := next.Size != el.container.Size

	// Position, then rotation about the parent center.
	posGate := parent.viewport || parent.posChanged || parent.rotChanged || parent.sizeChanged || sizeChanged ||
		s.Position.Dirty() || s.Origin.Dirty()
	if posGate {
		g.stats.Positions++
		pos := s.Position.FixDirtyForce().Calc(ctx, g.vars)
		pos = pos.Sub(s.Origin.FixDirtyForce().CalcRelative(ctx, g.vars))
		if parent.container.Rotation != 0 {
			pos = pos.RotateAround(parent.container.Position, parent.container.Rotation)
		}
		next.Position = pos
		ctx.This.Position = pos
	}
	posChanged := next.Position != el.container.Position

	if parent.viewport || parent.rotChanged || s.Rotation.Dirty() {
		g.stats.Rotations++
		next.Rotation = parent.container.Rotation + s.Rotation.FixDirtyForce().Calc(ctx, g.vars)
		ctx.This.Rotation = next.Rotation
	}
	rotChanged := next.Rotation != el.container.Rotation

	ctx.This = next
	for _, p := range el.procedures {
		g.stats.Procedures++
		p.Calc(ctx, g.vars)
	}

	// Attributes that follow the transform.
	transformChanged := sizeChanged || posChanged || rotChanged || parent.viewport
	if transformChanged || s.Rounding.Dirty() || s.LinearGradient.Dirty() || s.RadialGradient.Dirty() {
		g.stats.Derived++
		g.derive(el, transformChanged)
	}

	// Attributes independent of the transform, batched by dirtyStyles.
	if el.dirtyStyles || imageChanged {
		g.stats.Visuals++
		el.visual.Color = s.Color.FixDirtyForce()
		el.visual.Alpha = g.calc(s.Alpha.FixDirtyForce())
		el.visual.Clip = s.Overflow.FixDirtyForce() == style.OverflowClip
		tint := s.ImageTint.FixDirtyForce()
		el.visual.Image = nil
		if src != nil {
			el.visual.Image = &ImageVisual{Size: el.imageSize, Tint: tint}
		}
		el.dirtyStyles = s.Color.Dynamic() || s.Alpha.Dynamic() || s.Overflow.Dynamic() || s.ImageTint.Dynamic()
	}

	el.container = next

	// Scroll displaces the container children inherit.
	scrollChanged := false
	if transformChanged || s.ScrollX.Dirty() || s.ScrollY.Dirty() {
		g.stats.Scrolls++
		scroll := geometry.Vec(g.calc(s.ScrollX.FixDirtyForce()), g.calc(s.ScrollY.FixDirtyForce()))
		inner := next
		if !scroll.IsZero() {
			inner.Position = next.Position.Add(scroll.Rotate(next.Rotation))
		}
		scrollChanged = inner.Position != el.inner.Position
		el.visual.Scroll = scroll
		el.inner = inner
	}

	for _, err := range ctx.Errors() {
		g.passErrs = append(g.passErrs, &errors.SceneError{
			Op:      "scene.Update",
			Kind:    errors.KindVariable,
			Element: g.describe(key),
			Err:     err,
		})
	}

	if el.selectable {
		g.selection.Add(key)
	}

	child := frame{
		container:   el.inner,
		sizeChanged: sizeChanged,
		posChanged:  posChanged || scrollChanged,
		rotChanged:  rotChanged,
		viewport:    parent.viewport,
	}
	for _, c := range el.Children() {
		g.updateElement(c, child)
	}
}

// derive recomputes rounding and gradients. With force every cell is
// re-read, otherwise only the dirty ones.
func (g *Gui) derive(el *Element, force bool) {
	s := &el.style
	ctx := &g.ctx

	if r, dirty := fix(&s.Rounding, force); dirty {
		el.visual.Rounding = RoundingVisual{
			Radius:    g.calc(r.Radius),
			AntiAlias: g.calc(r.AntiAlias),
		}
	}
	if lg, dirty := fix(&s.LinearGradient, force); dirty {
		el.visual.Linear = nil
		if lg != nil {
			el.visual.Linear = &LinearVisual{
				Start:      lg.Start.CalcRot(ctx, g.vars),
				End:        lg.End.CalcRot(ctx, g.vars),
				StartColor: lg.StartColor,
				EndColor:   lg.EndColor,
			}
		}
	}
	if rg, dirty := fix(&s.RadialGradient, force); dirty {
		el.visual.Radial = nil
		if rg != nil {
			el.visual.Radial = &RadialVisual{
				Center: rg.Center.CalcRot(ctx, g.vars),
				Radius: g.calc(rg.Radius),
				Inner:  rg.Inner,
				Outer:  rg.Outer,
			}
		}
	}
}

func fix[T any](c *style.Component[T], force bool) (T, bool) {
	if force {
		return c.FixDirtyForce(), true
	}
	return c.FixDirty()
}

// calc evaluates v in the current context. A nil expression is zero.
func (g *Gui) calc(v expr.Value) float32 {
	if v == nil {
		return 0
	}
	return v.Calc(&g.ctx, g.vars)
}

// clamp applies the optional max bound and then the optional min bound.
func (g *Gui) clamp(v float32, lo, hi expr.Value) float32 {
	if hi != nil {
		v = min(v, g.calc(hi))
	}
	if lo != nil {
		v = max(v, g.calc(lo))
	}
	return v
}
