package scene

import (
	stderrors "errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/go-drift/scene/pkg/errors"
	"github.com/go-drift/scene/pkg/events"
	"github.com/go-drift/scene/pkg/expr"
	"github.com/go-drift/scene/pkg/focus"
	"github.com/go-drift/scene/pkg/geometry"
	"github.com/go-drift/scene/pkg/style"
)

var (
	// ErrInvalidViewport is returned for a viewport with a zero or negative side.
	ErrInvalidViewport = stderrors.New("viewport must have a positive width and height")
	// ErrUnknownKey is returned for a key this Gui never issued.
	ErrUnknownKey = stderrors.New("unknown element key")
	// ErrAlreadyAttached is returned when attaching an element that already has a parent.
	ErrAlreadyAttached = stderrors.New("element already attached")
	// ErrNotAttached is returned when detaching an element from a parent it is not under.
	ErrNotAttached = stderrors.New("element is not a child of parent")
	// ErrCycle is returned when an attach would make an element its own ancestor.
	ErrCycle = stderrors.New("attach would create a cycle")
)

// Gui owns the element arena and all per-frame state.
type Gui struct {
	elements []Element
	root     Key

	viewport        geometry.Container
	viewportChanged bool

	vars      *expr.Variables
	ctx       expr.Context
	passErrs  []error
	selection focus.Selection[Key]

	cursor     geometry.Vector
	prevCursor geometry.Vector
	hasCursor  bool
	dragPath   string
	dragging   bool

	pending []Event
	queue   []Event

	clock  Clock
	start  time.Time
	logger *log.Logger
	stats  Stats
}

// Option configures a Gui.
type Option func(*Gui)

// WithLogger sets the logger used for pass diagnostics and Debug expressions.
func WithLogger(l *log.Logger) Option {
	return func(g *Gui) { g.logger = l }
}

// WithClock sets the time source for elapsed-time expressions.
func WithClock(c Clock) Option {
	return func(g *Gui) { g.clock = c }
}

// New creates a Gui with a root element covering a width by height viewport.
func New(width, height float32, opts ...Option) (*Gui, error) {
	if err := checkViewport("scene.New", width, height); err != nil {
		return nil, err
	}
	g := &Gui{
		viewport:        geometry.Viewport(width, height),
		viewportChanged: true,
		vars:            expr.NewVariables(),
		clock:           realClock{},
		logger:          log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.start = g.clock.Now()
	g.root = g.Add("root")
	g.elements[g.root].attached = true
	return g, nil
}

func checkViewport(op string, width, height float32) error {
	if width > 0 && height > 0 {
		return nil
	}
	return &errors.SceneError{
		Op:   op,
		Kind: errors.KindViewport,
		Err:  fmt.Errorf("%w: %vx%v", ErrInvalidViewport, width, height),
	}
}

// Resize changes the viewport. A zero or negative side is rejected and the
// previous viewport is kept.
func (g *Gui) Resize(width, height float32) error {
	if err := checkViewport("scene.Resize", width, height); err != nil {
		return err
	}
	vp := geometry.Viewport(width, height)
	if vp != g.viewport {
		g.viewport = vp
		g.viewportChanged = true
	}
	return nil
}

// Viewport returns the viewport container.
func (g *Gui) Viewport() geometry.Container {
	return g.viewport
}

// Root returns the key of the root element.
func (g *Gui) Root() Key {
	return g.root
}

// Len returns the number of elements in the arena, attached or not.
func (g *Gui) Len() int {
	return len(g.elements)
}

// Variables returns the variable store shared by every expression.
func (g *Gui) Variables() *expr.Variables {
	return g.vars
}

// Add inserts a detached element and returns its key.
func (g *Gui) Add(label string) Key {
	g.elements = append(g.elements, newElement(label))
	return Key(len(g.elements) - 1)
}

// AddChild inserts an element and appends it to parent.
func (g *Gui) AddChild(parent Key, label string) (Key, error) {
	if !g.valid(parent) {
		return 0, g.refErr("scene.AddChild", parent)
	}
	k := g.Add(label)
	if err := g.AppendChild(parent, k); err != nil {
		return 0, err
	}
	return k, nil
}

// Element returns the element for key.
func (g *Gui) Element(key Key) (*Element, bool) {
	if !g.valid(key) {
		return nil, false
	}
	return &g.elements[key], true
}

// MustElement returns the element for key and panics on an unknown key.
func (g *Gui) MustElement(key Key) *Element {
	el, ok := g.Element(key)
	if !ok {
		panic(g.refErr("scene.MustElement", key))
	}
	return el
}

// Style returns the style set of key for mutation. It panics on an unknown key.
func (g *Gui) Style(key Key) *style.Style {
	return g.MustElement(key).Style()
}

// AppendChild attaches child as the last (topmost) child of parent.
func (g *Gui) AppendChild(parent, child Key) error {
	return g.InsertChild(parent, -1, child)
}

// InsertChild attaches child at index in parent's child list. A negative or
// out of range index appends.
func (g *Gui) InsertChild(parent Key, index int, child Key) error {
	const op = "scene.InsertChild"
	if !g.valid(parent) {
		return g.refErr(op, parent)
	}
	if !g.valid(child) {
		return g.refErr(op, child)
	}
	if g.elements[child].attached || child == g.root {
		return &errors.SceneError{Op: op, Kind: errors.KindReference, Element: g.describe(child), Err: ErrAlreadyAttached}
	}
	if child == parent || g.contains(child, parent) {
		return &errors.SceneError{Op: op, Kind: errors.KindReference, Element: g.describe(child), Err: ErrCycle}
	}

	p := &g.elements[parent]
	if index < 0 || index > len(p.children) {
		index = len(p.children)
	}
	p.children = slices.Insert(p.children, index, child)
	g.elements[child].attached = true
	g.force(child)
	return nil
}

// RemoveChild detaches child from parent. The element stays in the arena and
// can be attached again.
func (g *Gui) RemoveChild(parent, child Key) error {
	const op = "scene.RemoveChild"
	if !g.valid(parent) {
		return g.refErr(op, parent)
	}
	if !g.valid(child) {
		return g.refErr(op, child)
	}
	p := &g.elements[parent]
	i := slices.Index(p.children, child)
	if i < 0 {
		return &errors.SceneError{Op: op, Kind: errors.KindReference, Element: g.describe(child), Err: ErrNotAttached}
	}
	p.children = slices.Delete(p.children, i, i+1)
	g.elements[child].attached = false
	return nil
}

// Listen registers a listener on key. msg is attached to every event the
// listener produces.
func (g *Gui) Listen(key Key, typ events.ListenerType, kind events.Kind, msg any) error {
	el, ok := g.Element(key)
	if !ok {
		return g.refErr("scene.Listen", key)
	}
	el.listeners = append(el.listeners, events.Listener{Type: typ, Kind: kind, Message: msg})
	return nil
}

// SetSelectable marks whether key takes part in focus navigation.
func (g *Gui) SetSelectable(key Key, selectable bool) error {
	el, ok := g.Element(key)
	if !ok {
		return g.refErr("scene.SetSelectable", key)
	}
	el.selectable = selectable
	return nil
}

// SetHidden hides or shows key and its subtree. Showing forces the subtree to
// be recomputed on the next pass.
func (g *Gui) SetHidden(key Key, hidden bool) error {
	el, ok := g.Element(key)
	if !ok {
		return g.refErr("scene.SetHidden", key)
	}
	if el.hidden && !hidden {
		g.force(key)
	}
	el.hidden = hidden
	return nil
}

// AddProcedure attaches an expression evaluated for its side effects on every
// pass, after the element's transform and before its children.
func (g *Gui) AddProcedure(key Key, v expr.Value) error {
	el, ok := g.Element(key)
	if !ok {
		return g.refErr("scene.AddProcedure", key)
	}
	el.procedures = append(el.procedures, v)
	return nil
}

// Focus returns the focused element.
func (g *Gui) Focus() (Key, bool) {
	return g.selection.Current()
}

// Selectables returns the focus candidates collected by the last pass, in
// traversal order.
func (g *Gui) Selectables() []Key {
	return slices.Clone(g.selection.Candidates())
}

// FocusLocked reports whether next/previous navigation is suppressed.
func (g *Gui) FocusLocked() bool {
	return g.selection.Locked()
}

// SetMenuAccessibility records whether the interface is driven by focus
// navigation.
func (g *Gui) SetMenuAccessibility(on bool) {
	g.selection.MenuAccessibility = on
}

// MenuAccessibility reports the value set by SetMenuAccessibility.
func (g *Gui) MenuAccessibility() bool {
	return g.selection.MenuAccessibility
}

// Cursor returns the last cursor position.
func (g *Gui) Cursor() geometry.Vector {
	return g.cursor
}

// Dragging returns the path of the file being dragged over the window.
func (g *Gui) Dragging() (string, bool) {
	return g.dragPath, g.dragging
}

func (g *Gui) valid(key Key) bool {
	return key >= 0 && int(key) < len(g.elements)
}

func (g *Gui) refErr(op string, key Key) error {
	return &errors.SceneError{
		Op:      op,
		Kind:    errors.KindReference,
		Element: key.String(),
		Err:     ErrUnknownKey,
	}
}

func (g *Gui) describe(key Key) string {
	if el, ok := g.Element(key); ok && el.Label != "" {
		return key.String() + " " + el.Label
	}
	return key.String()
}

// contains reports whether target is in the subtree rooted at key.
func (g *Gui) contains(key, target Key) bool {
	for _, c := range g.elements[key].children {
		if c == target || g.contains(c, target) {
			return true
		}
	}
	return false
}

// force flags the subtree rooted at key for full recomputation.
func (g *Gui) force(key Key) {
	el := &g.elements[key]
	el.forced = true
	for _, c := range el.children {
		g.force(c)
	}
}
