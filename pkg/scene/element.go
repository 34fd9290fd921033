package scene

import (
	"strconv"

	"github.com/go-drift/scene/pkg/events"
	"github.com/go-drift/scene/pkg/expr"
	"github.com/go-drift/scene/pkg/geometry"
	"github.com/go-drift/scene/pkg/style"
)

// Key is the stable identifier of an element, assigned at insertion and never
// reused for the lifetime of the Gui.
type Key int

func (k Key) String() string {
	return "#" + strconv.Itoa(int(k))
}

// Element is one node of the tree.
type Element struct {
	// Label is an optional display name.
	Label string

	style      style.Style
	children   []Key
	listeners  []events.Listener
	procedures []expr.Value

	container geometry.Container
	inner     geometry.Container
	visual    Visual
	imageSize geometry.Vector

	dirtyStyles bool
	selectable  bool
	hidden      bool
	attached    bool
	forced      bool
}

func newElement(label string) Element {
	return Element{
		Label:       label,
		style:       style.Default(),
		dirtyStyles: true,
		forced:      true,
	}
}

// Style returns the element's style set for reading or mutation. Every call
// flags the transform-independent visuals for re-evaluation, whether or not
// the caller changes anything.
func (e *Element) Style() *style.Style {
	e.dirtyStyles = true
	return &e.style
}

// Children returns a copy of the child keys in registration order.
func (e *Element) Children() []Key {
	return append([]Key(nil), e.children...)
}

// Listeners returns a copy of the listener registrations.
func (e *Element) Listeners() []events.Listener {
	return append([]events.Listener(nil), e.listeners...)
}

// Container returns the transform committed by the last update pass.
func (e *Element) Container() geometry.Container {
	return e.container
}

// ContentContainer returns the container children inherit: the committed
// container displaced by the scroll offset.
func (e *Element) ContentContainer() geometry.Container {
	return e.inner
}

// Visual returns the visual attributes computed by the last update pass.
func (e *Element) Visual() Visual {
	return e.visual
}

// Selectable reports whether the element takes part in focus navigation.
func (e *Element) Selectable() bool {
	return e.selectable
}

// Hidden reports whether the element and its subtree are skipped.
func (e *Element) Hidden() bool {
	return e.hidden
}

// Visual is the flattened set of visual attributes handed to a renderer.
type Visual struct {
	Color    style.Color     `json:"color"`
	Alpha    float32         `json:"alpha"`
	Rounding RoundingVisual  `json:"rounding"`
	Linear   *LinearVisual   `json:"linear,omitempty"`
	Radial   *RadialVisual   `json:"radial,omitempty"`
	Image    *ImageVisual    `json:"image,omitempty"`
	Scroll   geometry.Vector `json:"scroll"`
	Clip     bool            `json:"clip"`
}

// RoundingVisual is the resolved corner rounding.
type RoundingVisual struct {
	Radius    float32 `json:"radius"`
	AntiAlias float32 `json:"antiAlias"`
}

// LinearVisual is a resolved linear gradient in viewport coordinates.
type LinearVisual struct {
	Start      geometry.Vector `json:"start"`
	End        geometry.Vector `json:"end"`
	StartColor style.Color     `json:"startColor"`
	EndColor   style.Color     `json:"endColor"`
}

// At samples the gradient color at parameter t in [0, 1].
func (l LinearVisual) At(t float32) style.Color {
	return l.StartColor.Lerp(l.EndColor, clamp01(t))
}

// RadialVisual is a resolved radial gradient in viewport coordinates.
type RadialVisual struct {
	Center geometry.Vector `json:"center"`
	Radius float32         `json:"radius"`
	Inner  style.Color     `json:"inner"`
	Outer  style.Color     `json:"outer"`
}

// ImageVisual is the resolved image attributes.
type ImageVisual struct {
	Size geometry.Vector `json:"size"`
	Tint style.Color     `json:"tint"`
}

func clamp01(t float32) float32 {
	return min(max(t, 0), 1)
}
