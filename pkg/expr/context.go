package expr

import (
	stderrors "errors"

	"github.com/charmbracelet/log"

	"github.com/go-drift/scene/pkg/geometry"
)

// Context carries the reference geometries and clock an expression is
// evaluated against. It also collects configuration errors raised during
// evaluation so a whole pass can report them at once.
type Context struct {
	Parent   geometry.Container
	Viewport geometry.Container
	// This is the element's own container as computed so far in the pass.
	This geometry.Container
	// Image is the intrinsic size of the element's image, zero if none.
	Image geometry.Vector
	// Time is the elapsed time in seconds.
	Time float32
	// Logger receives Debug output. Nil means log.Default().
	Logger *log.Logger

	errs []error
}

// Container returns the reference container selected by ref. The image
// reference is centered on the element with the image's intrinsic size.
func (c *Context) Container(ref Reference) geometry.Container {
	switch ref {
	case Viewport:
		return c.Viewport
	case Self:
		return c.This
	case Image:
		return geometry.Container{Position: c.This.Position, Size: c.Image, Rotation: c.This.Rotation}
	default:
		return c.Parent
	}
}

// Fail records a configuration error raised while evaluating.
func (c *Context) Fail(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// Errors returns the errors recorded since the last Reset.
func (c *Context) Errors() []error {
	return c.errs
}

// Err joins the recorded errors, nil if none.
func (c *Context) Err() error {
	return stderrors.Join(c.errs...)
}

// ResetErrors forgets recorded errors.
func (c *Context) ResetErrors() {
	c.errs = c.errs[:0]
}

func (c *Context) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}
