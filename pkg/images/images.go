// Package images provides image sources for elements. The scene graph only
// needs an image's intrinsic size, so sources decode the header and nothing
// else; pixel data belongs to the renderer.
package images

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/scene/pkg/geometry"
)

// Source is an image resource as seen by layout.
type Source interface {
	// Size returns the intrinsic size in pixels.
	Size() geometry.Vector
}

// Info describes a decoded image header.
type Info struct {
	// Path is the file the header was read from, empty for in-memory sources.
	Path   string
	Format string
	Width  int
	Height int
}

// Size returns the intrinsic size in pixels.
func (i Info) Size() geometry.Vector {
	return geometry.Vector{X: float32(i.Width), Y: float32(i.Height)}
}

// Fixed is a Source with a known size and no backing file.
type Fixed geometry.Vector

// Size returns the fixed size.
func (f Fixed) Size() geometry.Vector { return geometry.Vector(f) }

// Decode reads the image header from r. PNG, JPEG, GIF, BMP, TIFF and WebP
// are recognized.
func Decode(r io.Reader) (Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("decode image header: %w", err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// Load reads the image header of the file at path.
func Load(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	info, err := Decode(f)
	if err != nil {
		return Info{}, fmt.Errorf("%s: %w", path, err)
	}
	info.Path = path
	return info, nil
}
