package cli

import (
	"path/filepath"

	"github.com/go-drift/scene/pkg/loader"
	"github.com/go-drift/scene/pkg/scene"
	"github.com/go-drift/scene/pkg/scenetest"
)

// viewFlags are the viewport overrides shared by every command.
type viewFlags struct {
	width  float32
	height float32
	json   bool
}

// open loads path into a fresh tester and runs the first update pass. The
// viewport comes from the document unless scenectl.yaml or the flags
// override it, flags winning.
func (c *CLI) open(path string, flags viewFlags) (*scenetest.Tester, *loader.Scene, error) {
	settings, err := c.loadSettings()
	if err != nil {
		return nil, nil, err
	}
	doc, err := loader.Load(path)
	if err != nil {
		return nil, nil, err
	}

	width, height := doc.Viewport.Width, doc.Viewport.Height
	if settings.Width > 0 {
		width = settings.Width
	}
	if settings.Height > 0 {
		height = settings.Height
	}
	if flags.width > 0 {
		width = flags.width
	}
	if flags.height > 0 {
		height = flags.height
	}

	tester, err := scenetest.NewTester(width, height, scene.WithLogger(c.Logger))
	if err != nil {
		return nil, nil, err
	}
	sc, err := doc.Build(tester.Gui(), filepath.Dir(path))
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("loaded scene",
		"path", path,
		"version", doc.CanonicalVersion(),
		"elements", tester.Gui().Len(),
		"viewport", [2]float32{width, height},
	)
	if err := tester.Pump(); err != nil {
		c.Logger.Warn("layout pass reported errors", "err", err)
	}
	return tester, sc, nil
}

// wantJSON reports whether output should be JSON, from the flag or the
// settings file.
func (c *CLI) wantJSON(flags viewFlags) bool {
	if flags.json {
		return true
	}
	s, err := c.loadSettings()
	return err == nil && s.Format == "json"
}
