package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/scene/pkg/errors"
)

// SupportedMajor is the document major version this package reads.
const SupportedMajor = "v1"

// Format selects the document syntax.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	if f == TOML {
		return "toml"
	}
	return "yaml"
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("unsupported scene file extension %q", filepath.Ext(path))
}

// Parse decodes a document and checks its version.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, wrap("loader.Parse", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, wrap("loader.Parse", err)
		}
	}
	if err := doc.checkVersion(); err != nil {
		return nil, wrap("loader.Parse", err)
	}
	return &doc, nil
}

// Load reads and parses a scene file, choosing the format by extension.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, wrap("loader.Load", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap("loader.Load", err)
	}
	return Parse(data, format)
}

// CanonicalVersion returns the document version as a semver string,
// defaulting to v1.0.0.
func (d *Document) CanonicalVersion() string {
	v := strings.TrimSpace(d.Version)
	if v == "" {
		return "v1.0.0"
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

func (d *Document) checkVersion() error {
	v := d.CanonicalVersion()
	if v == "" {
		return invalid("version", d.Version, "expected a semantic version")
	}
	if semver.Major(v) != SupportedMajor {
		return invalid("version", d.Version, "unsupported major version, expected "+SupportedMajor)
	}
	return nil
}

func wrap(op string, err error) error {
	return &errors.SceneError{Op: op, Kind: errors.KindDocument, Err: err}
}
