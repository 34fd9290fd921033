package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Viewport.Width != 0 || cfg.Output.Format != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadOptional_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "viewport: [")
	if _, err := LoadOptional(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolve_Defaults(t *testing.T) {
	r, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Format != "text" || r.LogLevel != log.InfoLevel || r.Width != 0 {
		t.Errorf("unexpected defaults %+v", r)
	}
}

func TestResolve_Values(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "viewport: {width: 320, height: 240}\noutput: {format: JSON}\nlog: {level: debug}\n")
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Width != 320 || r.Height != 240 || r.Format != "json" || r.LogLevel != log.DebugLevel {
		t.Errorf("unexpected resolved config %+v", r)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"format", "output: {format: xml}\n"},
		{"level", "log: {level: loud}\n"},
		{"negative", "viewport: {width: -1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			if _, err := Resolve(dir); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if got := FindRoot(nested); got != root {
		t.Errorf("expected %s, got %s", root, got)
	}

	lone := t.TempDir()
	if got := FindRoot(lone); got != lone {
		t.Errorf("expected fallback to %s, got %s", lone, got)
	}
}
