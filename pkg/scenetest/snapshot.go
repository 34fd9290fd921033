package scenetest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/scene/pkg/scene"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the laid out tree in paint order.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
}

// Node is one element of a snapshot with values rounded for stable
// comparison.
type Node struct {
	Key      string     `json:"key"`
	Label    string     `json:"label,omitempty"`
	Depth    int        `json:"depth"`
	Position [2]float64 `json:"position"`
	Size     [2]float64 `json:"size"`
	Rotation float64    `json:"rotation,omitempty"`
	Color    string     `json:"color"`
	Alpha    float64    `json:"alpha"`
	Radius   float64    `json:"radius,omitempty"`
	Scroll   [2]float64 `json:"scroll"`
	Clip     bool       `json:"clip,omitempty"`
	Image    [2]float64 `json:"image"`
}

// CaptureSnapshot captures the tree as committed by the last pass.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	t.gui.Walk(func(n scene.RenderNode) bool {
		c, v := n.Container, n.Visual
		node := Node{
			Key:      n.Key.String(),
			Label:    n.Label,
			Depth:    n.Depth,
			Position: [2]float64{round2(c.Position.X), round2(c.Position.Y)},
			Size:     [2]float64{round2(c.Size.X), round2(c.Size.Y)},
			Rotation: round2(c.Rotation),
			Color:    v.Color.Hex(),
			Alpha:    round2(v.Alpha),
			Radius:   round2(v.Rounding.Radius),
			Scroll:   [2]float64{round2(v.Scroll.X), round2(v.Scroll.Y)},
			Clip:     v.Clip,
		}
		if v.Image != nil {
			node.Image = [2]float64{round2(v.Image.Size.X), round2(v.Image.Size.Y)}
		}
		snap.Nodes = append(snap.Nodes, node)
		return true
	})
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When SCENE_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("SCENE_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: SCENE_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: SCENE_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns an
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}

func round2(v float32) float64 {
	return math.Round(float64(v)*100) / 100
}
