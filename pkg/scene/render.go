package scene

import "github.com/go-drift/scene/pkg/geometry"

// RenderNode is the per-element data handed to a renderer.
type RenderNode struct {
	Key       Key                `json:"key"`
	Label     string             `json:"label,omitempty"`
	Depth     int                `json:"depth"`
	Container geometry.Container `json:"container"`
	Visual    Visual             `json:"visual"`
}

// Walk calls fn for every visible attached element in paint order: parents
// before children, earlier children before later ones. Returning false from
// fn skips the element's subtree.
func (g *Gui) Walk(fn func(RenderNode) bool) {
	g.walk(g.root, 0, fn)
}

func (g *Gui) walk(key Key, depth int, fn func(RenderNode) bool) {
	el := &g.elements[key]
	if el.hidden {
		return
	}
	node := RenderNode{
		Key:       key,
		Label:     el.Label,
		Depth:     depth,
		Container: el.container,
		Visual:    el.visual,
	}
	if !fn(node) {
		return
	}
	for _, c := range el.Children() {
		g.walk(c, depth+1, fn)
	}
}

// Snapshot returns every node Walk would visit.
func (g *Gui) Snapshot() []RenderNode {
	var nodes []RenderNode
	g.Walk(func(n RenderNode) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}
