package loader

// Document is the decoded form of a scene file.
type Document struct {
	Version   string         `yaml:"version" toml:"version"`
	Viewport  Viewport       `yaml:"viewport" toml:"viewport"`
	Variables []VariableSpec `yaml:"variables" toml:"variables"`
	Root      ElementSpec    `yaml:"root" toml:"root"`
	Script    []Step         `yaml:"script" toml:"script"`
}

// Viewport is the initial viewport size.
type Viewport struct {
	Width  float32 `yaml:"width" toml:"width"`
	Height float32 `yaml:"height" toml:"height"`
}

// VariableSpec declares a variable slot. Kind is normal (the default) or
// constant; a constant needs a value.
type VariableSpec struct {
	Name  string   `yaml:"name" toml:"name"`
	Kind  string   `yaml:"kind" toml:"kind"`
	Value *float32 `yaml:"value" toml:"value"`
}

// ElementSpec describes one element and its subtree. Value fields hold any
// form accepted by the value grammar.
type ElementSpec struct {
	Label string `yaml:"label" toml:"label"`

	Width     any `yaml:"width" toml:"width"`
	Height    any `yaml:"height" toml:"height"`
	MinWidth  any `yaml:"minWidth" toml:"minWidth"`
	MaxWidth  any `yaml:"maxWidth" toml:"maxWidth"`
	MinHeight any `yaml:"minHeight" toml:"minHeight"`
	MaxHeight any `yaml:"maxHeight" toml:"maxHeight"`
	Padding   any `yaml:"padding" toml:"padding"`

	Position *PositionSpec `yaml:"position" toml:"position"`
	Origin   *PositionSpec `yaml:"origin" toml:"origin"`
	Rotation *RotationSpec `yaml:"rotation" toml:"rotation"`

	Color    string        `yaml:"color" toml:"color"`
	Alpha    any           `yaml:"alpha" toml:"alpha"`
	Rounding *RoundingSpec `yaml:"rounding" toml:"rounding"`
	Linear   *LinearSpec   `yaml:"linear" toml:"linear"`
	Radial   *RadialSpec   `yaml:"radial" toml:"radial"`
	Image    string        `yaml:"image" toml:"image"`
	Tint     string        `yaml:"tint" toml:"tint"`
	Overflow string        `yaml:"overflow" toml:"overflow"`
	ScrollX  any           `yaml:"scrollX" toml:"scrollX"`
	ScrollY  any           `yaml:"scrollY" toml:"scrollY"`

	Selectable bool           `yaml:"selectable" toml:"selectable"`
	Hidden     bool           `yaml:"hidden" toml:"hidden"`
	Procedures []any          `yaml:"procedures" toml:"procedures"`
	Listeners  []ListenerSpec `yaml:"listeners" toml:"listeners"`
	Children   []ElementSpec  `yaml:"children" toml:"children"`
}

// PositionSpec places a point in a reference container, measured from its
// top-left corner. Of defaults to parent.
type PositionSpec struct {
	Of string `yaml:"of" toml:"of"`
	X  any    `yaml:"x" toml:"x"`
	Y  any    `yaml:"y" toml:"y"`
}

// RotationSpec gives an angle in degrees or radians, not both.
type RotationSpec struct {
	Deg any `yaml:"deg" toml:"deg"`
	Rad any `yaml:"rad" toml:"rad"`
}

// RoundingSpec describes rounded corners.
type RoundingSpec struct {
	Radius    any `yaml:"radius" toml:"radius"`
	AntiAlias any `yaml:"antiAlias" toml:"antiAlias"`
}

// LinearSpec describes a linear gradient.
type LinearSpec struct {
	Start PositionSpec `yaml:"start" toml:"start"`
	End   PositionSpec `yaml:"end" toml:"end"`
	From  string       `yaml:"from" toml:"from"`
	To    string       `yaml:"to" toml:"to"`
}

// RadialSpec describes a radial gradient.
type RadialSpec struct {
	Center PositionSpec `yaml:"center" toml:"center"`
	Radius any          `yaml:"radius" toml:"radius"`
	Inner  string       `yaml:"inner" toml:"inner"`
	Outer  string       `yaml:"outer" toml:"outer"`
}

// ListenerSpec registers a listener. Kind defaults to listen.
type ListenerSpec struct {
	On      string `yaml:"on" toml:"on"`
	Kind    string `yaml:"kind" toml:"kind"`
	Message string `yaml:"message" toml:"message"`
}

// Step is one scripted input. Action selects which fields apply:
//
//	move    x, y
//	press   button
//	release button
//	click   x, y, button
//	scroll  x, y, dx, dy
//	key     code
//	text    text
//	hover   path
//	drop    x, y, path
//	cancel
//	select  op, target (label, for op key), force
//	advance ms
//	update
//	resize  width, height
type Step struct {
	Action string  `yaml:"action" toml:"action"`
	X      float32 `yaml:"x" toml:"x"`
	Y      float32 `yaml:"y" toml:"y"`
	DX     float32 `yaml:"dx" toml:"dx"`
	DY     float32 `yaml:"dy" toml:"dy"`
	Button string  `yaml:"button" toml:"button"`
	Code   string  `yaml:"code" toml:"code"`
	Text   string  `yaml:"text" toml:"text"`
	Path   string  `yaml:"path" toml:"path"`
	Op     string  `yaml:"op" toml:"op"`
	Target string  `yaml:"target" toml:"target"`
	Force  bool    `yaml:"force" toml:"force"`
	Ms     int     `yaml:"ms" toml:"ms"`
	Width  float32 `yaml:"width" toml:"width"`
	Height float32 `yaml:"height" toml:"height"`
}
