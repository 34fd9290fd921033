// Package loader builds scenes from YAML or TOML documents.
//
// A document declares the viewport, the variables, the element tree and an
// optional script of input steps:
//
//	version: "1.0"
//	viewport: {width: 800, height: 600}
//	variables:
//	  - {name: half, kind: normal}
//	root:
//	  procedures:
//	    - {set: half, value: viewport.width.half}
//	  children:
//	    - label: button
//	      width: $half
//	      height: 40
//	      color: "#3366ff"
//	      listeners:
//	        - {on: click, kind: listen, message: pressed}
//	script:
//	  - {action: click, x: 400, y: 300}
//
// Values are numbers (pixels), the words zero and time, $name variable
// reads, ref.scalar[.portion] queries such as parent.width.half, or maps for
// the remaining forms: {px}, {of, scalar, portion, amount}, {var},
// {set, value}, {add: [...]}, {mul: [...]}, {sub: [a, b]}, {neg} and
// {debug, value}.
package loader
