// Package sketch draws complex numbers as vectors on an Argand diagram.
//
// A [Scene] lists the numbers to draw together with the canvas size, scale
// and colors. Scenes come from [DefaultScene], from [New] with options, or
// from a YAML or TOML file via [LoadScene]:
//
//	width: 600
//	height: 600
//	unit: 10
//	stroke: "#ffffff64"
//	labels: cartesianS
//	vectors:
//	  - {re: -2, im: 2}
//	  - {mod: 3, arg: 4}
//	  - {re: -2, im: -2}
//
// [Render] draws a scene onto any gg.Context; [SavePNG], [WritePNG] and
// [RenderImage] create the context themselves.
package sketch
