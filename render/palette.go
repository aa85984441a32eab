// SPDX-License-Identifier: MIT
// Package: epcgg/render
//
// palette.go — the fixed class-color table.

package render

// palette maps color classes to SVG stroke colors. Classes beyond the
// table wrap around.
var palette = [...]string{
	"#1f77b4", // blue
	"#d62728", // red
	"#2ca02c", // green
	"#ff7f0e", // orange
	"#9467bd", // purple
	"#8c564b", // brown
	"#e377c2", // pink
	"#7f7f7f", // gray
	"#bcbd22", // olive
	"#17becf", // cyan
}

// uncoloredStroke renders edges that never received a class.
const uncoloredStroke = "#c0c0c0"

// ClassColor returns the stable stroke color of class c. Negative
// classes (uncolored edges) get the neutral stroke.
func ClassColor(c int) string {
	if c < 0 {
		return uncoloredStroke
	}
	return palette[c%len(palette)]
}
