// SPDX-License-Identifier: MIT
// Package: epcgg/render
//
// Package render draws colored crossing graphs as SVG.
//
// What lives here:
//   - Combined: every edge in its class color, one document.
//   - ColorClass: one color class in isolation.
//   - WriteAll: the combined view plus one file per class, under a
//     common prefix.
//
// The palette is a fixed constant table; class c always renders in the
// same color across documents and runs. Coordinates are fitted to the
// canvas with a uniform scale and a margin, so unit-circle sets and
// integer-grid sets both fill the frame.
package render
