// SPDX-License-Identifier: MIT
// Package: epcgg/render
//
// render.go — SVG documents for colored crossing graphs.
//
// Contract:
//   - Pure drawing: the graph is read, never mutated.
//   - One <line> per drawn edge, one <circle> per point, deterministic
//     element order (edges in id order, then points in id order).
//   - Writer errors surface through the final flush; svgo buffers into
//     the writer directly, so callers pass bytes.Buffer or a file.

package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo/float"

	"github.com/jogo23/edge-partitions-cgg/crossing"
)

const (
	canvasSize = 1000.0
	margin     = 50.0
	pointR     = 5.0
	edgeWidth  = 2.0
)

// Combined writes one SVG with every edge in its class color.
func Combined(w io.Writer, g *crossing.Graph) error {
	return draw(w, g, func(e *crossing.Edge) (string, bool) {
		return ClassColor(e.Color), true
	})
}

// ColorClass writes one SVG holding only the edges of class c.
func ColorClass(w io.Writer, g *crossing.Graph, c int) error {
	return draw(w, g, func(e *crossing.Edge) (string, bool) {
		return ClassColor(c), e.Color == c
	})
}

// WriteAll writes the combined document plus one per class under dir,
// named "<prefix>_combined.svg" and "<prefix>_class_<c>.svg". It
// returns the written paths in that order.
func WriteAll(dir, prefix string, g *crossing.Graph, k int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("WriteAll: %w", err)
	}

	paths := make([]string, 0, k+1)
	write := func(name string, fn func(io.Writer) error) error {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("WriteAll: %w", err)
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("WriteAll: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("WriteAll: %w", err)
		}
		paths = append(paths, path)
		return nil
	}

	if err := write(prefix+"_combined.svg", func(w io.Writer) error {
		return Combined(w, g)
	}); err != nil {
		return nil, err
	}
	for c := 0; c < k; c++ {
		if err := write(fmt.Sprintf("%s_class_%d.svg", prefix, c), func(w io.Writer) error {
			return ColorClass(w, g, c)
		}); err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// draw renders the shared document skeleton; style selects per edge the
// stroke color and whether the edge appears at all.
func draw(w io.Writer, g *crossing.Graph, style func(*crossing.Edge) (string, bool)) error {
	tx, ty := fit(g)

	canvas := svg.New(w)
	canvas.Start(canvasSize, canvasSize)

	for e := range g.Edges {
		stroke, visible := style(&g.Edges[e])
		if !visible {
			continue
		}
		p := g.Points[g.Edges[e].P]
		q := g.Points[g.Edges[e].Q]
		canvas.Line(tx(p.X), ty(p.Y), tx(q.X), ty(q.Y),
			fmt.Sprintf("stroke:%s;stroke-width:%v", stroke, edgeWidth))
	}

	for i := range g.Points {
		canvas.Circle(tx(g.Points[i].X), ty(g.Points[i].Y), pointR, "fill:black;stroke:none")
	}

	canvas.End()
	return nil
}

// fit maps graph coordinates onto the canvas: uniform scale, centered,
// y flipped so the plane's up is the screen's up.
func fit(g *crossing.Graph) (tx, ty func(float64) float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range g.Points {
		minX = math.Min(minX, g.Points[i].X)
		maxX = math.Max(maxX, g.Points[i].X)
		minY = math.Min(minY, g.Points[i].Y)
		maxY = math.Max(maxY, g.Points[i].Y)
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	scale := (canvasSize - 2*margin) / span

	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	tx = func(x float64) float64 { return canvasSize/2 + (x-cx)*scale }
	ty = func(y float64) float64 { return canvasSize/2 - (y-cy)*scale }
	return tx, ty
}
