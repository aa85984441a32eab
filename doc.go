// Package epcgg partitions the edge set of a complete straight-line
// (geometric) graph into plane spanning trees or plane subgraphs.
//
// 🚀 What is edge-partitions-cgg?
//
//	A library around one question: given n points in general position,
//	can the C(n,2) straight edges be split into k color classes so that
//	no two crossing edges share a color — and, optionally, so that each
//	class is a plane spanning tree?
//
// The pipeline, leaves first:
//
//	geometry/ — exact orientation, collinearity and proper-crossing
//	            predicates (the numeric kernel everything rests on)
//	crossing/ — the complete edge set over a point set, annotated with
//	            every pairwise crossing (dense-id arena, index lists)
//	pointset/ — six point-set generators: convex position, bumpy wheel,
//	            generalized wheel, uniform random, random wheel and two
//	            convex layers; every generator returns a fully
//	            crossing-annotated graph
//	cycles/   — triangle and quadrilateral enumeration for the
//	            forbidden-cycle constraints
//	ilp/      — translation of crossings + coloring rules into a linear
//	            0/1 constraint system, the external-solver contract, and
//	            a small exact branch-and-bound reference engine
//	verify/   — post-hoc plane-spanning-tree checks per color class
//	result/   — durable YAML run records and overview logs
//	render/   — per-color-class SVG export
//	solve/    — the orchestration seam tying the above together
//
// The cmd/epcgg binary exposes the whole pipeline behind a small
// command surface (partition a chosen point set, or run randomized
// experiments in a loop).
//
// Everything randomized takes an explicit seed; identical inputs and
// seeds produce identical graphs, models and artifacts.
package epcgg
