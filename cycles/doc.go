// Package cycles enumerates the short simple cycles used by the
// forbidden-cycle constraints: every triangle over a vertex set, and
// every quadrilateral in all three of its combinatorially distinct
// labelings.
//
// A cycle is a vertex-id tuple read cyclically (the last vertex connects
// back to the first). For a 4-subset {a,b,c,d} the three emitted orders
// (a,b,c,d), (a,b,d,c) and (a,d,b,c) correspond to the three ways of
// pairing the four vertices into opposite (diagonal) pairs; all three are
// geometrically distinct cycles on the same vertices and all three must
// be forbidden to exclude monochromatic quadrilaterals.
package cycles
