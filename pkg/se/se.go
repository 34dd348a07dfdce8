// Package se abstracts the structuring-element offset list every morphkit
// operator traverses: "for every cell p of the operand, for every on-offset
// δ of the SE, read the operand at p+δ under nearest-edge extension." It
// precomputes the on-offsets once per call and exposes the single retrieval
// primitive operators use so the fast (interior) and slow (boundary, clip)
// paths never have to be open-coded at each call site.
package se

import (
	"fmt"

	"morphkit/pkg/ndarray"
)

// Offset is one "on" cell of a structuring element, relative to its centre.
type Offset[T any] struct {
	// FlatDelta is the offset expressed in the operand's flat-index space;
	// valid only away from the boundary (see Offsets.AxisMargin).
	FlatDelta int
	// Coord is the offset's coordinate delta, used on the boundary slow
	// path and to recompute FlatDelta against a different view.
	Coord []int
	// Value is the structuring element's cell value at this offset: the
	// subtrahend/addend for greyscale erode/dilate, the expected value for
	// hit-or-miss, and otherwise unused.
	Value T
	// Reach is the Chebyshev norm of Coord: how far this single offset
	// travels from the centre. Watershed uses it against a position's
	// distance-to-nearest-edge to decide whether the flat-delta fast path
	// is safe for that particular neighbour.
	Reach int
}

// Offsets is the structuring element's full on-offset list plus the
// boundary geometry needed to decide, for a given operand position, whether
// the fast (flat-delta) or slow (coordinate + clip) retrieval path applies.
type Offsets[T any] struct {
	Centre []int
	List   []Offset[T]
	// AxisMargin[d] = ⌊SE.Shape[d]/2⌋: a position is "interior" — safe for
	// the flat-delta fast path — when it is at least AxisMargin[d] away
	// from both edges of axis d, for every axis.
	AxisMargin []int
}

func centre(shape []int) []int {
	c := make([]int, len(shape))
	for d, s := range shape {
		c[d] = s / 2
	}
	return c
}

func chebyshev(coord []int) int {
	m := 0
	for _, c := range coord {
		a := c
		if a < 0 {
			a = -a
		}
		if a > m {
			m = a
		}
	}
	return m
}

// Build precomputes the on-offset list of a boolean/greyscale structuring
// element: every cell not equal to zero is "on". seView and the operand
// this Offsets will be used against must share dimensionality; operandView
// supplies the strides FlatDelta is computed against.
func Build[T comparable](seView ndarray.View[T], operandView ndarray.View[T]) (Offsets[T], error) {
	if len(seView.Shape) != len(operandView.Shape) {
		return Offsets[T]{}, fmt.Errorf("se: structuring element has %d dims, operand has %d", len(seView.Shape), len(operandView.Shape))
	}
	var zero T
	c := centre(seView.Shape)
	offs := Offsets[T]{Centre: c, AxisMargin: c}

	for flat := 0; flat < seView.Len(); flat++ {
		val := seView.AtFlat(flat)
		if val == zero {
			continue
		}
		pos := seView.Pos(flat)
		coord := make([]int, len(pos))
		for d := range pos {
			coord[d] = pos[d] - c[d]
		}
		offs.List = append(offs.List, Offset[T]{
			FlatDelta: operandView.Flat(coord),
			Coord:     coord,
			Value:     val,
			Reach:     chebyshev(coord),
		})
	}
	return offs, nil
}

// BuildTernary precomputes hit-or-miss's on-offset list from a ternary
// structuring element: 0 means "background required", 1 means "foreground
// required", 2 means "don't care" and is excluded from the list entirely.
func BuildTernary[T comparable](seView ndarray.View[T], operandView ndarray.View[T], dontCare T) (Offsets[T], error) {
	if len(seView.Shape) != len(operandView.Shape) {
		return Offsets[T]{}, fmt.Errorf("se: structuring element has %d dims, operand has %d", len(seView.Shape), len(operandView.Shape))
	}
	c := centre(seView.Shape)
	offs := Offsets[T]{Centre: c, AxisMargin: c}

	for flat := 0; flat < seView.Len(); flat++ {
		val := seView.AtFlat(flat)
		if val == dontCare {
			continue
		}
		pos := seView.Pos(flat)
		coord := make([]int, len(pos))
		for d := range pos {
			coord[d] = pos[d] - c[d]
		}
		offs.List = append(offs.List, Offset[T]{
			FlatDelta: operandView.Flat(coord),
			Coord:     coord,
			Value:     val,
			Reach:     chebyshev(coord),
		})
	}
	return offs, nil
}

// BuildFlat precomputes a *connectivity* structuring element's on-offset
// list: a cell is "on" iff its value is nonzero, exactly like Build, but the
// stored Value on every resulting offset is forced to the zero value of T
// rather than kept as the SE's literal cell value.
//
// This is the constructor erode/dilate's flat (indicator-only) callers want.
// Build's literal-value contract and a flat connectivity SE's nonzero-means-
// member contract collide for unsigned element types: erode_sub/dilate_add
// treat a weight equal to the type's minimum as "ignore this offset", and
// for unsigned types that minimum is 0 — so a flat on-cell weighted 0 would
// be indistinguishable from an excluded cell if Build's literal value were
// used directly. BuildFlat keeps membership and weight independent: nonzero
// decides membership, the flat weight is always 0, regardless of type
// signedness.
func BuildFlat[T comparable](seView ndarray.View[T], operandView ndarray.View[T]) (Offsets[T], error) {
	if len(seView.Shape) != len(operandView.Shape) {
		return Offsets[T]{}, fmt.Errorf("se: structuring element has %d dims, operand has %d", len(seView.Shape), len(operandView.Shape))
	}
	var zero T
	c := centre(seView.Shape)
	offs := Offsets[T]{Centre: c, AxisMargin: c}

	for flat := 0; flat < seView.Len(); flat++ {
		if seView.AtFlat(flat) == zero {
			continue
		}
		pos := seView.Pos(flat)
		coord := make([]int, len(pos))
		for d := range pos {
			coord[d] = pos[d] - c[d]
		}
		offs.List = append(offs.List, Offset[T]{
			FlatDelta: operandView.Flat(coord),
			Coord:     coord,
			Value:     zero,
			Reach:     chebyshev(coord),
		})
	}
	return offs, nil
}

// Interior reports whether pos is far enough from every edge of shape that
// every offset's FlatDelta fast path is safe (no clipping needed).
func (o Offsets[T]) Interior(pos []int, shape []int) bool {
	for d, p := range pos {
		if p < o.AxisMargin[d] || p >= shape[d]-o.AxisMargin[d] {
			return false
		}
	}
	return true
}

// Margin computes the Chebyshev distance from pos to the nearest edge of
// shape: min over axes of min(p[d], shape[d]-1-p[d]). Watershed caches this
// per cell to skip a boundary recomputation on most pops; the SE iterator's
// own interior test (Interior, above) is the same idea applied per-axis
// against the SE's reach rather than reduced to a single scalar.
func Margin(pos []int, shape []int) int {
	m := -1
	for d, p := range pos {
		left := p
		right := shape[d] - 1 - p
		axisMargin := left
		if right < axisMargin {
			axisMargin = right
		}
		if m == -1 || axisMargin < m {
			m = axisMargin
		}
	}
	return m
}

// Get retrieves the operand's value at pos+offset under nearest-edge
// extension. When interior is true (see Interior) it takes the flat-delta
// fast path; otherwise it falls back to coordinate arithmetic and clips
// into range. Both paths must agree on the interior — that agreement is a
// tested invariant, not just documented.
func (o Offsets[T]) Get(view ndarray.View[T], pos []int, flat int, interior bool, idx int) T {
	off := o.List[idx]
	if interior {
		return view.Data[flat+off.FlatDelta]
	}
	coord := make([]int, len(pos))
	for d := range pos {
		coord[d] = pos[d] + off.Coord[d]
	}
	return view.At(view.Clip(coord))
}
