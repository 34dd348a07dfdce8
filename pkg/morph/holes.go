package morph

import (
	"morphkit/pkg/ndarray"
	"morphkit/pkg/se"

	"morphkit/internal/flood"
)

// CloseHoles computes the complement of the background component reachable
// from the array border under SE-connectivity: the input with every
// enclosed background hole filled in. Seeds the flood from every false
// border cell, flood-fills false cells through offs's connectivity into a
// scratch "reached the border" mask F, then returns ¬F — true on the
// original foreground and on any background region F never reached.
func CloseHoles(out, ref ndarray.View[bool], offs se.Offsets[bool]) error {
	const op = "close_holes"
	if err := validateShapesMatch(op, out, ref); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}

	reached := make([]bool, ref.Len())
	var seeds []int
	for _, flat := range borderFlats(ref) {
		if !ref.AtFlat(flat) && !reached[flat] {
			reached[flat] = true
			seeds = append(seeds, flat)
		}
	}

	flood.Run(seeds, func(p int, push func(int)) {
		pos := ref.Pos(p)
		for _, off := range offs.List {
			nFlat := neighborFlat(ref, pos, off.Coord)
			if ref.AtFlat(nFlat) || reached[nFlat] {
				continue
			}
			reached[nFlat] = true
			push(nFlat)
		}
	})

	for flat := 0; flat < ref.Len(); flat++ {
		out.SetFlat(flat, !reached[flat])
	}
	return nil
}

// borderFlats enumerates every cell lying on any hyperface of any axis —
// where some coordinate is 0 or shape[d]-1 — without duplicating a cell that
// sits on more than one hyperface (a corner, for instance).
func borderFlats[T any](view ndarray.View[T]) []int {
	seen := make(map[int]bool)
	var out []int
	for d := range view.Shape {
		for _, face := range [2]int{0, view.Shape[d] - 1} {
			walkHyperface(view.Shape, d, face, func(pos []int) {
				flat := view.Flat(pos)
				if !seen[flat] {
					seen[flat] = true
					out = append(out, flat)
				}
			})
		}
	}
	return out
}

// walkHyperface enumerates every position of shape with coordinate d fixed
// to face, varying every other axis over its full range.
func walkHyperface(shape []int, d, face int, visit func(pos []int)) {
	pos := make([]int, len(shape))
	pos[d] = face
	var rec func(axis int)
	rec = func(axis int) {
		if axis == len(shape) {
			cp := make([]int, len(pos))
			copy(cp, pos)
			visit(cp)
			return
		}
		if axis == d {
			rec(axis + 1)
			return
		}
		for v := 0; v < shape[axis]; v++ {
			pos[axis] = v
			rec(axis + 1)
		}
	}
	rec(0)
}
