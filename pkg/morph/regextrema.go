package morph

import (
	"morphkit/pkg/ndarray"
	"morphkit/pkg/satmath"
	"morphkit/pkg/se"

	"morphkit/internal/flood"
)

// RegionalExtrema computes the connected plateaus of local extrema that are
// not adjacent to any strictly-better cell outside the plateau. It first
// computes local extrema, then — for every still-marked cell with an
// *unmarked* SE neighbour whose value disqualifies the plateau (≤ for
// minima, ≥ for maxima; non-strict, since an unmarked neighbour at the same
// value cannot itself be extremal and so indicates a descending path out of
// the plateau) — clears that cell's entire SE-connected marked component via
// an explicit-stack flood fill.
func RegionalExtrema[T satmath.Integer](out ndarray.View[bool], operand ndarray.View[T], offs se.Offsets[T], isMin bool) error {
	const op = "regmin_max"
	if err := LocalExtrema(out, operand, offs, isMin); err != nil {
		return &Error{Kind: InvalidArgument, Op: op, Msg: "local extrema pass failed", Err: err}
	}

	var seeds []int
	for flat := 0; flat < operand.Len(); flat++ {
		if !out.AtFlat(flat) {
			continue
		}
		pos := operand.Pos(flat)
		cur := operand.AtFlat(flat)
		for _, off := range offs.List {
			nFlat := neighborFlat(operand, pos, off.Coord)
			if out.AtFlat(nFlat) {
				continue // disqualification only comes from an unmarked neighbour
			}
			if disqualifies(operand.AtFlat(nFlat), cur, isMin) {
				seeds = append(seeds, flat)
				break
			}
		}
	}

	cleared := make([]bool, operand.Len())
	flood.Run(seeds, func(p int, push func(int)) {
		if cleared[p] || !out.AtFlat(p) {
			return
		}
		cleared[p] = true
		out.SetFlat(p, false)
		pos := operand.Pos(p)
		for _, off := range offs.List {
			nFlat := neighborFlat(operand, pos, off.Coord)
			if out.AtFlat(nFlat) && !cleared[nFlat] {
				push(nFlat)
			}
		}
	})
	return nil
}

// neighborFlat resolves pos+delta to a flat index under nearest-edge clip.
func neighborFlat[T any](view ndarray.View[T], pos, delta []int) int {
	npos := make([]int, len(pos))
	for d := range pos {
		npos[d] = pos[d] + delta[d]
	}
	return view.Flat(view.Clip(npos))
}

// disqualifies is the non-strict "q is at least as good as p" test that
// rules out p's plateau: ≤ for minima, ≥ for maxima.
func disqualifies[T satmath.Integer](q, p T, isMin bool) bool {
	if isMin {
		return q <= p
	}
	return q >= p
}
