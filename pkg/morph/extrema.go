package morph

import (
	"morphkit/pkg/ndarray"
	"morphkit/pkg/satmath"
	"morphkit/pkg/se"
)

// LocalExtrema computes out[p] = true iff no SE neighbour of p holds a
// strictly better value than operand[p] — strictly less when isMin, strictly
// greater otherwise. Equal values never disqualify, so an entire plateau is
// marked; the centre is implicitly excluded from the comparison since a
// value is never strictly better than itself. offs should come from
// se.BuildFlat: only connectivity matters here, never an SE weight.
func LocalExtrema[T satmath.Integer](out ndarray.View[bool], operand ndarray.View[T], offs se.Offsets[T], isMin bool) error {
	const op = "locmin_max"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}
	for flat := 0; flat < operand.Len(); flat++ {
		pos := operand.Pos(flat)
		interior := offs.Interior(pos, operand.Shape)
		cur := operand.AtFlat(flat)
		extremal := true
		for idx := range offs.List {
			v := offs.Get(operand, pos, flat, interior, idx)
			if betterThan(v, cur, isMin) {
				extremal = false
				break
			}
		}
		out.SetFlat(flat, extremal)
	}
	return nil
}

// betterThan reports whether a is strictly better than b under isMin's
// ordering: strictly less for minima, strictly greater for maxima.
func betterThan[T satmath.Integer](a, b T, isMin bool) bool {
	if isMin {
		return a < b
	}
	return a > b
}
