package morph

import (
	"morphkit/pkg/ndarray"
	"morphkit/pkg/satmath"
	"morphkit/pkg/se"
)

// Dilate computes greyscale dilation using the gather formulation:
// out[p] = max over on-offsets δ of offs of
// satmath.DilateAdd(operand[clip(p-δ)], δ.Value).
//
// This is mahotas's scatter dilate() read backwards into a gather: every
// output cell only reads the operand, so it parallelizes the same way Erode
// does. DilateScatter below is the direct mahotas-shaped translation and the
// two are required to agree — see TestDilateScatterGatherAgree.
func Dilate[T satmath.Integer](out, operand ndarray.View[T], offs se.Offsets[T], workers int) error {
	const op = "dilate"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}
	runGather(operand.Shape, workers, func(lo, hi int) {
		for flat := lo; flat < hi; flat++ {
			pos := operand.Pos(flat)
			acc := satmath.TypeMin[T]()
			for idx := range offs.List {
				v := gatherBack(operand, offs, pos, idx)
				r := satmath.DilateAdd(v, offs.List[idx].Value)
				if r > acc {
					acc = r
				}
			}
			out.SetFlat(flat, acc)
		}
	})
	return nil
}

// DilateFlat computes flat (connectivity-only) greyscale dilation:
// out[p] = max over on-offsets δ of offs of operand[clip(p-δ)], with no
// weight applied. Build offs with se.BuildFlat; see ErodeFlat for why this
// can't simply be Dilate with every Value forced to zero — DilateAdd treats
// a zero-valued operand as −∞ for unsigned types exactly where a flat
// weight would need to sit.
func DilateFlat[T satmath.Integer](out, operand ndarray.View[T], offs se.Offsets[T], workers int) error {
	const op = "dilate_flat"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}
	runGather(operand.Shape, workers, func(lo, hi int) {
		for flat := lo; flat < hi; flat++ {
			pos := operand.Pos(flat)
			acc := satmath.TypeMin[T]()
			for idx := range offs.List {
				v := gatherBack(operand, offs, pos, idx)
				if v > acc {
					acc = v
				}
			}
			out.SetFlat(flat, acc)
		}
	})
	return nil
}

// DilateBool computes binary dilation using the same gather formulation:
// out[p] is true iff operand[clip(p-δ)] is true for some on-offset δ. Unlike
// the greyscale Dilate, membership alone decides a neighbour's contribution
// — the SE's per-cell Value plays no role, mirroring ErodeBool's AND-reduce
// over raw neighbour values.
func DilateBool(out, operand ndarray.View[bool], offs se.Offsets[bool], workers int) error {
	const op = "dilate"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}
	runGather(operand.Shape, workers, func(lo, hi int) {
		for flat := lo; flat < hi; flat++ {
			pos := operand.Pos(flat)
			acc := false
			for idx := range offs.List {
				if gatherBack(operand, offs, pos, idx) {
					acc = true
					break
				}
			}
			out.SetFlat(flat, acc)
		}
	})
	return nil
}

// gatherBack reads operand at clip(pos-δ), the mirror of se.Offsets.Get's
// pos+δ. The FlatDelta fast path isn't reused here: it's only valid for +δ
// against the position it was measured from, and dilate's reflection would
// need a second, negated table to exploit it the same way erode does.
func gatherBack[T any](operand ndarray.View[T], offs se.Offsets[T], pos []int, idx int) T {
	off := offs.List[idx]
	reflected := make([]int, len(pos))
	for d := range pos {
		reflected[d] = pos[d] - off.Coord[d]
	}
	if operand.InBounds(reflected) {
		return operand.At(reflected)
	}
	return operand.At(operand.Clip(reflected))
}

// DilateScatter computes greyscale dilation the way mahotas's dilate()
// does: for every operand cell p and every on-offset δ, accumulate into
// out[clip(p+δ)] the max of its current value and DilateAdd(operand[p],
// δ.Value). Destination writes are clipped exactly like reads elsewhere in
// morphkit, so a structuring element that reaches past the edge still
// contributes at the boundary rather than being dropped. Sequential only:
// scatter writes to overlapping destinations and cannot be parallelized
// without per-cell locking.
func DilateScatter[T satmath.Integer](out, operand ndarray.View[T], offs se.Offsets[T]) error {
	const op = "dilate_scatter"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}
	min := satmath.TypeMin[T]()
	for i := range out.Data {
		out.Data[i] = min
	}
	for flat := 0; flat < operand.Len(); flat++ {
		pos := operand.Pos(flat)
		v := operand.AtFlat(flat)
		for _, off := range offs.List {
			dest := make([]int, len(pos))
			for d := range pos {
				dest[d] = pos[d] + off.Coord[d]
			}
			dest = out.Clip(dest)
			r := satmath.DilateAdd(v, off.Value)
			cur := out.At(dest)
			if r > cur {
				out.Set(dest, r)
			}
		}
	}
	return nil
}

// DilateScatterBool is DilateScatter's boolean specialization: it scatters
// a true source cell's value outward, ignoring the SE's per-cell Value just
// as DilateBool's gather does.
func DilateScatterBool(out, operand ndarray.View[bool], offs se.Offsets[bool]) error {
	const op = "dilate_scatter"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}
	for i := range out.Data {
		out.Data[i] = false
	}
	for flat := 0; flat < operand.Len(); flat++ {
		pos := operand.Pos(flat)
		if !operand.AtFlat(flat) {
			continue
		}
		for _, off := range offs.List {
			dest := make([]int, len(pos))
			for d := range pos {
				dest[d] = pos[d] + off.Coord[d]
			}
			out.Set(out.Clip(dest), true)
		}
	}
	return nil
}
