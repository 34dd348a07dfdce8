package morph

import (
	"math/rand"

	"morphkit/pkg/ndarray"
	"morphkit/pkg/se"
)

// HitMiss computes the hit-or-miss transform: out[p] is the caller's hit
// value iff, for every non-don't-care SE cell δ (offs built with
// se.BuildTernary), operand[p+δ] equals the SE's value at δ — and the
// caller's miss value otherwise. Unlike every other operator in this
// package, out-of-range reads are not extended to the nearest edge: any
// cell within ⌊SE.shape/2⌋ of an edge is forced to miss, since a true
// exact-match template cannot be honestly evaluated against a clipped
// neighbour.
//
// shuffle, when true, visits offs.List in a randomized order per call. This
// only changes which non-matching offset trips the early exit first — a
// performance knob for textured inputs with many near-misses — and must
// never be observable in the output; see TestHitMissShuffleDoesNotChangeResult.
func HitMiss[T comparable](out, operand ndarray.View[T], offs se.Offsets[T], hit, miss T, shuffle bool) error {
	const op = "hitmiss"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}

	order := make([]int, len(offs.List))
	for i := range order {
		order[i] = i
	}
	if shuffle {
		rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	for flat := 0; flat < operand.Len(); flat++ {
		pos := operand.Pos(flat)
		if !offs.Interior(pos, operand.Shape) {
			out.SetFlat(flat, miss)
			continue
		}
		matched := true
		for _, idx := range order {
			off := offs.List[idx]
			npos := make([]int, len(pos))
			for d := range pos {
				npos[d] = pos[d] + off.Coord[d]
			}
			if !operand.InBounds(npos) || operand.At(npos) != off.Value {
				matched = false
				break
			}
		}
		if matched {
			out.SetFlat(flat, hit)
		} else {
			out.SetFlat(flat, miss)
		}
	}
	return nil
}
