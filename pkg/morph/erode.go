// Package morph implements the dense-array morphological operators: greyscale
// and binary erosion/dilation, local and regional extrema, hole closing,
// hit-or-miss, and the majority filter. The operators read their operands
// through pkg/ndarray and their structuring elements through pkg/se; the
// weighted greyscale Erode/Dilate reduce with pkg/satmath. They follow
// mahotas's _morph.cpp one operator at a time instead of one C++ template
// instantiation per dtype.
package morph

import (
	"sync"

	"morphkit/pkg/ndarray"
	"morphkit/pkg/satmath"
	"morphkit/pkg/se"
)

// Erode computes greyscale erosion from a precomputed structuring-element
// offset list: out[p] = min over on-offsets δ of offs of
// satmath.EroseSub(operand[clip(p+δ)], δ.Value). Build offs with se.Build to
// use the SE's literal cell values as subtrahends (a genuine structuring
// function), or with se.BuildFlat for ordinary flat/connectivity erosion.
//
// workers bounds the number of goroutines used to parallelize across the
// operand's flattened index space; workers <= 1 runs sequentially. Erode's
// gather formulation — every output cell only reads, never writes, the
// operand — is embarrassingly parallel and needs no synchronization beyond a
// WaitGroup.
func Erode[T satmath.Integer](out, operand ndarray.View[T], offs se.Offsets[T], workers int) error {
	const op = "erode"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}
	runGather(operand.Shape, workers, func(lo, hi int) {
		for flat := lo; flat < hi; flat++ {
			pos := operand.Pos(flat)
			interior := offs.Interior(pos, operand.Shape)
			acc := satmath.TypeMax[T]()
			for idx := range offs.List {
				v := offs.Get(operand, pos, flat, interior, idx)
				r := satmath.EroseSub(v, offs.List[idx].Value)
				if r < acc {
					acc = r
				}
			}
			out.SetFlat(flat, acc)
		}
	})
	return nil
}

// ErodeFlat computes flat (connectivity-only) greyscale erosion:
// out[p] = min over on-offsets δ of offs of operand[clip(p+δ)], with no
// weight applied. Build offs with se.BuildFlat.
//
// This is deliberately not expressed as Erode with every Value forced to
// the type's zero: EroseSub treats a weight equal to the type's minimum as
// "ignore this offset", and for every unsigned integer type the minimum is
// 0 — the same value a flat offset's weight would have to be. ErodeFlat
// sidesteps the collision by never calling EroseSub at all; it reduces raw
// neighbour values directly, the same way ErodeBool already does.
func ErodeFlat[T satmath.Integer](out, operand ndarray.View[T], offs se.Offsets[T], workers int) error {
	const op = "erode_flat"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}
	runGather(operand.Shape, workers, func(lo, hi int) {
		for flat := lo; flat < hi; flat++ {
			pos := operand.Pos(flat)
			interior := offs.Interior(pos, operand.Shape)
			acc := satmath.TypeMax[T]()
			for idx := range offs.List {
				v := offs.Get(operand, pos, flat, interior, idx)
				if v < acc {
					acc = v
				}
			}
			out.SetFlat(flat, acc)
		}
	})
	return nil
}

// ErodeBool computes binary erosion: out[p] is true iff operand[clip(p+δ)]
// is true for every on-offset δ of offs (built with se.Build or
// se.BuildFlat over a bool SE — membership is nonzero either way).
func ErodeBool(out, operand ndarray.View[bool], offs se.Offsets[bool], workers int) error {
	const op = "erode"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}
	runGather(operand.Shape, workers, func(lo, hi int) {
		for flat := lo; flat < hi; flat++ {
			pos := operand.Pos(flat)
			interior := offs.Interior(pos, operand.Shape)
			acc := true
			for idx := range offs.List {
				v := offs.Get(operand, pos, flat, interior, idx)
				acc = satmath.EroseSubBool(acc, v)
				if !acc {
					break
				}
			}
			out.SetFlat(flat, acc)
		}
	})
	return nil
}

// runGather splits [0, product(shape)) into contiguous chunks along the
// flattened index space and runs work on each chunk, using workers
// goroutines. Grounded on the teacher's processSubVolumesInParallel: a fixed
// worker count, each given a contiguous slice of the problem, joined by a
// single WaitGroup.
func runGather(shape []int, workers int, work func(lo, hi int)) {
	n := 1
	for _, s := range shape {
		n *= s
	}
	if workers <= 1 || n < workers {
		work(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			work(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
