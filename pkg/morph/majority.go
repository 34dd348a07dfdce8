package morph

import (
	"morphkit/pkg/ndarray"
)

// MajorityFilter computes the 2-D boolean majority filter: out[r][c] is true
// iff at least ⌊N²/2⌋ of the N×N window centred at (r, c) are true, for every
// window fully inside the array. N must be odd. Any row or column within
// ⌊N/2⌋ of an edge — where the centred window would run off the array — is
// forced to false, the same boundary policy hit-or-miss uses and for the
// same reason: a majority vote over a clipped window isn't the filter this
// operator promises.
func MajorityFilter(out, operand ndarray.View[bool], n int) error {
	const op = "majority"
	if err := validateShapesMatch(op, out, operand); err != nil {
		return err
	}
	if err := validateCContiguous(op, out); err != nil {
		return err
	}
	if len(operand.Shape) != 2 {
		return invalidArg(op, "majority filter operates on 2-D arrays only")
	}
	if n <= 0 || n%2 == 0 {
		return invalidArg(op, "window size must be odd and positive")
	}

	rows, cols := operand.Shape[0], operand.Shape[1]
	margin := n / 2
	threshold := (n * n) / 2

	for flat := 0; flat < out.Len(); flat++ {
		out.SetFlat(flat, false)
	}

	if rows < n || cols < n {
		return nil
	}

	for r := margin; r < rows-margin; r++ {
		for c := margin; c < cols-margin; c++ {
			count := 0
			for dr := -margin; dr <= margin; dr++ {
				for dc := -margin; dc <= margin; dc++ {
					if operand.At([]int{r + dr, c + dc}) {
						count++
					}
				}
			}
			out.Set([]int{r, c}, count >= threshold)
		}
	}
	return nil
}
