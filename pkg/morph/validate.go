package morph

import "morphkit/pkg/ndarray"

// validateShapesMatch and validateCContiguous cover the precondition checks
// that don't already happen inside se.Build/se.BuildFlat/se.BuildTernary —
// those report their own dimensionality-mismatch error directly, which
// callers such as se.BuildTernary's consumers surface as-is or wrap.
//
// Every operator validates output contiguity, not only the ones spec.md §6
// names for it: every write path goes through ndarray.View.SetFlat or
// direct data indexing, both of which address the backing slice by a flat
// index derived from the canonical row-major shape rather than the view's
// actual Strides (see DESIGN.md).

func validateShapesMatch[U, T any](op string, out ndarray.View[U], operand ndarray.View[T]) error {
	if !ndarray.SameShape(out, operand) {
		return invalidArg(op, "output shape must match operand shape")
	}
	return nil
}

func validateCContiguous[T any](op string, out ndarray.View[T]) error {
	if !out.IsCContiguous() {
		return invalidArg(op, "output array must be C-contiguous")
	}
	return nil
}
