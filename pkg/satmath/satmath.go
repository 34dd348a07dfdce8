// Package satmath implements the saturating min-plus / max-plus arithmetic
// that lets greyscale erosion and dilation express minus-infinity /
// plus-infinity semantics over bounded integer types. It is the Go-generics
// counterpart of mahotas's erode_sub/dilate_add templates: one code path
// parameterized over the element's numeric traits instead of a C++ template
// instantiated per dtype.
package satmath

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the element-type constraint for every morphkit operator that
// works in the integer domain: any signed or unsigned integer kind accepted
// by constraints.Integer, the platform-sized int, uint and uintptr included.
// Boolean arrays use the dedicated *Bool functions below instead.
type Integer interface {
	constraints.Integer
}

func typeBits[T Integer]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// isSigned detects signedness without a type switch: decrementing a zero
// unsigned value wraps to the type's maximum, so it never tests negative.
func isSigned[T Integer]() bool {
	var z T
	z--
	return z < 0
}

// TypeMin returns the minimum value representable by T.
func TypeMin[T Integer]() T {
	if isSigned[T]() {
		return -TypeMax[T]() - 1
	}
	return 0
}

// TypeMax returns the maximum value representable by T.
func TypeMax[T Integer]() T {
	if isSigned[T]() {
		bits := typeBits[T]()
		return T(1)<<(bits-1) - 1
	}
	var max T
	max--
	return max
}

// EroseSub is greyscale erosion's saturating subtraction. b at the type's
// minimum is treated as the min-plus algebra's -infinity — the SE offset
// contributes nothing to the min-reduce, so the result is the algebra's
// absorbing element, the type's maximum. Underflow saturates to 0 for
// unsigned types and to the type's minimum for signed types, rather than
// wrapping; a signed result above the type's range saturates to its maximum.
//
// The SE cell value is used directly as the subtrahend: morphkit's erosion
// treats the structuring element as a structuring *function*, not merely an
// indicator mask, matching mahotas's erode_sub.
func EroseSub[T Integer](a, b T) T {
	if b == TypeMin[T]() {
		return TypeMax[T]()
	}
	r := a - b
	if isSigned[T]() {
		if b > 0 && r > a {
			return TypeMin[T]()
		}
		if b < 0 && r < a {
			return TypeMax[T]()
		}
		return r
	}
	if b > a {
		return 0
	}
	return r
}

// EroseSubBool is the boolean specialization of EroseSub: a ∧ b.
func EroseSubBool(a, b bool) bool { return a && b }

// DilateAdd is greyscale dilation's saturating addition. Either operand at
// the type's minimum is treated as -infinity — this position contributes
// nothing to the max-reduce — and the result is the type's minimum.
// Overflow saturates to the type's maximum; a signed sum below the type's
// range saturates to its minimum.
func DilateAdd[T Integer](a, b T) T {
	min := TypeMin[T]()
	if a == min || b == min {
		return min
	}
	r := a + b
	if b > 0 && r < a {
		return TypeMax[T]()
	}
	if b < 0 && r > a {
		return min
	}
	return r
}

// DilateAddBool is the boolean specialization of DilateAdd: a ∧ b. The
// outer max-reduce over SE offsets — the operation that actually behaves
// like a union — happens one layer up, in the caller's reduction loop;
// DilateAddBool is only the per-offset combine.
func DilateAddBool(a, b bool) bool { return a && b }
