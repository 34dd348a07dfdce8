package satmath

import (
	"math"
	"testing"
)

func TestTypeMinMaxInt8(t *testing.T) {
	if got := TypeMin[int8](); got != math.MinInt8 {
		t.Errorf("TypeMin[int8]() = %d, want %d", got, math.MinInt8)
	}
	if got := TypeMax[int8](); got != math.MaxInt8 {
		t.Errorf("TypeMax[int8]() = %d, want %d", got, math.MaxInt8)
	}
}

func TestTypeMinMaxUint16(t *testing.T) {
	if got := TypeMin[uint16](); got != 0 {
		t.Errorf("TypeMin[uint16]() = %d, want 0", got)
	}
	if got := TypeMax[uint16](); got != math.MaxUint16 {
		t.Errorf("TypeMax[uint16]() = %d, want %d", got, math.MaxUint16)
	}
}

func TestTypeMinMaxInt64(t *testing.T) {
	if got := TypeMin[int64](); got != math.MinInt64 {
		t.Errorf("TypeMin[int64]() = %d, want %d", got, math.MinInt64)
	}
	if got := TypeMax[int64](); got != math.MaxInt64 {
		t.Errorf("TypeMax[int64]() = %d, want %d", got, math.MaxInt64)
	}
}

func TestEroseSubAbsorbingSubtrahend(t *testing.T) {
	// b at the type minimum means "ignore this SE offset": result is the
	// algebra's absorbing element for the min-reduce, the type maximum.
	if got := EroseSub[uint8](5, TypeMin[uint8]()); got != TypeMax[uint8]() {
		t.Errorf("EroseSub(5, TypeMin) = %d, want TypeMax", got)
	}
}

func TestEroseSubUnsignedUnderflowClampsToZero(t *testing.T) {
	if got := EroseSub[uint8](1, 5); got != 0 {
		t.Errorf("EroseSub(1, 5) = %d, want 0", got)
	}
}

func TestEroseSubSignedUnderflowClampsToMin(t *testing.T) {
	got := EroseSub[int8](-120, 100)
	if got != TypeMin[int8]() {
		t.Errorf("EroseSub(-120, 100) = %d, want %d", got, TypeMin[int8]())
	}
}

func TestEroseSubOrdinary(t *testing.T) {
	if got := EroseSub[uint8](10, 3); got != 7 {
		t.Errorf("EroseSub(10, 3) = %d, want 7", got)
	}
}

func TestDilateAddAbsorbingOperand(t *testing.T) {
	if got := DilateAdd[uint8](TypeMin[uint8](), 5); got != TypeMin[uint8]() {
		t.Errorf("DilateAdd(TypeMin, 5) = %d, want TypeMin", got)
	}
	if got := DilateAdd[uint8](5, TypeMin[uint8]()); got != TypeMin[uint8]() {
		t.Errorf("DilateAdd(5, TypeMin) = %d, want TypeMin", got)
	}
}

func TestDilateAddOverflowSaturates(t *testing.T) {
	if got := DilateAdd[uint8](200, 100); got != TypeMax[uint8]() {
		t.Errorf("DilateAdd(200, 100) = %d, want TypeMax", got)
	}
}

func TestDilateAddOrdinary(t *testing.T) {
	if got := DilateAdd[uint8](10, 3); got != 13 {
		t.Errorf("DilateAdd(10, 3) = %d, want 13", got)
	}
}

func TestBoolSpecializations(t *testing.T) {
	cases := []struct{ a, b, want bool }{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}
	for _, c := range cases {
		if got := EroseSubBool(c.a, c.b); got != c.want {
			t.Errorf("EroseSubBool(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
		if got := DilateAddBool(c.a, c.b); got != c.want {
			t.Errorf("DilateAddBool(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
