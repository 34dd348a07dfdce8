package ndarray

import "testing"

func TestFlatPosRoundTrip(t *testing.T) {
	shape := []int{3, 4, 5}
	data := make([]int, 3*4*5)
	v := New(shape, data)

	for flat := 0; flat < v.Len(); flat++ {
		pos := v.Pos(flat)
		if len(pos) != len(shape) {
			t.Fatalf("Pos(%d) returned rank %d, want %d", flat, len(pos), len(shape))
		}
		if got := v.Flat(pos); got != flat {
			t.Errorf("Flat(Pos(%d)) = %d, want %d", flat, got, flat)
		}
	}
}

func TestInBounds(t *testing.T) {
	v := New([]int{2, 3}, make([]int, 6))

	cases := []struct {
		pos  []int
		want bool
	}{
		{[]int{0, 0}, true},
		{[]int{1, 2}, true},
		{[]int{2, 0}, false},
		{[]int{0, 3}, false},
		{[]int{-1, 0}, false},
		{[]int{0}, false},
	}
	for _, c := range cases {
		if got := v.InBounds(c.pos); got != c.want {
			t.Errorf("InBounds(%v) = %v, want %v", c.pos, got, c.want)
		}
	}
}

func TestClipNearestEdge(t *testing.T) {
	v := New([]int{4, 4}, make([]int, 16))

	cases := []struct {
		pos  []int
		want []int
	}{
		{[]int{-1, -5}, []int{0, 0}},
		{[]int{5, 2}, []int{3, 2}},
		{[]int{1, 1}, []int{1, 1}},
	}
	for _, c := range cases {
		got := v.Clip(c.pos)
		for d := range got {
			if got[d] != c.want[d] {
				t.Errorf("Clip(%v) = %v, want %v", c.pos, got, c.want)
				break
			}
		}
	}
}

func TestAtSetRoundTrip(t *testing.T) {
	v := New([]int{2, 2}, make([]int, 4))
	v.Set([]int{1, 0}, 42)
	if got := v.At([]int{1, 0}); got != 42 {
		t.Errorf("At([1,0]) = %d, want 42", got)
	}
	if got := v.AtFlat(v.Flat([]int{1, 0})); got != 42 {
		t.Errorf("AtFlat(Flat([1,0])) = %d, want 42", got)
	}
}

func TestValidateCatchesShapeDataMismatch(t *testing.T) {
	v := New([]int{2, 2}, make([]int, 3))
	if err := v.Validate(); err == nil {
		t.Fatal("expected Validate to reject a shape/data length mismatch")
	}
}

func TestIsCContiguous(t *testing.T) {
	v := New([]int{2, 3}, make([]int, 6))
	if !v.IsCContiguous() {
		t.Error("View built by New should be C-contiguous")
	}
	v.Strides = []int{1, 2}
	if v.IsCContiguous() {
		t.Error("transposed strides should not be reported as C-contiguous")
	}
}
