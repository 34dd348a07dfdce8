package morph

import (
	"testing"

	"morphkit/pkg/ndarray"
	"morphkit/pkg/se"
)

func ones3x3Uint8() ndarray.View[uint8] {
	return ndarray.New([]int{3, 3}, []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1})
}

func TestLocalMinimaMarksOnlyTheSingleDip(t *testing.T) {
	operand := ndarray.New([]int{3, 3}, []uint8{
		2, 2, 2,
		2, 1, 2,
		2, 2, 2,
	})
	out := ndarray.New([]int{3, 3}, make([]bool, 9))
	offs, err := se.BuildFlat(ones3x3Uint8(), operand)
	if err != nil {
		t.Fatalf("se.BuildFlat returned error: %v", err)
	}
	if err := LocalExtrema(out, operand, offs, true); err != nil {
		t.Fatalf("LocalExtrema returned error: %v", err)
	}
	for flat := 0; flat < out.Len(); flat++ {
		want := flat == 4 // (1,1)
		if out.AtFlat(flat) != want {
			t.Errorf("flat idx %d: got %v, want %v", flat, out.AtFlat(flat), want)
		}
	}
}

func TestLocalExtremaMarksPlateausEntirely(t *testing.T) {
	// Equal-valued neighbours never disqualify — the whole flat plateau at
	// value 1 qualifies as locally minimal against the bordering 2s.
	operand := ndarray.New([]int{2, 3}, []uint8{
		1, 1, 2,
		1, 1, 2,
	})
	out := ndarray.New([]int{2, 3}, make([]bool, 6))
	offs, err := se.BuildFlat(cross3x3Uint8(), operand)
	if err != nil {
		t.Fatalf("se.BuildFlat returned error: %v", err)
	}
	if err := LocalExtrema(out, operand, offs, true); err != nil {
		t.Fatalf("LocalExtrema returned error: %v", err)
	}
	for _, pos := range [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		if !out.At(pos) {
			t.Errorf("plateau cell %v should be marked minimal", pos)
		}
	}
	for _, pos := range [][]int{{0, 2}, {1, 2}} {
		if out.At(pos) {
			t.Errorf("cell %v holds the strictly larger value, should not be marked", pos)
		}
	}
}

func TestLocalMaximaUsesOppositeOrdering(t *testing.T) {
	operand := ndarray.New([]int{3, 3}, []uint8{
		1, 1, 1,
		1, 9, 1,
		1, 1, 1,
	})
	out := ndarray.New([]int{3, 3}, make([]bool, 9))
	offs, err := se.BuildFlat(ones3x3Uint8(), operand)
	if err != nil {
		t.Fatalf("se.BuildFlat returned error: %v", err)
	}
	if err := LocalExtrema(out, operand, offs, false); err != nil {
		t.Fatalf("LocalExtrema returned error: %v", err)
	}
	if !out.At([]int{1, 1}) {
		t.Error("centre peak should be marked a local maximum")
	}
	if out.At([]int{0, 0}) {
		t.Error("corner should not be marked: it sees the strictly larger centre")
	}
}
