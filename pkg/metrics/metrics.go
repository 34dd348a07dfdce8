// Package metrics reports on a morphkit result after a pipeline stage has
// produced it: labels from a watershed flood or a boolean extrema/hole mask.
// It is read-only and participates in no operator's invariants.
package metrics

import (
	"gonum.org/v1/gonum/stat"

	"morphkit/pkg/ndarray"
	"morphkit/pkg/satmath"
)

// Report summarizes a labeled or boolean result: how many distinct regions
// it contains, how unevenly sized they are, and — for a watershed result —
// what fraction of cells fell on a watershed line.
type Report struct {
	// NumRegions is the count of distinct nonzero labels.
	NumRegions int

	// LabelEntropy is the Shannon entropy, in nats, of the label size
	// distribution. Zero when every foreground cell shares one label;
	// higher as cells are spread more evenly across more regions.
	LabelEntropy float64

	// LineFraction is the fraction of cells marked true in a watershed
	// lines mask, or 0 if none was supplied.
	LineFraction float64

	// Histogram maps each nonzero label to its cell count.
	Histogram map[int]int
}

// Compute builds a Report from a labeled result (e.g. watershed.Flood's
// output). lines may be nil.
func Compute[T satmath.Integer](labels ndarray.View[T], lines *ndarray.View[bool]) Report {
	hist := make(map[int]int)
	for flat := 0; flat < labels.Len(); flat++ {
		v := int(labels.AtFlat(flat))
		if v == 0 {
			continue
		}
		hist[v]++
	}

	probs := make([]float64, 0, len(hist))
	total := 0
	for _, n := range hist {
		total += n
	}
	if total > 0 {
		for _, n := range hist {
			probs = append(probs, float64(n)/float64(total))
		}
	}

	report := Report{
		NumRegions:   len(hist),
		LabelEntropy: stat.Entropy(probs),
		Histogram:    hist,
	}

	if lines != nil && lines.Len() > 0 {
		marked := 0
		for flat := 0; flat < lines.Len(); flat++ {
			if lines.AtFlat(flat) {
				marked++
			}
		}
		report.LineFraction = float64(marked) / float64(lines.Len())
	}

	return report
}

// ComputeBool builds a Report from a boolean mask (e.g. local/regional
// extrema or a hole-closing result), treating every true cell as belonging
// to label 1 and every false cell as unlabeled.
func ComputeBool(mask ndarray.View[bool]) Report {
	count := 0
	for flat := 0; flat < mask.Len(); flat++ {
		if mask.AtFlat(flat) {
			count++
		}
	}
	report := Report{Histogram: map[int]int{}}
	if count == 0 {
		return report
	}
	report.NumRegions = 1
	report.Histogram[1] = count
	report.LabelEntropy = stat.Entropy([]float64{1.0})
	return report
}
