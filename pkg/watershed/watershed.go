// Package watershed implements seeded priority-queue flooding: grown from
// marker cells outward along the operand's rising altitude, producing a
// labeled partition and, optionally, the boundaries where two markers'
// fronts first collide at equal cost.
package watershed

import (
	"container/heap"

	"morphkit/pkg/morph"
	"morphkit/pkg/ndarray"
	"morphkit/pkg/satmath"
	"morphkit/pkg/se"
)

func invalidArg(op, msg string) error {
	return &morph.Error{Kind: morph.InvalidArgument, Op: op, Msg: msg}
}

// Flood computes the constrained watershed of f, seeded from markers (0 is
// unmarked, nonzero is a propagated label), under offs's connectivity.
// out receives the labeled partition; lines, if non-nil, receives true at
// every cell first contested between two distinct labels at equal or lower
// altitude. f, markers, and out must share shape and element type.
//
// No seed is a legal input: out is left all-zero.
func Flood[T satmath.Integer](out, f, markers ndarray.View[T], offs se.Offsets[T], lines *ndarray.View[bool]) error {
	const op = "watershed"
	if !ndarray.SameShape(out, f) || !ndarray.SameShape(f, markers) {
		return invalidArg(op, "f, markers, and out must share shape")
	}
	if !out.IsCContiguous() {
		return invalidArg(op, "output array must be C-contiguous")
	}
	if lines != nil && !ndarray.SameShape(*lines, f) {
		return invalidArg(op, "lines must share shape with f")
	}

	n := f.Len()
	for flat := 0; flat < n; flat++ {
		out.SetFlat(flat, 0)
	}
	if lines != nil {
		for flat := 0; flat < n; flat++ {
			lines.SetFlat(flat, false)
		}
	}

	cost := make([]T, n)
	for i := range cost {
		cost[i] = satmath.TypeMax[T]()
	}
	visited := make([]bool, n)

	var pq priorityQueue[T]
	nextIdx := 0

	for flat := 0; flat < n; flat++ {
		label := markers.AtFlat(flat)
		if label == 0 {
			continue
		}
		cost[flat] = f.AtFlat(flat)
		out.SetFlat(flat, label)
		heap.Push(&pq, item[T]{
			cost:   cost[flat],
			idx:    nextIdx,
			flat:   flat,
			margin: se.Margin(f.Pos(flat), f.Shape),
		})
		nextIdx++
	}

	shape := f.Shape
	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(item[T])
		p := cur.flat
		if visited[p] {
			continue
		}
		visited[p] = true

		for _, off := range offs.List {
			var qFlat, qMargin int
			if cur.margin >= off.Reach {
				qFlat = p + off.FlatDelta
				qMargin = cur.margin - off.Reach
			} else {
				qpos := make([]int, len(shape))
				pos := f.Pos(p)
				for d := range pos {
					qpos[d] = pos[d] + off.Coord[d]
				}
				if !f.InBounds(qpos) {
					continue
				}
				qFlat = f.Flat(qpos)
				qMargin = se.Margin(qpos, shape)
			}

			if visited[qFlat] {
				continue
			}
			if f.AtFlat(qFlat) < cost[qFlat] {
				cost[qFlat] = f.AtFlat(qFlat)
				out.SetFlat(qFlat, out.AtFlat(p))
				heap.Push(&pq, item[T]{
					cost:   cost[qFlat],
					idx:    nextIdx,
					flat:   qFlat,
					margin: qMargin,
				})
				nextIdx++
			} else if lines != nil && out.AtFlat(qFlat) != 0 && out.AtFlat(qFlat) != out.AtFlat(p) && !lines.AtFlat(qFlat) {
				lines.SetFlat(qFlat, true)
			}
		}
	}

	return nil
}
