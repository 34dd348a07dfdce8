// Package flood implements the explicit-stack flood fill shared by regional
// extrema cleanup and hole closing: both walk an SE-connected component
// from a seed set, driven entirely by a caller-supplied predicate, never by
// recursion (a recursive walk risks stack overflow on large arrays).
package flood

// Stack is a LIFO of flat positions.
type Stack struct {
	data []int
}

// Push adds p to the top of the stack.
func (s *Stack) Push(p int) { s.data = append(s.data, p) }

// Empty reports whether the stack has been drained.
func (s *Stack) Empty() bool { return len(s.data) == 0 }

// Pop removes and returns the top of the stack.
func (s *Stack) Pop() int {
	n := len(s.data) - 1
	p := s.data[n]
	s.data = s.data[:n]
	return p
}

// Run drains seeds, calling visit for every popped flat position. visit is
// responsible for its own visited-state bookkeeping and for pushing
// SE-connected neighbours that should continue the fill; Run only owns the
// stack.
func Run(seeds []int, visit func(p int, push func(int))) {
	stack := &Stack{data: append([]int(nil), seeds...)}
	for !stack.Empty() {
		p := stack.Pop()
		visit(p, stack.Push)
	}
}
