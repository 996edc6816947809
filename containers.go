package aoc

// Queue is a FIFO queue. The zero value is ready to use.
type Queue[T any] struct {
	q    []T
	head int
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{q: in}
}

func (q *Queue[T]) Len() int {
	return len(q.q) - q.head
}

func (q *Queue[T]) Push(v T) {
	if q.head > 0 && q.head == len(q.q) {
		// Drained; reuse the backing array.
		q.q = q.q[:0]
		q.head = 0
	}
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	v := q.q[q.head]
	q.q[q.head] = zero
	q.head++
	return v, true
}

// While pops values and calls f until the queue is empty or f returns false.
// f may push more values.
func (q *Queue[T]) While(f func(T) bool) {
	for v, ok := q.Pop(); ok; v, ok = q.Pop() {
		if !f(v) {
			return
		}
	}
}

// Stack is a LIFO stack. The zero value is ready to use.
type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.s) == 0 {
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s[len(s.s)-1] = zero
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

// Values returns the stack contents from bottom to top. The slice aliases the
// stack and is only valid until the next Push or Pop.
func (s *Stack[T]) Values() []T {
	return s.s
}
