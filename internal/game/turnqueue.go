package game

// TurnQueue holds the cyclic order in which seats act. A betting round pops
// the front, lets that seat act, and pushes it back, so one pass processes
// each enqueued seat exactly once. Folded and busted seats still rotate
// through without acting.
type TurnQueue struct {
	indices []int
}

// NewTurnQueue creates a queue over seats 0..n-1 in order.
func NewTurnQueue(n int) *TurnQueue {
	q := &TurnQueue{indices: make([]int, n)}
	for i := range q.indices {
		q.indices[i] = i
	}
	return q
}

// Len returns the number of seats in the queue.
func (q *TurnQueue) Len() int {
	return len(q.indices)
}

// Pop removes and returns the front seat index.
func (q *TurnQueue) Pop() (int, bool) {
	if len(q.indices) == 0 {
		return 0, false
	}
	front := q.indices[0]
	q.indices = q.indices[1:]
	return front, true
}

// Push appends a seat index to the back of the queue.
func (q *TurnQueue) Push(seat int) {
	q.indices = append(q.indices, seat)
}
