package core

// EnqueueResult tells the caller whether a ready queue accepted an index.
type EnqueueResult int

const (
	Enqueued EnqueueResult = iota
	RejectedFull
)

func (r EnqueueResult) String() string {
	switch r {
	case Enqueued:
		return "enqueued"
	case RejectedFull:
		return "rejected-full"
	default:
		return "unknown"
	}
}

// ReadyQueue is a fixed capacity ring of process indices. It never grows:
// inserting into a full queue is refused, not blocked.
type ReadyQueue struct {
	slots []int
	front int
	rear  int
	count int
}

func NewReadyQueue(capacity int) *ReadyQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &ReadyQueue{slots: make([]int, capacity)}
}

func (q *ReadyQueue) Enqueue(idx int) EnqueueResult {
	if q.Full() {
		return RejectedFull
	}
	q.slots[q.rear] = idx
	q.rear = (q.rear + 1) % len(q.slots)
	q.count++
	return Enqueued
}

func (q *ReadyQueue) Dequeue() (int, bool) {
	if q.Empty() {
		return 0, false
	}
	idx := q.slots[q.front]
	q.front = (q.front + 1) % len(q.slots)
	q.count--
	return idx, true
}

// Front returns the head index without releasing its slot.
func (q *ReadyQueue) Front() (int, bool) {
	if q.Empty() {
		return 0, false
	}
	return q.slots[q.front], true
}

func (q *ReadyQueue) Len() int    { return q.count }
func (q *ReadyQueue) Cap() int    { return len(q.slots) }
func (q *ReadyQueue) Empty() bool { return q.count == 0 }
func (q *ReadyQueue) Full() bool  { return q.count == len(q.slots) }
