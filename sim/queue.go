// Implements the ReadyQueue, which holds all arrived tasks waiting for a core,
// and the ArrivalQueue, which holds generated tasks that have not arrived yet.

package sim

import (
	"container/heap"
	"fmt"
	"strings"
)

// ReadyQueue represents a FIFO queue of tasks waiting to be assigned to a core.
// Tasks are enqueued in arrival order; assignment policies may select from any
// position, so removal is by index rather than strictly from the front.
type ReadyQueue struct {
	queue []*Task
}

// Enqueue adds a task to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(t *Task) {
	rq.queue = append(rq.queue, t)
}

// Len returns the number of tasks in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the task at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Task {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*Task {
	return rq.queue
}

// RemoveAt removes and returns the task at index i, preserving the order of
// the remaining tasks. Returns nil if i is out of range.
func (rq *ReadyQueue) RemoveAt(i int) *Task {
	if i < 0 || i >= len(rq.queue) {
		return nil
	}
	t := rq.queue[i]
	copy(rq.queue[i:], rq.queue[i+1:])
	rq.queue[len(rq.queue)-1] = nil
	rq.queue = rq.queue[:len(rq.queue)-1]
	return t
}

// IDs returns the task IDs currently in the queue, front to back.
func (rq *ReadyQueue) IDs() []int {
	ids := make([]int, len(rq.queue))
	for i, t := range rq.queue {
		ids[i] = t.ID
	}
	return ids
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, t := range rq.queue {
		sb.WriteString(fmt.Sprint(t))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// ArrivalQueue implements a priority queue of not-yet-arrived tasks with
// deterministic ordering: arrival tick first, then task ID as tie-breaker.
// Tasks may be scheduled in any order; admission pops them in arrival order.
type ArrivalQueue struct {
	tasks []*Task
}

// NewArrivalQueue creates an empty arrival queue.
func NewArrivalQueue() *ArrivalQueue {
	q := &ArrivalQueue{
		tasks: make([]*Task, 0),
	}
	heap.Init(q)
	return q
}

// Len implements heap.Interface
func (q *ArrivalQueue) Len() int {
	return len(q.tasks)
}

// Less implements heap.Interface with deterministic ordering
// Order by: arrival tick → task ID
func (q *ArrivalQueue) Less(i, j int) bool {
	ti, tj := q.tasks[i], q.tasks[j]

	if ti.ArrivalTick != tj.ArrivalTick {
		return ti.ArrivalTick < tj.ArrivalTick
	}

	return ti.ID < tj.ID
}

// Swap implements heap.Interface
func (q *ArrivalQueue) Swap(i, j int) {
	q.tasks[i], q.tasks[j] = q.tasks[j], q.tasks[i]
}

// Push implements heap.Interface
func (q *ArrivalQueue) Push(x interface{}) {
	q.tasks = append(q.tasks, x.(*Task))
}

// Pop implements heap.Interface
func (q *ArrivalQueue) Pop() interface{} {
	old := q.tasks
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.tasks = old[0 : n-1]
	return item
}

// Schedule adds a task to the arrival queue.
func (q *ArrivalQueue) Schedule(t *Task) {
	heap.Push(q, t)
}

// PopNext removes and returns the earliest-arriving task.
func (q *ArrivalQueue) PopNext() *Task {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(*Task)
}

// Peek returns the earliest-arriving task without removing it.
func (q *ArrivalQueue) Peek() *Task {
	if q.Len() == 0 {
		return nil
	}
	return q.tasks[0]
}
