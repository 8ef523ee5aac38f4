package console

import "github.com/zyedidia/generic/list"

// maxPending bounds the pending-command queue. Exceeding it clears the
// entire queue: dropping everything is the intended guard against
// runaway or recursive script inclusion, not a partial trim.
const maxPending = 128

// PendingQueue holds raw command lines awaiting dispatch. User-typed and
// programmatic commands append at the tail; script lines insert at the
// head so a just-loaded script drains before anything queued earlier.
type PendingQueue struct {
	lines *list.List[string]
	size  int
	gen   int
	warn  func(msg string)
}

// NewPendingQueue creates an empty queue. warn receives the overflow
// diagnostic and may be nil.
func NewPendingQueue(warn func(msg string)) *PendingQueue {
	return &PendingQueue{lines: list.New[string](), warn: warn}
}

// Enqueue appends a command line at the logical tail.
func (q *PendingQueue) Enqueue(line string) {
	q.lines.PushBack(line)
	q.size++
	q.checkOverflow()
}

// EnqueueFromScript inserts lines at the logical head, preserving their
// relative order.
func (q *PendingQueue) EnqueueFromScript(lines []string) {
	if len(lines) == 0 {
		return
	}
	for i := len(lines) - 1; i >= 0; i-- {
		q.lines.PushFront(lines[i])
		q.size++
	}
	q.gen++
	q.checkOverflow()
}

// PopFront removes and returns the next line to dispatch.
func (q *PendingQueue) PopFront() (string, bool) {
	front := q.lines.Front
	if front == nil {
		return "", false
	}
	q.lines.Remove(front)
	q.size--
	return front.Value, true
}

// Generation counts head insertions. The dispatch loop snapshots it at
// the start of a drain pass to detect a script batch inserted while the
// pass was running.
func (q *PendingQueue) Generation() int {
	return q.gen
}

// Len reports the number of queued lines.
func (q *PendingQueue) Len() int {
	return q.size
}

// Clear drops every queued line.
func (q *PendingQueue) Clear() {
	q.lines = list.New[string]()
	q.size = 0
}

func (q *PendingQueue) checkOverflow() {
	if q.size <= maxPending {
		return
	}
	q.Clear()
	if q.warn != nil {
		q.warn("Pending command queue overflowed, dropping all queued commands")
	}
}
