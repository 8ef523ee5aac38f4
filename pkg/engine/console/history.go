package console

// historyCap is the fixed history ring capacity.
const historyCap = 50

// History is a ring buffer of entered command strings with a recall
// cursor. Only commands sent through the history-recording enqueue path
// are stored; script-sourced and silent commands never reach it.
type History struct {
	slots [historyCap]string
	next  int // monotonically increasing write index
	index int // recall cursor, snaps back to next on every Record
}

// NewHistory creates an empty history buffer.
func NewHistory() *History {
	return &History{}
}

// Record stores cmd at the next ring slot, silently overwriting the
// oldest entry once more than historyCap commands have been recorded,
// and snaps the recall cursor back to the latest position.
func (h *History) Record(cmd string) {
	h.slots[h.next%historyCap] = cmd
	h.next++
	h.index = h.next
}

// RecallPrevious moves the recall cursor one entry back, clamped to the
// oldest retained entry, and returns the command there. Returns the
// empty string when nothing has been recorded.
func (h *History) RecallPrevious() string {
	if h.next == 0 {
		return ""
	}
	oldest := h.next - historyCap
	if oldest < 0 {
		oldest = 0
	}
	if h.index > oldest {
		h.index--
	}
	return h.slots[h.index%historyCap]
}

// RecallNext moves the recall cursor one entry forward. Stepping past
// the most recent entry returns the empty string (a fresh input line).
func (h *History) RecallNext() string {
	if h.index < h.next {
		h.index++
	}
	if h.index == h.next {
		return ""
	}
	return h.slots[h.index%historyCap]
}
