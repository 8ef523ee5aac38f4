package console

import (
	"fmt"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewPendingQueue(nil)
	q.Enqueue("first")
	q.Enqueue("second")

	if line, _ := q.PopFront(); line != "first" {
		t.Errorf("PopFront() = %q, want %q", line, "first")
	}
	if line, _ := q.PopFront(); line != "second" {
		t.Errorf("PopFront() = %q, want %q", line, "second")
	}
	if _, ok := q.PopFront(); ok {
		t.Error("PopFront() on empty queue returned ok")
	}
}

func TestQueueScriptHeadInsertion(t *testing.T) {
	q := NewPendingQueue(nil)
	q.Enqueue("old")
	q.EnqueueFromScript([]string{"A", "B", "C"})

	want := []string{"A", "B", "C", "old"}
	for i, w := range want {
		line, ok := q.PopFront()
		if !ok || line != w {
			t.Errorf("PopFront()[%d] = %q, want %q", i, line, w)
		}
	}
}

func TestQueueOverflowClearsEverything(t *testing.T) {
	warnings := 0
	q := NewPendingQueue(func(msg string) { warnings++ })

	for i := 0; i < 129; i++ {
		q.Enqueue(fmt.Sprintf("cmd%d", i))
	}
	if q.Len() != 0 {
		t.Errorf("Len() after overflow = %d, want 0 (whole queue cleared)", q.Len())
	}
	if warnings != 1 {
		t.Errorf("overflow warnings = %d, want 1", warnings)
	}
}

func TestQueueOverflowViaScript(t *testing.T) {
	warnings := 0
	q := NewPendingQueue(func(msg string) { warnings++ })

	q.Enqueue("seed")
	lines := make([]string, 128)
	for i := range lines {
		lines[i] = fmt.Sprintf("line%d", i)
	}
	q.EnqueueFromScript(lines)

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after mixed overflow", q.Len())
	}
	if warnings != 1 {
		t.Errorf("overflow warnings = %d, want 1", warnings)
	}
}

func TestQueueExactlyAtCapacity(t *testing.T) {
	warnings := 0
	q := NewPendingQueue(func(msg string) { warnings++ })

	for i := 0; i < 128; i++ {
		q.Enqueue("cmd")
	}
	if q.Len() != 128 {
		t.Errorf("Len() = %d, want 128 (capacity itself is allowed)", q.Len())
	}
	if warnings != 0 {
		t.Errorf("warnings = %d, want 0", warnings)
	}
}
