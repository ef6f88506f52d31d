// Package schedule implements the pending-transition queue behind the
// automatic order progression. Transitions are queued at order creation and
// drained by the progression job once their fire time has passed.
package schedule

import (
	"sort"
	"sync"
	"time"

	"quickbite/internal/core/ports"
)

var _ ports.TransitionSchedule = (*Queue)(nil)

// Queue is a mutex-guarded pending-transition queue. Entries are one-shot:
// Due removes what it returns, and nothing ever cancels a queued entry.
type Queue struct {
	mu      sync.Mutex
	pending []ports.ScheduledTransition
}

// NewQueue creates an empty transition queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add queues a pending transition.
func (q *Queue) Add(transition ports.ScheduledTransition) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, transition)
}

// Due removes and returns every transition whose fire time is at or before
// now, sorted by fire time. When several ticks' worth of transitions are
// overdue (a stalled scheduler catching up), the sort keeps each order's
// lifecycle applied in the right sequence.
func (q *Queue) Due(now time.Time) []ports.ScheduledTransition {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []ports.ScheduledTransition
	remaining := q.pending[:0]
	for _, t := range q.pending {
		if t.FireAt.After(now) {
			remaining = append(remaining, t)
		} else {
			due = append(due, t)
		}
	}
	q.pending = remaining

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].FireAt.Before(due[j].FireAt)
	})
	return due
}

// Len reports the number of pending transitions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
