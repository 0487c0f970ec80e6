package sim

import (
	"container/heap"
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// eventKind identifies what a scheduled event does when it comes due.
type eventKind int

const (
	eventEmit    eventKind = iota // periodic spawn request
	eventHoming                   // ballistic -> homing switch
	eventTimeout                  // forced removal after lifetime
)

func (k eventKind) String() string {
	switch k {
	case eventEmit:
		return "emit"
	case eventHoming:
		return "homing"
	case eventTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// event is a timer entry keyed by simulated time.
// Events with equal due times fire in scheduling order (seq).
type event struct {
	due        time.Duration
	seq        uint64
	kind       eventKind
	projectile core.EntityID
	index      int // heap index, -1 once popped or cancelled
}

type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *eventQueue) Push(x any) {
	e := x.(*event)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// scheduler owns the simulated clock and the pending timers.
// It replaces wall-clock timeouts so that timer ordering is deterministic.
type scheduler struct {
	now   time.Duration
	seq   uint64
	queue eventQueue
}

// after schedules an event d after the current simulated time.
func (s *scheduler) after(d time.Duration, kind eventKind, id core.EntityID) *event {
	return s.at(s.now+d, kind, id)
}

// at schedules an event at an absolute simulated time. A due time already
// passed fires on the next drain.
func (s *scheduler) at(due time.Duration, kind eventKind, id core.EntityID) *event {
	s.seq++
	e := &event{
		due:        due,
		seq:        s.seq,
		kind:       kind,
		projectile: id,
	}
	heap.Push(&s.queue, e)
	return e
}

// cancel removes a pending event. Cancelling a fired or nil event is a no-op.
func (s *scheduler) cancel(e *event) {
	if e == nil || e.index < 0 {
		return
	}
	heap.Remove(&s.queue, e.index)
}

// advance moves the simulated clock forward.
func (s *scheduler) advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
}

// next pops the earliest event that is due at or before now.
func (s *scheduler) next() (*event, bool) {
	if len(s.queue) == 0 || s.queue[0].due > s.now {
		return nil, false
	}
	return heap.Pop(&s.queue).(*event), true
}
