package engine

import (
	"container/heap"
	"time"
)

// TimerID identifies a scheduled callback; zero is never issued
type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Duration
	seq      uint64
	fn       func()
	index    int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline == h[j].deadline {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline < h[j].deadline
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler runs callbacks once the TickClock reaches their deadline
// Callbacks fire from Update on the game loop goroutine, ordered by deadline then registration
type Scheduler struct {
	clock  *TickClock
	timers timerHeap
	byID   map[TimerID]*timer
	nextID TimerID
	seq    uint64
}

// NewScheduler creates a scheduler driven by clock
func NewScheduler(clock *TickClock) *Scheduler {
	return &Scheduler{
		clock: clock,
		byID:  make(map[TimerID]*timer),
	}
}

// After registers fn to run once d of game time has elapsed
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	s.nextID++
	s.seq++
	t := &timer{
		id:       s.nextID,
		deadline: s.clock.Now() + d,
		seq:      s.seq,
		fn:       fn,
	}
	heap.Push(&s.timers, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel removes a pending timer, reporting whether it was still pending
func (s *Scheduler) Cancel(id TimerID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&s.timers, t.index)
	delete(s.byID, id)
	return true
}

// Remaining returns game time left before id fires
func (s *Scheduler) Remaining(id TimerID) (time.Duration, bool) {
	t, ok := s.byID[id]
	if !ok {
		return 0, false
	}
	return max(t.deadline-s.clock.Now(), 0), true
}

// Pending returns the number of registered timers
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Update fires every timer whose deadline has been reached
// Callbacks may schedule or cancel timers; new timers due now fire in the same call
func (s *Scheduler) Update() int {
	fired := 0
	now := s.clock.Now()
	for len(s.timers) > 0 && s.timers[0].deadline <= now {
		t := heap.Pop(&s.timers).(*timer)
		delete(s.byID, t.id)
		t.fn()
		fired++
	}
	return fired
}

// Clear drops every pending timer without running it
func (s *Scheduler) Clear() {
	s.timers = s.timers[:0]
	clear(s.byID)
}
