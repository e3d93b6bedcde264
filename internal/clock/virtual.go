package clock

import (
	"container/heap"
	"time"
)

// Virtual is a Scheduler whose time is advanced manually.
// It is not safe for concurrent use: a single owner schedules and advances.
type Virtual struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// NewVirtual creates a virtual scheduler at time zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// Now returns the current virtual time.
func (v *Virtual) Now() time.Duration {
	return v.now
}

// AfterFunc schedules f to run once after d. Negative delays are treated as zero.
func (v *Virtual) AfterFunc(d time.Duration, f func()) *Timer {
	return v.schedule(d, 0, f)
}

// Every schedules f to run every d. Non-positive periods are rejected by
// returning an already stopped timer.
func (v *Virtual) Every(d time.Duration, f func()) *Timer {
	if d <= 0 {
		return &Timer{stopped: true, index: -1}
	}
	return v.schedule(d, d, f)
}

func (v *Virtual) schedule(d, period time.Duration, f func()) *Timer {
	if d < 0 {
		d = 0
	}
	v.seq++
	t := &Timer{
		due:    v.now + d,
		period: period,
		seq:    v.seq,
		fn:     f,
		index:  -1,
	}
	heap.Push(&v.queue, t)
	return t
}

// Advance moves time forward by d, firing every callback that becomes due in
// due-time order. Callbacks scheduled during Advance fire in the same call if
// they fall inside the window. It returns the number of callbacks fired.
func (v *Virtual) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := v.now + d
	fired := 0

	for v.queue.Len() > 0 {
		next := v.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&v.queue)
		if next.stopped {
			continue
		}

		v.now = next.due
		if next.period > 0 {
			next.due += next.period
			heap.Push(&v.queue, next)
		} else {
			next.fired = true
		}

		next.fn()
		fired++
	}

	v.now = target
	return fired
}

// Pending returns the number of live timers still queued.
func (v *Virtual) Pending() int {
	n := 0
	for _, t := range v.queue {
		if !t.stopped {
			n++
		}
	}
	return n
}

// NextDue returns the due time of the earliest live timer.
func (v *Virtual) NextDue() (time.Duration, bool) {
	for v.queue.Len() > 0 {
		if !v.queue[0].stopped {
			return v.queue[0].due, true
		}
		heap.Pop(&v.queue)
	}
	return 0, false
}

// timerQueue is a min-heap ordered by due time, then scheduling order.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
