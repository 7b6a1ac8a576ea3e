package wrrqueue

import (
	"sync"
	"sync/atomic"
)

// Queue is the thread-blocking flavor of the selector. Select is the hot
// path: an atomic cursor increment plus a shared-read section, no
// allocation, no contention between selectors. Insertions rebuild the whole
// schedule, so batch them with InsertMany where possible.
type Queue[T any] struct {
	// wmu serializes writers so regeneration runs outside rw; rw only
	// guards the publish of the (set, schedule) pair.
	wmu      sync.Mutex
	rw       sync.RWMutex
	set      weightedSet[T]
	schedule []int
	cursor   atomic.Uint64
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Insert appends one entry and rebuilds the schedule before returning.
// The weight must be in [1, MaxWeight].
func (q *Queue[T]) Insert(value T, weight int) error {
	return q.InsertMany(Weighted[T]{Value: value, Weight: weight})
}

// InsertMany appends a batch of entries with a single schedule rebuild.
// If any weight is invalid or the total would exceed MaxTotalWeight, no
// entry is added and the live schedule is unchanged.
func (q *Queue[T]) InsertMany(items ...Weighted[T]) error {
	q.wmu.Lock()
	defer q.wmu.Unlock()

	entries, total, err := q.set.extended(items)
	if err != nil {
		return err
	}
	next := weightedSet[T]{entries: entries, total: total}
	sched := smoothSchedule(next.weights())

	q.rw.Lock()
	q.set = next
	q.schedule = sched
	q.rw.Unlock()
	return nil
}

// Select returns the next entry of the current cycle, false if the queue
// holds no entries. Concurrent callers each get a distinct position.
func (q *Queue[T]) Select() (*Entry[T], bool) {
	pos := q.cursor.Add(1) - 1
	q.rw.RLock()
	defer q.rw.RUnlock()
	if len(q.schedule) == 0 {
		return nil, false
	}
	return q.set.entries[q.schedule[pos%uint64(len(q.schedule))]], true
}

// Clear drops every entry and resets the cursor. Entries returned from
// earlier Select calls remain valid.
func (q *Queue[T]) Clear() {
	q.wmu.Lock()
	defer q.wmu.Unlock()

	q.rw.Lock()
	q.set = weightedSet[T]{}
	q.schedule = nil
	q.cursor.Store(0)
	q.rw.Unlock()
}

// Len returns the number of entries.
func (q *Queue[T]) Len() int {
	q.rw.RLock()
	defer q.rw.RUnlock()
	return len(q.set.entries)
}

// TotalWeight returns the sum of all weights, which is also the length of
// the current cycle.
func (q *Queue[T]) TotalWeight() int {
	q.rw.RLock()
	defer q.rw.RUnlock()
	return q.set.total
}
