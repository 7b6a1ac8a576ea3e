package wrrqueue

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// maxSelectors bounds concurrent readers of a ContextQueue. A writer
// publishing a new schedule acquires the whole amount.
const maxSelectors = 1 << 30

// ContextQueue is the cooperatively-suspending flavor of Queue: identical
// semantics, but every operation takes a context and waits on semaphores
// instead of thread-blocking locks, so a caller's goroutine can give up
// waiting when its context is done.
type ContextQueue[T any] struct {
	wsem     *semaphore.Weighted // serializes writers
	rsem     *semaphore.Weighted // readers hold 1, publish holds all
	set      weightedSet[T]
	schedule []int
	cursor   atomic.Uint64
}

// NewContext returns an empty ContextQueue.
func NewContext[T any]() *ContextQueue[T] {
	return &ContextQueue[T]{
		wsem: semaphore.NewWeighted(1),
		rsem: semaphore.NewWeighted(maxSelectors),
	}
}

// Insert appends one entry and rebuilds the schedule before returning.
func (q *ContextQueue[T]) Insert(ctx context.Context, value T, weight int) error {
	return q.InsertMany(ctx, Weighted[T]{Value: value, Weight: weight})
}

// InsertMany appends a batch of entries with a single schedule rebuild,
// all-or-nothing as for Queue.InsertMany. A non-nil context error means
// the batch was not applied.
func (q *ContextQueue[T]) InsertMany(ctx context.Context, items ...Weighted[T]) error {
	if err := q.wsem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer q.wsem.Release(1)

	entries, total, err := q.set.extended(items)
	if err != nil {
		return err
	}
	next := weightedSet[T]{entries: entries, total: total}
	sched := smoothSchedule(next.weights())

	if err := q.rsem.Acquire(ctx, maxSelectors); err != nil {
		return err
	}
	q.set = next
	q.schedule = sched
	q.rsem.Release(maxSelectors)
	return nil
}

// Select returns the next entry of the current cycle. ok is false if the
// queue holds no entries; a non-nil error comes from ctx only.
func (q *ContextQueue[T]) Select(ctx context.Context) (ref *Entry[T], ok bool, err error) {
	pos := q.cursor.Add(1) - 1
	if err := q.rsem.Acquire(ctx, 1); err != nil {
		return nil, false, err
	}
	defer q.rsem.Release(1)
	if len(q.schedule) == 0 {
		return nil, false, nil
	}
	return q.set.entries[q.schedule[pos%uint64(len(q.schedule))]], true, nil
}

// Clear drops every entry and resets the cursor.
func (q *ContextQueue[T]) Clear(ctx context.Context) error {
	if err := q.wsem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer q.wsem.Release(1)

	if err := q.rsem.Acquire(ctx, maxSelectors); err != nil {
		return err
	}
	q.set = weightedSet[T]{}
	q.schedule = nil
	q.cursor.Store(0)
	q.rsem.Release(maxSelectors)
	return nil
}

// Len returns the number of entries.
func (q *ContextQueue[T]) Len(ctx context.Context) (int, error) {
	if err := q.rsem.Acquire(ctx, 1); err != nil {
		return 0, err
	}
	defer q.rsem.Release(1)
	return len(q.set.entries), nil
}

// TotalWeight returns the sum of all weights.
func (q *ContextQueue[T]) TotalWeight(ctx context.Context) (int, error) {
	if err := q.rsem.Acquire(ctx, 1); err != nil {
		return 0, err
	}
	defer q.rsem.Release(1)
	return q.set.total, nil
}
