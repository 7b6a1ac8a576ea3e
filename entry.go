package wrrqueue

import (
	"errors"
	"fmt"
)

const (
	// MaxWeight is the largest weight a single entry may carry.
	MaxWeight = 1 << 20

	// MaxTotalWeight caps the sum of all weights, which is also the
	// length of the generated schedule (one slot per weight unit).
	MaxTotalWeight = 1 << 24
)

var (
	// ErrInvalidWeight is returned when a weight is not in [1, MaxWeight].
	ErrInvalidWeight = errors.New("wrrqueue: weight must be a positive integer")

	// ErrCapacityExceeded is returned when an insertion would push the
	// total weight past MaxTotalWeight.
	ErrCapacityExceeded = errors.New("wrrqueue: total weight exceeds schedule capacity")
)

// Weighted pairs a value with its weight for batch insertion.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Entry is a live (value, weight) pair held by a queue. Pointers returned
// from Select stay valid after later insertions or a Clear; they reference
// the snapshot that was current at selection time.
type Entry[T any] struct {
	value  T
	weight int
}

func (e *Entry[T]) Value() T {
	return e.value
}

func (e *Entry[T]) Weight() int {
	return e.weight
}

func checkWeight(w int) error {
	if w < 1 || w > MaxWeight {
		return fmt.Errorf("%w: got %d", ErrInvalidWeight, w)
	}
	return nil
}
