package wrrqueue

// weightedSet is the source of truth for what exists and how heavy it is:
// an ordered snapshot of entries plus their weight sum. Identity is
// positional, so duplicate values are distinct entries. The published
// snapshot is never mutated in place; extended builds a replacement.
type weightedSet[T any] struct {
	entries []*Entry[T]
	total   int
}

// extended validates items and returns a new entries slice with them
// appended, plus the new weight sum. All-or-nothing: on any invalid weight
// or capacity overflow nothing is built and the receiver is untouched.
// The returned slice shares no header with s.entries, so readers holding
// the old snapshot are unaffected.
func (s *weightedSet[T]) extended(items []Weighted[T]) ([]*Entry[T], int, error) {
	total := s.total
	for _, it := range items {
		if err := checkWeight(it.Weight); err != nil {
			return nil, 0, err
		}
		total += it.Weight
		if total > MaxTotalWeight {
			return nil, 0, ErrCapacityExceeded
		}
	}
	entries := make([]*Entry[T], len(s.entries), len(s.entries)+len(items))
	copy(entries, s.entries)
	for _, it := range items {
		entries = append(entries, &Entry[T]{value: it.Value, weight: it.Weight})
	}
	return entries, total, nil
}

func (s *weightedSet[T]) weights() []int {
	ws := make([]int, len(s.entries))
	for i, e := range s.entries {
		ws[i] = e.weight
	}
	return ws
}
