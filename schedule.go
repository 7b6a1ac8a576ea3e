package wrrqueue

// smoothSchedule precomputes one full cycle of smooth weighted round-robin
// over the given weights and returns it as a sequence of entry indices of
// length sum(weights). Every index i appears exactly weights[i] times,
// spread across the cycle rather than clustered.
//
// Each tick every entry's counter grows by its own weight, the entry with
// the maximum counter is emitted, and the total is subtracted from it.
// Counters start at zero. Ties on the maximum go to the lowest index: the
// scan only replaces the candidate on a strictly greater counter. The
// output is fully determined by the weights and their order.
//
// Callers must have bounded the weights already: every weight >= 1 and the
// sum within MaxTotalWeight.
func smoothSchedule(weights []int) []int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return nil
	}
	cur := make([]int64, len(weights))
	seq := make([]int, 0, total)
	for t := 0; t < total; t++ {
		best := 0
		for i, w := range weights {
			cur[i] += int64(w)
			if cur[i] > cur[best] {
				best = i
			}
		}
		cur[best] -= int64(total)
		seq = append(seq, best)
	}
	return seq
}
