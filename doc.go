// Package wrrqueue is a concurrent weighted round-robin selector: a dynamic
// set of weighted entries from which each call to Select picks the next one,
// proportionally to weight and interleaved across the cycle.
//
// Key properties:
//
//   - Smooth scheduling. Each insertion precomputes one full cycle of
//     length sum(weights) using the smooth WRR interleaving, so a weight-5
//     entry is spread across the cycle instead of emitted five times in a
//     row. Generation is deterministic; ties on the running maximum go to
//     the earliest-inserted entry.
//   - Cheap selection. Select is an atomic cursor increment plus a shared
//     read section and an index; it allocates nothing and only contends
//     with an in-flight schedule swap, never with other selectors.
//   - Batched mutation. InsertMany rebuilds the schedule once per batch,
//     all-or-nothing. Minimizing insertions keeps write latency down, since
//     a rebuild costs O(total weight).
//
// # Flavors
//
// Queue blocks on a sync.RWMutex while a swap is in flight. ContextQueue is
// functionally identical but waits on context-aware semaphores, so callers
// can abandon a wait through cancellation.
//
// # Concurrency
//
// All operations are safe for concurrent use. Entries returned from Select
// are pointers into the snapshot that was current at selection time; later
// insertions or Clear never invalidate them.
package wrrqueue
