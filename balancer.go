package wrrqueue

import (
	"sync"

	"github.com/alphadose/haxmap"
)

// Instance is anything a Balancer can register: it reports a unique ID and
// the weight it should be selected with.
type Instance[T Hashable] interface {
	InstanceID() T
	InstanceWeight() int
}

// Picker is the instance-registry view over the queue.
type Picker[T Hashable, I Instance[T]] interface {
	Add(instances ...I) (int, error)
	Del(instances ...I) int
	Get(T) (I, bool)
	Size() int
	ForEach(func(T, I) bool)
	Select() (I, bool)
}

// Balancer keeps a registry of uniquely-identified instances on top of a
// Queue. Duplicate IDs are skipped on Add; Del rebuilds the schedule from
// the survivors. Lookups go through a concurrent hashmap and never touch
// the queue.
type Balancer[T Hashable, I Instance[T]] struct {
	mu    sync.Mutex
	index *haxmap.Map[T, I]
	order []I
	queue *Queue[I]
}

// NewBalancer returns an empty Balancer.
func NewBalancer[T Hashable, I Instance[T]]() *Balancer[T, I] {
	return &Balancer[T, I]{
		index: haxmap.New[T, I](8),
		order: make([]I, 0, 8),
		queue: New[I](),
	}
}

// Add registers instances whose IDs are not present yet and returns how
// many were admitted. The whole batch of new instances is inserted with a
// single schedule rebuild; on an invalid weight none of them is added.
func (b *Balancer[T, I]) Add(instances ...I) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fresh := make([]I, 0, len(instances))
	batch := make([]Weighted[I], 0, len(instances))
	for _, ins := range instances {
		if _, ok := b.index.Get(ins.InstanceID()); ok {
			continue
		}
		fresh = append(fresh, ins)
		batch = append(batch, Weighted[I]{Value: ins, Weight: ins.InstanceWeight()})
	}
	if len(fresh) == 0 {
		return 0, nil
	}
	if err := b.queue.InsertMany(batch...); err != nil {
		return 0, err
	}
	for _, ins := range fresh {
		b.index.Set(ins.InstanceID(), ins)
		b.order = append(b.order, ins)
	}
	return len(fresh), nil
}

// Del unregisters instances by ID and returns how many were found. The
// schedule is rebuilt once from the survivors, in insertion order.
func (b *Balancer[T, I]) Del(instances ...I) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	count := 0
	for _, ins := range instances {
		id := ins.InstanceID()
		if _, ok := b.index.Get(id); !ok {
			continue
		}
		b.index.Del(id)
		for i := 0; i < len(b.order); i++ {
			if b.order[i].InstanceID() == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
		count++
	}
	if count > 0 {
		b.rebuild()
	}
	return count
}

// rebuild replaces the queue contents with the current survivors.
// Their weights were validated on Add, so re-insertion cannot fail.
func (b *Balancer[T, I]) rebuild() {
	batch := make([]Weighted[I], len(b.order))
	for i, ins := range b.order {
		batch[i] = Weighted[I]{Value: ins, Weight: ins.InstanceWeight()}
	}
	b.queue.Clear()
	_ = b.queue.InsertMany(batch...)
}

// Select returns the next instance of the current cycle, false if the
// registry is empty.
func (b *Balancer[T, I]) Select() (ins I, ok bool) {
	e, ok := b.queue.Select()
	if !ok {
		return ins, false
	}
	return e.Value(), true
}

// Get returns the instance registered under id.
func (b *Balancer[T, I]) Get(id T) (I, bool) {
	return b.index.Get(id)
}

// ForEach visits every registered instance until the callback returns false.
func (b *Balancer[T, I]) ForEach(callback func(T, I) bool) {
	b.index.ForEach(callback)
}

// Size returns the number of registered instances.
func (b *Balancer[T, I]) Size() int {
	return int(b.index.Len())
}
