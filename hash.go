package wrrqueue

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Hashable is the set of types usable as Balancer instance IDs; it mirrors
// the key constraint of haxmap.
type Hashable interface {
	constraints.Integer | constraints.Float | constraints.Complex |
		~string | uintptr | ~unsafe.Pointer
}
