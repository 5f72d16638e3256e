package ifc

import (
	"fmt"
	"math"
	"strconv"
)

// ID identifies a record within one document. Valid IDs are positive.
type ID uint64

// MaxID is the largest valid ID. The one above it is kept free so that the
// allocator's next ID never wraps around.
const MaxID = ID(math.MaxUint64 - 1)

func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

func (id ID) IsZero() bool {
	return id == 0
}

// Allocator hands out monotonically increasing IDs. It is scoped to a single
// store; there is no process-wide counter.
type Allocator struct {
	next ID
}

// Next returns a fresh ID, never returned or observed before. Panics once
// MaxID has been handed out or observed.
func (a *Allocator) Next() ID {
	if a.next == 0 {
		a.next = 1
	}
	if a.next > MaxID {
		panic("ifc: ID space exhausted")
	}
	id := a.next
	a.next++
	return id
}

// Observe advances the allocator past id, so that future allocations never
// collide with it.
func (a *Allocator) Observe(id ID) {
	if id > MaxID {
		panic(fmt.Errorf("ifc: %v is above MaxID", id))
	}
	if id >= a.next {
		a.next = id + 1
	}
}

// Peek returns the ID the next call to Next would return.
func (a *Allocator) Peek() ID {
	if a.next == 0 {
		return 1
	}
	return a.next
}
