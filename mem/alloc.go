package mem

import "errors"

// ErrOutOfMemory reports that the allocator cannot satisfy a request.
var ErrOutOfMemory = errors.New("mem: out of memory")

// Allocator accounts element slots handed out to owned blocks.
type Allocator interface {
	Acquire(slots int) error
	Release(slots int)
}

// QuotaAllocator limits the total number of outstanding slots.
// Not safe for concurrent use; callers serialize externally.
type QuotaAllocator struct {
	limit int
	used  int
}

// NewQuotaAllocator creates an allocator with the given slot limit.
// A limit of 0 means unlimited.
func NewQuotaAllocator(limit int) *QuotaAllocator {
	return &QuotaAllocator{limit: limit}
}

// SetLimit changes the slot limit. A limit of 0 means unlimited.
// Already outstanding slots are unaffected.
func (a *QuotaAllocator) SetLimit(limit int) {
	if a == nil {
		return
	}
	a.limit = limit
}

// Used returns the number of outstanding slots.
func (a *QuotaAllocator) Used() int {
	if a == nil {
		return 0
	}
	return a.used
}

// Acquire reserves slots, failing when the limit would be exceeded.
// A failed acquire changes nothing.
func (a *QuotaAllocator) Acquire(slots int) error {
	if a == nil || slots <= 0 {
		return nil
	}
	if a.limit > 0 && a.used+slots > a.limit {
		return ErrOutOfMemory
	}
	a.used += slots
	return nil
}

// Release returns slots to the allocator.
func (a *QuotaAllocator) Release(slots int) {
	if a == nil || slots <= 0 {
		return
	}
	a.used -= slots
	if a.used < 0 {
		a.used = 0
	}
}

// DefaultAllocator is the global allocator used unless overridden.
var DefaultAllocator Allocator = NewQuotaAllocator(0)
