// Package mem provides slot allocation accounting and the fixed-size
// element blocks backing growable sequences.
package mem

// Block exclusively owns a fixed run of element slots. A block never
// resizes; a larger run is a new block. Ownership moves between block
// instances only through Swap, and there is no copy at this layer.
type Block[T any] struct {
	data []T
}

// NewBlock allocates a block of zero-valued slots. A request of zero or
// fewer slots yields an empty block with no backing array. Fails with
// ErrOutOfMemory when the allocator refuses the slot count.
func NewBlock[T any](slots int) (Block[T], error) {
	if slots <= 0 {
		return Block[T]{}, nil
	}
	if err := DefaultAllocator.Acquire(slots); err != nil {
		return Block[T]{}, err
	}
	return Block[T]{data: make([]T, slots)}, nil
}

// Swap exchanges the owned slots with another block. No elements are
// constructed, copied, or destroyed; the operation cannot fail.
func (b *Block[T]) Swap(other *Block[T]) {
	b.data, other.data = other.data, b.data
}

// At returns the slot at index. The caller guarantees index < Len.
func (b *Block[T]) At(index int) *T {
	return &b.data[index]
}

// Data returns the full slot array.
func (b *Block[T]) Data() []T {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the number of owned slots.
func (b *Block[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Free releases the owned slots back to the allocator and drops the
// backing array. The block is left empty and reusable.
func (b *Block[T]) Free() {
	if b == nil || b.data == nil {
		return
	}
	DefaultAllocator.Release(len(b.data))
	b.data = nil
}
