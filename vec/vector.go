// Package vec implements a growable contiguous sequence with explicit
// capacity control, backed by a single owned block.
package vec

import (
	"errors"
	"fmt"

	"github.com/wilhasse/simple-vector-go/mem"
)

// ErrOutOfRange reports a checked access past the live range.
var ErrOutOfRange = errors.New("vec: index out of range")

// Vector is a contiguous sequence of T with separate size and capacity.
// Live elements occupy [0, Len()); the remaining slots up to Cap() are
// spare storage. Capacity never shrinks implicitly. Positions, element
// pointers, and the Items window are invalidated by any operation that
// reallocates or shifts storage.
//
// A Vector is single-owner and not safe for concurrent use.
type Vector[T any] struct {
	items mem.Block[T]
	size  int
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector of n zero-valued elements, with capacity n.
func NewSized[T any](n int) (*Vector[T], error) {
	block, err := mem.NewBlock[T](n)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{items: block, size: block.Len()}, nil
}

// NewFilled returns a vector of n elements, each a copy of value.
func NewFilled[T any](n int, value T) (*Vector[T], error) {
	v, err := NewSized[T](n)
	if err != nil {
		return nil, err
	}
	data := v.items.Data()
	for i := range data {
		data[i] = value
	}
	return v, nil
}

// NewOf returns a vector holding the given items in order, with
// capacity equal to the item count.
func NewOf[T any](items ...T) (*Vector[T], error) {
	v, err := NewSized[T](len(items))
	if err != nil {
		return nil, err
	}
	copy(v.items.Data(), items)
	return v, nil
}

// NewWithCapacity returns an empty vector with n slots pre-allocated.
func NewWithCapacity[T any](n int) (*Vector[T], error) {
	block, err := mem.NewBlock[T](n)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{items: block}, nil
}

// Clone returns a copy holding the same elements and the same capacity.
// Capacity is preserved deliberately so the copy keeps the source's
// growth headroom. On allocation failure the source is untouched and
// nothing is retained. Cloning a nil vector yields a new empty vector.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if v == nil {
		return New[T](), nil
	}
	block, err := mem.NewBlock[T](v.Cap())
	if err != nil {
		return nil, err
	}
	copy(block.Data(), v.Items())
	return &Vector[T]{items: block, size: v.size}, nil
}

// CopyFrom replaces the contents with a copy of other. The copy is
// built fully before the old state is dropped, so a failed allocation
// leaves the receiver unmodified. Copying from itself is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	tmp, err := other.Clone()
	if err != nil {
		return err
	}
	v.Swap(tmp)
	tmp.release()
	return nil
}

// MoveFrom takes other's storage and contents, dropping the receiver's
// previous state. other is left empty with zero capacity, valid for
// reuse. Moving from itself or from nil is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other || other == nil {
		return
	}
	v.release()
	v.items.Swap(&other.items)
	v.size = other.size
	other.size = 0
}

// Swap exchanges contents and storage with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other || other == nil {
		return
	}
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.items.Len()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Items returns the live elements as a half-open window into the owned
// block. An empty vector yields an empty window. Writes through the
// window are visible to the vector.
func (v *Vector[T]) Items() []T {
	if v == nil {
		return nil
	}
	return v.items.Data()[:v.size]
}

// Ref returns the element at index without a bounds check against the
// live range. The caller guarantees index < Len.
func (v *Vector[T]) Ref(index int) *T {
	return v.items.At(index)
}

// At returns the element at index, or ErrOutOfRange when index lies
// outside the live range. At a valid index it returns the identical
// pointer Ref returns.
func (v *Vector[T]) At(index int) (*T, error) {
	if v == nil || index < 0 || index >= v.size {
		return nil, fmt.Errorf("index %d with len %d: %w", index, v.Len(), ErrOutOfRange)
	}
	return v.items.At(index), nil
}

// PushBack appends item, doubling capacity when full. Amortized O(1).
// On allocation failure the vector is untouched.
func (v *Vector[T]) PushBack(item T) error {
	if v.size == v.Cap() {
		if err := v.grow(v.size + 1); err != nil {
			return err
		}
	}
	*v.items.At(v.size) = item
	v.size++
	return nil
}

// Insert places item at index, shifting later elements one slot right.
// index must lie in [0, Len()]; inserting at Len() appends. A position
// outside that range panics. Returns the inserted element's index. On
// allocation failure the vector is untouched.
func (v *Vector[T]) Insert(index int, item T) (int, error) {
	if index < 0 || index > v.size {
		panic(fmt.Sprintf("vec: insert index %d out of range [0,%d]", index, v.size))
	}
	if v.size < v.Cap() {
		data := v.items.Data()
		copy(data[index+1:v.size+1], data[index:v.size])
		data[index] = item
		v.size++
		return index, nil
	}
	capacity := v.Cap() * 2
	if capacity < 1 {
		capacity = 1
	}
	block, err := mem.NewBlock[T](capacity)
	if err != nil {
		return 0, err
	}
	data := v.items.Data()
	fresh := block.Data()
	copy(fresh, data[:index])
	fresh[index] = item
	copy(fresh[index+1:], data[index:v.size])
	v.items.Swap(&block)
	block.Free()
	v.size++
	return index, nil
}

// Erase removes the element at index, shifting later elements one slot
// left. index must lie in [0, Len()); a position outside that range
// panics. Returns the index now holding the erased element's successor,
// equal to Len() when the last element was removed. Capacity is
// unchanged, and the vacated slot keeps its old value until overwritten.
func (v *Vector[T]) Erase(index int) int {
	if index < 0 || index >= v.size {
		panic(fmt.Sprintf("vec: erase index %d out of range [0,%d)", index, v.size))
	}
	data := v.items.Data()
	copy(data[index:v.size-1], data[index+1:v.size])
	v.size--
	return index
}

// PopBack drops the last element. Empty vectors are left unchanged.
// The dropped slot keeps its value until overwritten.
func (v *Vector[T]) PopBack() {
	if v == nil || v.size == 0 {
		return
	}
	v.size--
}

// Clear drops all elements, keeping capacity and slot contents.
func (v *Vector[T]) Clear() {
	if v == nil {
		return
	}
	v.size = 0
}

// Resize sets the live count to n. Shrinking is bookkeeping only.
// Growing fills the new slots [Len(), n) with zero values, even when
// old values are still physically present from an earlier shrink.
// Growing past capacity reallocates to max(n, 2*Cap()). On allocation
// failure the vector is untouched.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		n = 0
	}
	switch {
	case n <= v.size:
		v.size = n
	case n <= v.Cap():
		clear(v.items.Data()[v.size:n])
		v.size = n
	default:
		if err := v.grow(n); err != nil {
			return err
		}
		v.size = n
	}
	return nil
}

// Reserve ensures capacity for at least n elements, reallocating to
// exactly n slots when n exceeds the current capacity. It never
// shrinks and never changes the live elements. On allocation failure
// the vector is untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	block, err := mem.NewBlock[T](n)
	if err != nil {
		return err
	}
	copy(block.Data(), v.Items())
	v.items.Swap(&block)
	block.Free()
	return nil
}

// grow replaces the block with one of max(needed, 2*Cap()) slots,
// transferring the live elements. New slots are zero-valued. On
// allocation failure the vector is untouched.
func (v *Vector[T]) grow(needed int) error {
	capacity := v.Cap() * 2
	if capacity < needed {
		capacity = needed
	}
	block, err := mem.NewBlock[T](capacity)
	if err != nil {
		return err
	}
	copy(block.Data(), v.Items())
	v.items.Swap(&block)
	block.Free()
	return nil
}

// release drops the owned block and all elements.
func (v *Vector[T]) release() {
	v.items.Free()
	v.size = 0
}
