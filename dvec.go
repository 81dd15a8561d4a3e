// Package dvec implements a growable, single-owner vector whose backing
// slice is checked out of the container whenever it is handed to a
// transformation. Using the container while it is checked out panics.
package dvec

import "slices"

// state tags what the container's storage slot currently holds.
type state uint8

const (
	statePresent    state = iota // data owned by the container
	stateCheckedOut              // data handed to a transformation
	statePoisoned                // a transformation faulted, data lost
	stateMoved                   // consumed by Unwrap or Move
)

func (s state) String() string {
	switch s {
	case statePresent:
		return "present"
	case stateCheckedOut:
		return "checked_out"
	case statePoisoned:
		return "poisoned"
	case stateMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// Vec is a growable vector with a reentrancy guard. The zero value is an
// empty vector ready to use. Not goroutine-safe; hand it to another
// goroutine with Move or Send.
type Vec[A any] struct {
	data      []A
	state     state
	name      string
	recorder  Recorder
	copier    func(A) A
	checkouts uint64
}

// New creates an empty Vec.
func New[A any](opts ...Option) *Vec[A] {
	o := buildOptions(opts)
	return &Vec[A]{
		data:     make([]A, 0, o.capacity),
		name:     o.name,
		recorder: o.recorder,
	}
}

// FromElem creates a Vec holding the single element e.
func FromElem[A any](e A, opts ...Option) *Vec[A] {
	v := New[A](opts...)
	v.data = append(v.data, e)
	return v
}

// FromSlice creates a Vec that adopts s. The caller must not use s afterwards.
func FromSlice[A any](s []A, opts ...Option) *Vec[A] {
	o := buildOptions(opts)
	if cap(s) < o.capacity {
		s = slices.Grow(s, o.capacity-len(s))
	}
	return &Vec[A]{
		data:     s,
		name:     o.name,
		recorder: o.recorder,
	}
}

// Name returns the label given with WithName.
func (v *Vec[A]) Name() string {
	return v.name
}

// Len returns the number of elements currently in the vector.
func (v *Vec[A]) Len() int {
	v.checkNotBorrowed("Len")
	return len(v.data)
}

// Cap returns the capacity of the backing slice.
func (v *Vec[A]) Cap() int {
	v.checkNotBorrowed("Cap")
	return cap(v.data)
}

// IsEmpty reports whether the vector has no elements.
func (v *Vec[A]) IsEmpty() bool {
	return v.Len() == 0
}

// Reserve ensures room for at least n elements in total.
// Length and order are unchanged.
func (v *Vec[A]) Reserve(n int) {
	v.transform("Reserve", func(data []A) []A {
		return growTo(data, n)
	})
}

// Set overwrites the current contents with w, adopting it.
func (v *Vec[A]) Set(w []A) {
	v.checkNotBorrowed("Set")
	v.data = w
}

// Push appends e to the end of the vector.
func (v *Vec[A]) Push(e A) {
	v.checkNotBorrowed("Push")
	v.data = append(v.data, e)
}

// Pop removes and returns the last element.
// It panics with ErrEmptyContainer if the vector is empty.
func (v *Vec[A]) Pop() A {
	data := v.checkOut("Pop")
	n := len(data)
	if n == 0 {
		v.giveBack(data)
		panic(v.fail("Pop", ErrEmptyContainer, "pop from empty vector"))
	}
	e := data[n-1]
	var zero A
	data[n-1] = zero
	v.giveBack(data[:n-1])
	return e
}

// Shift removes and returns the first element, moving the rest down.
// It panics with ErrEmptyContainer if the vector is empty.
func (v *Vec[A]) Shift() A {
	data := v.checkOut("Shift")
	n := len(data)
	if n == 0 {
		v.giveBack(data)
		panic(v.fail("Shift", ErrEmptyContainer, "shift from empty vector"))
	}
	e := data[0]
	copy(data, data[1:])
	var zero A
	data[n-1] = zero
	v.giveBack(data[:n-1])
	return e
}

// Unshift inserts e at the front. This rebuilds the slice and is O(n).
func (v *Vec[A]) Unshift(e A) {
	old := v.checkOut("Unshift")
	data := make([]A, 0, len(old)+1)
	data = append(data, e)
	v.giveBack(append(data, old...))
}

// SetElt overwrites the element at idx with a.
func (v *Vec[A]) SetElt(idx int, a A) {
	v.checkNotBorrowed("SetElt")
	v.checkIndex("SetElt", idx)
	v.data[idx] = a
}

// Reverse reverses the elements in place.
func (v *Vec[A]) Reverse() {
	data := v.checkOut("Reverse")
	slices.Reverse(data)
	v.giveBack(data)
}

// Truncate drops every element at index n and beyond.
// It is a no-op if n >= Len().
func (v *Vec[A]) Truncate(n int) {
	if n < 0 {
		v.checkNotBorrowed("Truncate")
		panic(v.fail("Truncate", ErrIndexOutOfRange, "negative length %d", n))
	}
	data := v.checkOut("Truncate")
	if n < len(data) {
		clear(data[n:])
		data = data[:n]
	}
	v.giveBack(data)
}

// Clear removes all elements but keeps the backing capacity.
func (v *Vec[A]) Clear() {
	data := v.checkOut("Clear")
	clear(data)
	v.giveBack(data[:0])
}

// checkIndex panics with ErrIndexOutOfRange unless 0 <= idx < len.
// The caller must already have checked the container is not borrowed.
func (v *Vec[A]) checkIndex(op string, idx int) {
	if idx < 0 || idx >= len(v.data) {
		panic(v.fail(op, ErrIndexOutOfRange, "index %d out of range [0,%d)", idx, len(v.data)))
	}
}

// growTo returns data with capacity for at least n elements.
func growTo[A any](data []A, n int) []A {
	if n > cap(data) {
		return slices.Grow(data, n-len(data))
	}
	return data
}
