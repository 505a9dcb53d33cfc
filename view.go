// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fifo

import (
	"fmt"
	"iter"
)

// View is a first-in-first-out buffer over a caller supplied block of
// elements. The zero value is a null View that has no block bound to it.
type View[T any] struct {
	data []T
	// 0 <= head <= tail <= len(data); the live data is data[head:tail].
	head int
	tail int
}

// New returns a View bound to block with no live data. An empty block
// cannot be bound, so a nil or empty block results in a null View.
func New[T any](block []T) View[T] {
	if len(block) == 0 {
		return View[T]{}
	}
	return View[T]{data: block}
}

// IsNull returns true if no block is bound to the View.
func (v *View[T]) IsNull() bool {
	return v.data == nil
}

// IsBound returns true if a block is bound to the View.
func (v *View[T]) IsBound() bool {
	return v.data != nil
}

// Buffer returns the entire bound block, or nil for a null View.
func (v *View[T]) Buffer() []T {
	return v.data
}

// Cap returns the number of elements in the bound block.
func (v *View[T]) Cap() int {
	return len(v.data)
}

// Available returns the number of live, ie. unread, elements.
func (v *View[T]) Available() int {
	return v.tail - v.head
}

// IsEmpty returns true if there is no live data.
func (v *View[T]) IsEmpty() bool {
	return v.head == v.tail
}

// IsFull returns true if the live data occupies the entire block. Note
// that a View whose live data ends at the end of the block but does
// not start at its beginning is not full since compacting it will make
// room for more data.
func (v *View[T]) IsFull() bool {
	return v.head == 0 && v.tail == len(v.data)
}

// SetNull unbinds the block, if any, and resets the cursors.
func (v *View[T]) SetNull() {
	v.data = nil
	v.head, v.tail = 0, 0
}

// Rebind binds the View to block, discarding any live data. The caller is
// responsible for not rebinding over data that it still needs. block must
// not be empty.
func (v *View[T]) Rebind(block []T) {
	if checksEnabled && len(block) == 0 {
		violation(v.contractError("Rebind", len(block), "empty block"))
	}
	v.data = block
	v.head, v.tail = 0, 0
}

// Relocate moves the live data, in order, to the start of block and binds
// the View to it. block must be able to hold all of the live data.
// block may overlap with the currently bound block.
func (v *View[T]) Relocate(block []T) {
	if checksEnabled {
		if err := v.relocateError(block); err != nil {
			violation(err)
		}
	}
	v.relocate(block)
}

func (v *View[T]) relocate(block []T) {
	if len(block) == 0 {
		block = nil
	}
	v.tail = copy(block, v.data[v.head:v.tail])
	v.head = 0
	v.data = block
}

// Take returns a View with the block and cursors of v and leaves v
// as a null View.
func (v *View[T]) Take() View[T] {
	nv := *v
	v.SetNull()
	return nv
}

// Clear discards all live data. The contents of the block are not
// modified.
func (v *View[T]) Clear() {
	v.head, v.tail = 0, 0
}

// PrepareWrite compacts the live data and returns the free space following
// it. The caller may write any number of elements to the returned slice
// and must then call CommitWrite with that number.
func (v *View[T]) PrepareWrite() []T {
	v.shift()
	return v.data[v.tail:len(v.data):len(v.data)]
}

// CanWrite returns true if n elements can be written following the live
// data. If the space is only available after compacting the live data then
// CanWrite will compact it before returning true, that is, CanWrite may
// move the live data within the block and hence invalidate previously
// returned slices even though it looks like a query. It returns false,
// without modifying anything, if n elements will never fit alongside the
// current live data.
func (v *View[T]) CanWrite(n int) bool {
	if checksEnabled && n < 0 {
		violation(v.contractError("CanWrite", n, "negative count"))
	}
	if n <= len(v.data)-v.tail {
		return true
	}
	if n > len(v.data)-v.Available() {
		return false
	}
	v.shift()
	return true
}

// CommitWrite extends the live data by n elements that have been written
// to the slice returned by PrepareWrite.
func (v *View[T]) CommitWrite(n int) {
	if checksEnabled {
		if err := v.commitError(n); err != nil {
			violation(err)
		}
	}
	v.tail += n
}

// Write appends as many elements of p as will fit, compacting the live
// data if necessary, and returns the number appended.
func (v *View[T]) Write(p []T) int {
	if len(p) > len(v.data)-v.tail {
		v.shift()
	}
	n := copy(v.data[v.tail:], p)
	v.tail += n
	return n
}

// Read returns the live data. The returned slice may be modified in place,
// for example whilst parsing it.
func (v *View[T]) Read() []T {
	return v.data[v.head:v.tail:v.tail]
}

// Consume marks the first n elements of the live data as read.
func (v *View[T]) Consume(n int) {
	if checksEnabled {
		if err := v.consumeError(n); err != nil {
			violation(err)
		}
	}
	v.head += n
}

// ReadCopy copies up to len(dst) elements of the live data to dst and
// consumes them. It returns the number of elements copied, which will
// be less than len(dst) if fewer elements were available.
func (v *View[T]) ReadCopy(dst []T) int {
	n := copy(dst, v.data[v.head:v.tail])
	v.head += n
	return n
}

// All returns an iterator over the live data, the index yielded is
// relative to the first live element. The data is not consumed.
func (v *View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.data[v.head:v.tail] {
			if !yield(i, e) {
				return
			}
		}
	}
}

// String implements fmt.Stringer.
func (v *View[T]) String() string {
	if v.IsNull() {
		return "fifo.View{null}"
	}
	return fmt.Sprintf("fifo.View{head: %d, tail: %d, cap: %d}", v.head, v.tail, len(v.data))
}

// shift moves the live data to the start of the block.
func (v *View[T]) shift() {
	if v.head == 0 {
		return
	}
	copy(v.data, v.data[v.head:v.tail])
	v.tail -= v.head
	v.head = 0
}
