// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fifo

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrContract is the error wrapped by all ContractErrors.
var ErrContract = errors.New("fifo: contract violation")

// ContractError describes a call that violates the contract of a View
// method, such as committing more elements than the free space after the
// tail or consuming more elements than are available. The cursors are
// those of the View at the time of the call.
type ContractError struct {
	Op     string
	N      int
	Head   int
	Tail   int
	Cap    int
	Reason string
}

// Error implements error.
func (e *ContractError) Error() string {
	return fmt.Sprintf("fifo: %s(%d): %s: head %d, tail %d, cap %d", e.Op, e.N, e.Reason, e.Head, e.Tail, e.Cap)
}

// Unwrap returns ErrContract.
func (e *ContractError) Unwrap() error {
	return ErrContract
}

// violation panics with err annotated with the location of the caller
// of the View method that detected it.
func violation(err error) {
	panic(errors.Annotate(errors.FileLocation(3, 2), err))
}

func (v *View[T]) contractError(op string, n int, reason string) *ContractError {
	return &ContractError{
		Op:     op,
		N:      n,
		Head:   v.head,
		Tail:   v.tail,
		Cap:    len(v.data),
		Reason: reason,
	}
}

func (v *View[T]) commitError(n int) error {
	switch {
	case n < 0:
		return v.contractError("CommitWrite", n, "negative count")
	case n > len(v.data)-v.tail:
		return v.contractError("CommitWrite", n, "count exceeds the free space after the tail")
	}
	return nil
}

func (v *View[T]) consumeError(n int) error {
	switch {
	case n < 0:
		return v.contractError("Consume", n, "negative count")
	case n > v.tail-v.head:
		return v.contractError("Consume", n, "count exceeds the available data")
	}
	return nil
}

func (v *View[T]) relocateError(block []T) error {
	if len(block) < v.Available() {
		return v.contractError("Relocate", len(block), "block is smaller than the available data")
	}
	return nil
}

// TryCommitWrite is like CommitWrite but returns a *ContractError rather
// than panicking if n is out of range, in which case the View is not
// modified. It checks its arguments regardless of the fifo_unchecked
// build tag.
func (v *View[T]) TryCommitWrite(n int) error {
	if err := v.commitError(n); err != nil {
		return err
	}
	v.tail += n
	return nil
}

// TryConsume is like Consume but returns a *ContractError rather than
// panicking if n is out of range, in which case the View is not modified.
func (v *View[T]) TryConsume(n int) error {
	if err := v.consumeError(n); err != nil {
		return err
	}
	v.head += n
	return nil
}

// TryRelocate is like Relocate but returns a *ContractError rather than
// panicking if block is too small, in which case the View is not modified.
func (v *View[T]) TryRelocate(block []T) error {
	if err := v.relocateError(block); err != nil {
		return err
	}
	v.relocate(block)
	return nil
}
