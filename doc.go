// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fifo provides View, a first-in-first-out staging buffer over
// memory that it does not own. Data is appended at the tail and consumed
// from the head; when space runs out at the tail the live region is
// shifted (compacted) to the start of the block.
//
// View never allocates or frees memory, it only manages cursors over a
// slice supplied by the caller. The caller must keep that slice alive and
// must not modify it through any other path while it is bound to a View.
// Slices returned by PrepareWrite and Read refer directly to the bound
// block and are invalidated by any subsequent call that may compact it,
// namely PrepareWrite, CanWrite, Write, Relocate and Rebind.
//
// A View is not safe for concurrent use, not even by concurrent readers,
// since a write may move the live data.
//
//	block := make([]byte, 4096)
//	v := fifo.New(block)
//	n, _ := conn.Read(v.PrepareWrite())
//	v.CommitWrite(n)
//	...
//	line := v.Read()
//	v.Consume(len(line))
//
// Misuse, such as committing more elements than were made available by
// PrepareWrite or consuming more than Available, is treated as a programming
// error and results in a panic whose value is an error that satisfies
// errors.Is(err, ErrContract). These checks can be compiled out with the
// fifo_unchecked build tag. TryCommitWrite, TryConsume and TryRelocate
// are always checked and return errors instead.
package fifo
