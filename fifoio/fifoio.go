// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fifoio provides io.Reader and io.Writer based adapters for
// staging bytes through a fifo.View. None of the functions here allocate
// the memory used for staging, with the exception of LineReader which
// grows its buffer when it encounters a line longer than its current
// capacity.
package fifoio

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/errors"
	"cloudeng.io/fifo"
	"cloudeng.io/logging/ctxlog"
)

var (
	// ErrFull is returned by Fill when the view has no room for more data.
	ErrFull = errors.New("fifoio: buffer is full")
	// ErrEmptyBuffer is returned when a zero length buffer is supplied.
	ErrEmptyBuffer = errors.New("fifoio: empty buffer")
)

// maxConsecutiveEmptyReads matches the limit used by bufio.
const maxConsecutiveEmptyReads = 100

// Fill performs a single Read from r into the free space of v, compacting
// v as needed, and commits the number of bytes read.
func Fill(v *fifo.View[byte], r io.Reader) (int, error) {
	w := v.PrepareWrite()
	if len(w) == 0 {
		return 0, ErrFull
	}
	n, err := r.Read(w)
	if cerr := v.TryCommitWrite(n); cerr != nil {
		return 0, fmt.Errorf("fifoio: invalid count returned by Read: %w", cerr)
	}
	return n, err
}

// Drain performs a single Write of the live data in v to w and consumes
// the number of bytes written.
func Drain(v *fifo.View[byte], w io.Writer) (int, error) {
	if v.IsEmpty() {
		return 0, nil
	}
	n, err := w.Write(v.Read())
	if cerr := v.TryConsume(n); cerr != nil {
		return 0, fmt.Errorf("fifoio: invalid count returned by Write: %w", cerr)
	}
	return n, err
}

// Copy copies from src to dst until src returns io.EOF, an error occurs or
// ctx is canceled, staging the data through buf. It returns the number of
// bytes written to dst; io.EOF is not treated as an error.
func Copy(ctx context.Context, dst io.Writer, src io.Reader, buf []byte) (int64, error) {
	if len(buf) == 0 {
		return 0, ErrEmptyBuffer
	}
	v := fifo.New(buf)
	written, reads, err := stage(ctx, dst, src, &v)
	logger := ctxlog.Logger(ctx)
	if err != nil {
		logger.Debug("fifoio: copy failed", "bytes", written, "reads", reads, "block", len(buf), "error", err)
		return written, err
	}
	logger.Debug("fifoio: copy done", "bytes", written, "reads", reads, "block", len(buf))
	return written, nil
}

func stage(ctx context.Context, dst io.Writer, src io.Reader, v *fifo.View[byte]) (written int64, reads int, err error) {
	empty := 0
	for {
		if cerr := ctx.Err(); cerr != nil {
			return written, reads, cerr
		}
		n, rerr := Fill(v, src)
		reads++
		if n == 0 && rerr == nil {
			if empty++; empty >= maxConsecutiveEmptyReads {
				return written, reads, io.ErrNoProgress
			}
			continue
		}
		empty = 0
		for !v.IsEmpty() {
			wn, werr := Drain(v, dst)
			written += int64(wn)
			if werr == nil && wn == 0 {
				werr = io.ErrShortWrite
			}
			if werr != nil {
				return written, reads, werr
			}
		}
		if rerr == io.EOF {
			return written, reads, nil
		}
		if rerr != nil {
			return written, reads, rerr
		}
	}
}
