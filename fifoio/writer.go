// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fifoio

import (
	"io"

	"cloudeng.io/errors"
	"cloudeng.io/fifo"
)

// Writer buffers writes to an underlying io.Writer using a caller supplied
// buffer. Once an error is encountered writing to the underlying writer
// all subsequent calls return that error.
type Writer struct {
	wr  io.Writer
	v   fifo.View[byte]
	err error
}

// NewWriter returns a Writer that stages writes to wr through buf.
func NewWriter(wr io.Writer, buf []byte) *Writer {
	return &Writer{wr: wr, v: fifo.New(buf)}
}

// Write implements io.Writer. Writes that are larger than the buffer are
// written directly to the underlying writer once any buffered data has
// been flushed.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	written := 0
	for len(p) > 0 {
		if w.v.CanWrite(len(p)) {
			n := copy(w.v.PrepareWrite(), p)
			w.v.CommitWrite(n)
			return written + n, nil
		}
		if w.v.IsEmpty() {
			n, err := w.wr.Write(p)
			written += n
			w.err = err
			return written, err
		}
		n := w.v.Write(p)
		written += n
		p = p[n:]
		if err := w.Flush(); err != nil {
			return written, err
		}
	}
	return written, nil
}

// Flush writes all buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	for !w.v.IsEmpty() {
		n, err := Drain(&w.v, w.wr)
		if err == nil && n == 0 {
			err = io.ErrShortWrite
		}
		if err != nil {
			w.err = err
			return err
		}
	}
	return nil
}

// Buffered returns the number of bytes waiting to be flushed.
func (w *Writer) Buffered() int {
	return w.v.Available()
}

// Available returns the number of bytes that can be written without
// a flush.
func (w *Writer) Available() int {
	return w.v.Cap() - w.v.Available()
}

// Close flushes any buffered data and closes the underlying writer if it
// implements io.Closer. The underlying writer is closed even if the flush
// fails.
func (w *Writer) Close() error {
	var errs errors.M
	errs.Append(w.Flush())
	if c, ok := w.wr.(io.Closer); ok {
		errs.Append(c.Close())
	}
	return errs.Err()
}
