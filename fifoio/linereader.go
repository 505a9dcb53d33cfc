// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fifoio

import (
	"bytes"
	"io"

	"cloudeng.io/errors"
	"cloudeng.io/fifo"
)

// ErrLineTooLong is returned by LineReader.ReadLine when a line does not
// fit in the reader's maximum buffer size.
var ErrLineTooLong = errors.New("fifoio: line too long")

const minGrowth = 512

// LineReader reads newline terminated lines from an io.Reader. Lines are
// returned in place, that is, as slices of its internal buffer.
type LineReader struct {
	rd      io.Reader
	v       fifo.View[byte]
	limit   int
	scanned int // bytes following the head known not to contain a newline.
	lines   int
	err     error
}

// NewLineReader returns a LineReader that initially uses buf for its
// buffer and will grow it, as needed, up to maxSize bytes. A maxSize
// smaller than len(buf) is treated as len(buf).
func NewLineReader(rd io.Reader, buf []byte, maxSize int) *LineReader {
	return &LineReader{
		rd:    rd,
		v:     fifo.New(buf),
		limit: max(maxSize, len(buf)),
	}
}

// ReadLine returns the next line with its trailing newline, and carriage
// return if any, removed. The returned slice refers to the reader's buffer
// and is only valid until the next call to ReadLine or Read. A final line
// that is not newline terminated is returned before io.EOF.
func (lr *LineReader) ReadLine() ([]byte, error) {
	for {
		data := lr.v.Read()
		if i := bytes.IndexByte(data[lr.scanned:], '\n'); i >= 0 {
			i += lr.scanned
			lr.v.Consume(i + 1)
			lr.scanned = 0
			lr.lines++
			return trimCR(data[:i]), nil
		}
		lr.scanned = len(data)
		if lr.err != nil {
			if len(data) == 0 {
				return nil, lr.err
			}
			lr.v.Consume(len(data))
			lr.scanned = 0
			lr.lines++
			return trimCR(data), nil
		}
		if err := lr.fill(); err != nil {
			return nil, err
		}
	}
}

// Read implements io.Reader.
func (lr *LineReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if lr.v.IsEmpty() {
		if lr.err != nil {
			return 0, lr.err
		}
		if err := lr.fill(); err != nil {
			return 0, err
		}
	}
	n := lr.v.ReadCopy(p)
	lr.scanned = max(lr.scanned-n, 0)
	if n == 0 {
		return 0, lr.err
	}
	return n, nil
}

// LineNumber returns the number of lines returned by ReadLine so far.
func (lr *LineReader) LineNumber() int {
	return lr.lines
}

// Buffered returns the number of bytes read from the underlying reader
// but not yet returned.
func (lr *LineReader) Buffered() int {
	return lr.v.Available()
}

// fill reads more data into the buffer, growing it if it is full. Errors
// from the underlying reader are recorded in lr.err and are not returned.
func (lr *LineReader) fill() error {
	if lr.v.IsFull() {
		if err := lr.grow(); err != nil {
			return err
		}
	}
	for range maxConsecutiveEmptyReads {
		n, err := Fill(&lr.v, lr.rd)
		if err != nil {
			lr.err = err
			return nil
		}
		if n > 0 {
			return nil
		}
	}
	lr.err = io.ErrNoProgress
	return nil
}

func (lr *LineReader) grow() error {
	size := min(max(lr.v.Cap()*2, minGrowth), lr.limit)
	if size <= lr.v.Cap() {
		return ErrLineTooLong
	}
	lr.v.Relocate(make([]byte, size))
	return nil
}

func trimCR(line []byte) []byte {
	if l := len(line); l > 0 && line[l-1] == '\r' {
		return line[:l-1]
	}
	return line
}
