// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fifoio_test

import (
	"bytes"
	"testing"

	"cloudeng.io/errors"
	"cloudeng.io/fifo/fifoio"
)

func chunks(b []byte, size int) [][]byte {
	var r [][]byte
	for len(b) > 0 {
		n := min(size, len(b))
		r = append(r, b[:n])
		b = b[n:]
	}
	return r
}

func TestWriter(t *testing.T) {
	data := randomData(1000)
	for _, bufSize := range []int{1, 3, 8, 64, 2000} {
		for _, chunkSize := range []int{1, 2, 5, 100, 1000} {
			var out bytes.Buffer
			wr := fifoio.NewWriter(&out, make([]byte, bufSize))
			for _, c := range chunks(data, chunkSize) {
				n, err := wr.Write(c)
				if err != nil || n != len(c) {
					t.Fatalf("%v/%v: got %v, %v, want %v, nil", bufSize, chunkSize, n, err, len(c))
				}
			}
			if err := wr.Flush(); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(out.Bytes(), data) {
				t.Errorf("%v/%v: output differs from input", bufSize, chunkSize)
			}
		}
	}
}

func TestWriterBuffering(t *testing.T) {
	var out bytes.Buffer
	wr := fifoio.NewWriter(&out, make([]byte, 8))
	expect := func(buffered, available int, written string) {
		t.Helper()
		if got, want := wr.Buffered(), buffered; got != want {
			t.Errorf("buffered: got %v, want %v", got, want)
		}
		if got, want := wr.Available(), available; got != want {
			t.Errorf("available: got %v, want %v", got, want)
		}
		if got, want := out.String(), written; got != want {
			t.Errorf("written: got %v, want %v", got, want)
		}
	}
	expect(0, 8, "")
	wr.Write([]byte("abc"))
	expect(3, 5, "")
	wr.Write([]byte("defgh"))
	expect(8, 0, "")
	wr.Write([]byte("ij"))
	expect(2, 6, "abcdefgh")
	wr.Write([]byte("klmnopq"))
	expect(1, 7, "abcdefghijklmnop")

	// Large writes bypass the buffer once it is empty.
	if err := wr.Flush(); err != nil {
		t.Fatal(err)
	}
	wr.Write([]byte("0123456789"))
	expect(0, 8, "abcdefghijklmnopq0123456789")
}

type closer struct {
	bytes.Buffer
	closed bool
	err    error
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestWriterErrors(t *testing.T) {
	out := &limitedWriter{limit: 2}
	wr := fifoio.NewWriter(out, make([]byte, 4))
	if _, err := wr.Write([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	n, err := wr.Write([]byte("defg"))
	if err != errBoom || n != 1 {
		t.Errorf("got %v, %v, want 1, %v", n, err, errBoom)
	}
	if _, err := wr.Write([]byte("x")); err != errBoom {
		t.Errorf("got %v, want %v", err, errBoom)
	}
	if err := wr.Flush(); err != errBoom {
		t.Errorf("got %v, want %v", err, errBoom)
	}

	errClose := errors.New("close")
	c := &closer{err: errClose}
	wr = fifoio.NewWriter(c, make([]byte, 4))
	wr.Write([]byte("xy"))
	err = wr.Close()
	if !errors.Is(err, errClose) || !c.closed {
		t.Errorf("unexpected error or close state: %v, %v", err, c.closed)
	}
	if got, want := c.String(), "xy"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	c = &closer{}
	wr = fifoio.NewWriter(c, make([]byte, 4))
	if err := wr.Close(); err != nil || !c.closed {
		t.Errorf("unexpected error or close state: %v, %v", err, c.closed)
	}
}
