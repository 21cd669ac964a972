// Package buffer provides the byte accumulator used by the encoder.
//
// A Buffer either grows on demand or is backed by caller-fixed storage
// that is never exceeded. The fixed mode supports constrained
// environments where allocation during rendering is unwanted: rendering
// into a too-small buffer fails instead of growing.
package buffer

import (
	"errors"
	"math"
)

var (
	// ErrFixedFull reports that a fixed buffer has no room for a write.
	ErrFixedFull = errors.New("fixed buffer full")
	// ErrTooLarge reports a request past the maximum representable length.
	ErrTooLarge = errors.New("buffer too large")
)

const maxLen = math.MaxInt

// Buffer is an append-only byte accumulator.
type Buffer struct {
	d     []byte
	off   int
	fixed bool
}

// New returns a growable buffer with an initial capacity of hint bytes.
// The hint only reduces reallocation; correctness does not depend on it.
func New(hint int) *Buffer {
	if hint < 0 {
		hint = 0
	}
	return &Buffer{d: make([]byte, hint)}
}

// Fixed returns a buffer backed by d. It never allocates and never
// writes past len(d); writes that do not fit fail with ErrFixedFull.
func Fixed(d []byte) *Buffer {
	return &Buffer{d: d, fixed: true}
}

// Ensure guarantees n writable bytes at the current offset and returns
// them as a window into the storage. The window is valid until the next
// call on the buffer. Written bytes are committed with Advance.
func (b *Buffer) Ensure(n int) ([]byte, error) {
	if n < 0 || n > maxLen-b.off {
		return nil, ErrTooLarge
	}
	need := b.off + n
	if need <= len(b.d) {
		return b.d[b.off:need], nil
	}
	if b.fixed {
		return nil, ErrFixedFull
	}
	size := need
	if size <= maxLen/2 {
		size *= 2
	} else {
		size = maxLen
	}
	nd := make([]byte, size)
	copy(nd, b.d[:b.off])
	b.d = nd
	return b.d[b.off:need], nil
}

// Advance commits n bytes written into a window returned by Ensure.
func (b *Buffer) Advance(n int) {
	b.off += n
}

func (b *Buffer) AppendByte(c byte) error {
	w, err := b.Ensure(1)
	if err != nil {
		return err
	}
	w[0] = c
	b.off++
	return nil
}

func (b *Buffer) AppendString(s string) error {
	w, err := b.Ensure(len(s))
	if err != nil {
		return err
	}
	copy(w, s)
	b.off += len(s)
	return nil
}

func (b *Buffer) Append(d []byte) error {
	w, err := b.Ensure(len(d))
	if err != nil {
		return err
	}
	copy(w, d)
	b.off += len(d)
	return nil
}

// Len returns the number of committed bytes.
func (b *Buffer) Len() int { return b.off }

// Cap returns the total storage length.
func (b *Buffer) Cap() int { return len(b.d) }

// Bytes returns the committed content. The slice aliases the buffer's
// storage and is invalidated by further writes.
func (b *Buffer) Bytes() []byte { return b.d[:b.off] }

// Reset discards the content, keeping the storage.
func (b *Buffer) Reset() { b.off = 0 }

// Write implements io.Writer.
func (b *Buffer) Write(d []byte) (int, error) {
	if err := b.Append(d); err != nil {
		return 0, err
	}
	return len(d), nil
}
