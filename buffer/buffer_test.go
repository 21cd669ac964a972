package buffer

import (
	"bytes"
	"errors"
	"testing"
)

func TestGrow(t *testing.T) {
	b := New(2)
	for i := 0; i < 100; i++ {
		if err := b.AppendByte(byte('a' + i%26)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if b.Len() != 100 {
		t.Errorf("got len %d, want 100", b.Len())
	}
	if b.Cap() < 100 {
		t.Errorf("cap %d < len", b.Cap())
	}
	if b.Bytes()[0] != 'a' || b.Bytes()[99] != byte('a'+99%26) {
		t.Errorf("content corrupted after growth: %q", b.Bytes())
	}
}

func TestEnsureAdvance(t *testing.T) {
	b := New(0)
	w, err := b.Ensure(5)
	if err != nil {
		t.Fatal(err)
	}
	copy(w, "hello")
	b.Advance(5)
	if string(b.Bytes()) != "hello" {
		t.Errorf("got %q", b.Bytes())
	}
	// ensure without advance reserves nothing
	if _, err := b.Ensure(1000); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 5 {
		t.Errorf("len changed by Ensure: %d", b.Len())
	}
}

func TestFixed(t *testing.T) {
	d := make([]byte, 4)
	b := Fixed(d)
	if err := b.AppendString("abcd"); err != nil {
		t.Fatal(err)
	}
	err := b.AppendByte('e')
	if !errors.Is(err, ErrFixedFull) {
		t.Errorf("got %v, want ErrFixedFull", err)
	}
	if !bytes.Equal(d, []byte("abcd")) {
		t.Errorf("backing storage corrupted: %q", d)
	}
	if b.Len() != 4 {
		t.Errorf("offset moved on failed write: %d", b.Len())
	}
}

func TestTooLarge(t *testing.T) {
	b := New(0)
	if _, err := b.Ensure(-1); !errors.Is(err, ErrTooLarge) {
		t.Errorf("negative: got %v", err)
	}
	// maxLen more bytes can never fit alongside existing content
	if err := b.AppendByte('x'); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Ensure(maxLen); !errors.Is(err, ErrTooLarge) {
		t.Errorf("got %v, want ErrTooLarge", err)
	}
}

func TestWriter(t *testing.T) {
	b := New(0)
	n, err := b.Write([]byte("abc"))
	if err != nil || n != 3 {
		t.Fatalf("got %d, %v", n, err)
	}
	if string(b.Bytes()) != "abc" {
		t.Errorf("got %q", b.Bytes())
	}
}
