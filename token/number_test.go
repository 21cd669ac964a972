package token

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/jsontree/buffer"
)

func TestScanNumber(t *testing.T) {
	sts := []struct {
		in string
		f  float64
		n  int
		e  error
	}{
		{in: "0", f: 0, n: 1},
		{in: "42", f: 42, n: 2},
		{in: "-1", f: -1, n: 2},
		{in: "+1", f: 1, n: 2},
		{in: "3.14", f: 3.14, n: 4},
		{in: "1e3", f: 1000, n: 3},
		{in: "1E+3", f: 1000, n: 4},
		{in: "-1.5e-2", f: -0.015, n: 7},
		{in: "1e100", f: 1e100, n: 5},
		{in: "42,", f: 42, n: 2},
		{in: "3.14]", f: 3.14, n: 4},
		// a bare exponent marker is not consumed
		{in: "1e", f: 1, n: 1},
		{in: "1e+", f: 1, n: 1},
		{in: "-", e: ErrNumber},
		{in: "", e: ErrNumber},
		{in: ".", e: ErrNumber},
	}
	for _, st := range sts {
		f, n, err := ScanNumber([]byte(st.in))
		if st.e != nil {
			if !errors.Is(err, st.e) {
				t.Errorf("ScanNumber(%q): got err %v, want %v", st.in, err, st.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("ScanNumber(%q): %v", st.in, err)
			continue
		}
		if f != st.f || n != st.n {
			t.Errorf("ScanNumber(%q) = %v, %d; want %v, %d", st.in, f, n, st.f, st.n)
		}
	}
}

func number(t *testing.T, f float64, i int32) string {
	t.Helper()
	b := buffer.New(0)
	if err := AppendNumber(b, f, i); err != nil {
		t.Fatalf("AppendNumber(%v, %v): %v", f, i, err)
	}
	return string(b.Bytes())
}

func TestAppendNumber(t *testing.T) {
	nts := []struct {
		f    float64
		i    int32
		want string
	}{
		{f: 0, i: 0, want: "0"},
		{f: 3, i: 3, want: "3"},
		{f: -7, i: -7, want: "-7"},
		{f: 2147483647, i: 2147483647, want: "2147483647"},
		{f: -2147483648, i: -2147483648, want: "-2147483648"},
		// whole numbers outside the int32 range
		{f: 2147483648, i: 2147483647, want: "2147483648"},
		{f: 1e20, i: 2147483647, want: "100000000000000000000"},
		// NaN and infinities have no JSON token
		{f: math.NaN(), i: 0, want: "null"},
		{f: math.Inf(1), i: 2147483647, want: "null"},
		{f: math.Inf(-1), i: -2147483648, want: "null"},
		// exponential notation for extreme magnitudes
		{f: 1e100, i: 2147483647, want: "1.000000e+100"},
		{f: 1e-7, i: 0, want: "1.000000e-07"},
		{f: 12345678901.5, i: 2147483647, want: "1.234568e+10"},
		// fixed-point default precision in between
		{f: 0.5, i: 0, want: "0.500000"},
		{f: 3.14, i: 3, want: "3.140000"},
		{f: 123456.789, i: 123457, want: "123456.789000"},
	}
	for _, nt := range nts {
		if got := number(t, nt.f, nt.i); got != nt.want {
			t.Errorf("number(%v, %d) = %q, want %q", nt.f, nt.i, got, nt.want)
		}
	}
}

func TestAppendNumberFixed(t *testing.T) {
	b := buffer.Fixed(make([]byte, 2))
	if err := AppendNumber(b, 123, 123); !errors.Is(err, buffer.ErrFixedFull) {
		t.Errorf("got %v, want ErrFixedFull", err)
	}
}
