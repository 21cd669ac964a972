package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/signadot/jsontree/buffer"
)

// epsilon is the tolerance used when deciding whether a float carries
// an exact integral value.
const epsilon = 2.220446049250313e-16

// ScanNumber reads a number at the start of d: an optional sign, digits,
// an optional fraction, and an optional exponent. It returns the value
// and the number of bytes consumed, failing with ErrNumber when no
// digits are consumed.
func ScanNumber(d []byte) (float64, int, error) {
	i := 0
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	digits := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
		digits++
	}
	if i < len(d) && d[i] == '.' {
		i++
		for i < len(d) && asciiDigit(d[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0, ErrNumber
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		j := i + 1
		if j < len(d) && (d[j] == '+' || d[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(d) && asciiDigit(d[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	// overflow saturates to an infinity, as strtod does
	f, err := strconv.ParseFloat(string(d[:i]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, 0, ErrNumber
	}
	return f, i, nil
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// AppendNumber renders a numeric value. The format depends on the value:
// a float carrying its saturated int32 mirror exactly prints as plain
// decimal; NaN and infinities print as null (JSON has no token for
// them); whole numbers below 1e60 print with no decimals; very small or
// very large magnitudes print in exponential notation; everything else
// prints fixed-point with default precision.
func AppendNumber(b *buffer.Buffer, f float64, i int32) error {
	var scratch [64]byte
	var out []byte
	switch {
	case math.Abs(float64(i)-f) <= epsilon && f >= math.MinInt32 && f <= math.MaxInt32:
		out = strconv.AppendInt(scratch[:0], int64(i), 10)
	case f*0 != 0:
		out = append(scratch[:0], "null"...)
	case math.Abs(math.Floor(f)-f) <= epsilon && math.Abs(f) < 1.0e60:
		out = strconv.AppendFloat(scratch[:0], f, 'f', 0, 64)
	case math.Abs(f) < 1.0e-6 || math.Abs(f) > 1.0e9:
		out = fmt.Appendf(scratch[:0], "%e", f)
	default:
		out = fmt.Appendf(scratch[:0], "%f", f)
	}
	return b.Append(out)
}
