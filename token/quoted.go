package token

import (
	"unicode/utf8"

	"github.com/signadot/jsontree/buffer"
)

// Unquote decodes a quoted string at the start of d, returning the
// decoded value and the number of input bytes consumed, including both
// quotes. On failure the returned count is the offset of the offending
// byte within d.
//
// Escapes are \" \\ \/ \b \f \n \r \t and \uXXXX, where \u sequences
// decode UTF-16, including surrogate pairs, to UTF-8.
func Unquote(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", 0, ErrUnterminated
	}
	// find the closing quote, noting whether any escape occurs
	end := 1
	esc := false
	for end < len(d) && d[end] != '"' {
		if d[end] == '\\' {
			if end+1 >= len(d) {
				return "", end, ErrUnterminated
			}
			esc = true
			end++
		}
		end++
	}
	if end >= len(d) {
		return "", end, ErrUnterminated
	}
	if !esc {
		return string(d[1:end]), end + 1, nil
	}
	out := make([]byte, 0, end-1)
	i := 1
	for i < end {
		c := d[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		switch d[i+1] {
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case '"', '\\', '/':
			out = append(out, d[i+1])
		case 'u':
			r, n, err := utf16Escape(d[i:end])
			if err != nil {
				return "", i, err
			}
			out = utf8.AppendRune(out, r)
			i += n
			continue
		default:
			return "", i, ErrBadEscape
		}
		i += 2
	}
	return string(out), end + 1, nil
}

// utf16Escape decodes one \uXXXX sequence, or two forming a surrogate
// pair, at the start of d. It returns the codepoint and the number of
// bytes consumed.
func utf16Escape(d []byte) (rune, int, error) {
	if len(d) < 6 {
		return 0, 0, ErrBadUnicode
	}
	first, ok := hex4(d[2:6])
	if !ok {
		return 0, 0, ErrBadUnicode
	}
	// a zero codepoint or a lone low surrogate is invalid
	if first == 0 || (first >= 0xDC00 && first <= 0xDFFF) {
		return 0, 0, ErrBadUnicode
	}
	if first < 0xD800 || first > 0xDBFF {
		return rune(first), 6, nil
	}
	// high surrogate: the low half must follow immediately
	if len(d) < 12 || d[6] != '\\' || d[7] != 'u' {
		return 0, 0, ErrBadUnicode
	}
	second, ok := hex4(d[8:12])
	if !ok || second < 0xDC00 || second > 0xDFFF {
		return 0, 0, ErrBadUnicode
	}
	cp := 0x10000 + (first&0x3FF)<<10 + second&0x3FF
	return rune(cp), 12, nil
}

func hex4(d []byte) (uint32, bool) {
	var h uint32
	for i := 0; i < 4; i++ {
		h <<= 4
		switch c := d[i]; {
		case c >= '0' && c <= '9':
			h += uint32(c - '0')
		case c >= 'a' && c <= 'f':
			h += uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			h += uint32(c-'A') + 10
		default:
			return 0, false
		}
	}
	return h, true
}

const hexDigits = "0123456789abcdef"

// AppendQuote appends s to b as a quoted, escaped string. A first pass
// detects whether anything needs escaping; strings of plain bytes are
// copied verbatim between quotes.
func AppendQuote(b *buffer.Buffer, s string) error {
	special := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 32 || c == '"' || c == '\\' {
			special = true
			break
		}
	}
	if !special {
		w, err := b.Ensure(len(s) + 2)
		if err != nil {
			return err
		}
		w[0] = '"'
		copy(w[1:], s)
		w[len(s)+1] = '"'
		b.Advance(len(s) + 2)
		return nil
	}
	// exact expanded length
	n := 2
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"' || c == '\\' || c == '\b' || c == '\f' || c == '\n' || c == '\r' || c == '\t':
			n += 2
		case c < 32:
			n += 6 // \u00XX
		default:
			n++
		}
	}
	w, err := b.Ensure(n)
	if err != nil {
		return err
	}
	j := 0
	w[j] = '"'
	j++
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c > 31 && c != '"' && c != '\\' {
			w[j] = c
			j++
			continue
		}
		w[j] = '\\'
		j++
		switch c {
		case '"', '\\':
			w[j] = c
		case '\b':
			w[j] = 'b'
		case '\f':
			w[j] = 'f'
		case '\n':
			w[j] = 'n'
		case '\r':
			w[j] = 'r'
		case '\t':
			w[j] = 't'
		default:
			w[j] = 'u'
			w[j+1] = '0'
			w[j+2] = '0'
			w[j+3] = hexDigits[c>>4]
			w[j+4] = hexDigits[c&0xF]
			j += 4
		}
		j++
	}
	w[j] = '"'
	b.Advance(n)
	return nil
}
