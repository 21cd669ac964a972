package token

// Minify returns d with insignificant whitespace and comments removed.
// Both // line comments and /* */ block comments are stripped. String
// literals are copied verbatim, escapes included, so quote and comment
// characters inside strings are preserved.
func Minify(d []byte) []byte {
	out := make([]byte, 0, len(d))
	i := 0
	for i < len(d) {
		switch c := d[i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/' && i+1 < len(d) && d[i+1] == '/':
			for i < len(d) && d[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(d) && d[i+1] == '*':
			i += 2
			for i+1 < len(d) && !(d[i] == '*' && d[i+1] == '/') {
				i++
			}
			if i+1 < len(d) {
				i += 2
			} else {
				i = len(d)
			}
		case c == '"':
			out = append(out, c)
			i++
			for i < len(d) && d[i] != '"' {
				if d[i] == '\\' && i+1 < len(d) {
					out = append(out, d[i])
					i++
				}
				out = append(out, d[i])
				i++
			}
			if i < len(d) {
				out = append(out, '"')
				i++
			}
		default:
			out = append(out, c)
			i++
		}
	}
	return out
}
