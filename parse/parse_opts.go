package parse

type parseOpts struct {
	requireFull bool
	end         *int
}

type ParseOption func(*parseOpts)

// RequireFull rejects any non-whitespace byte left after the top-level
// value.
func RequireFull() ParseOption {
	return func(o *parseOpts) { o.requireFull = true }
}

// ParseEnd records the byte offset one past the parsed value.
func ParseEnd(end *int) ParseOption {
	return func(o *parseOpts) { o.end = end }
}
