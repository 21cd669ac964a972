package encode

type EncodeOption func(*EncState)

// Pretty selects human-readable rendering: object members one per line
// indented with tabs, array elements separated by comma-space.
func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// SizeHint presizes the rendering buffer. The hint only reduces
// reallocation; rendering is correct with any hint.
func SizeHint(n int) EncodeOption {
	return func(es *EncState) { es.hint = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
