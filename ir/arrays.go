package ir

// FromSlice builds an array node owning the given children.
func FromSlice(ys []*Node) *Node {
	res := Array()
	for _, y := range ys {
		res.Append(y)
	}
	return res
}

func FromInts(vs []int) *Node {
	res := Array()
	for _, v := range vs {
		res.Append(FromInt(int64(v)))
	}
	return res
}

func FromFloat64s(vs []float64) *Node {
	res := Array()
	for _, v := range vs {
		res.Append(FromFloat(v))
	}
	return res
}

func FromStrings(vs []string) *Node {
	res := Array()
	for _, v := range vs {
		res.Append(FromString(v))
	}
	return res
}
