package ir

// Len returns the number of children.
func (y *Node) Len() int { return len(y.Values) }

// Index returns the i'th child, or nil when out of range.
func (y *Node) Index(i int) *Node {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Append attaches child as the last element of y.
func (y *Node) Append(child *Node) {
	child.Parent = y
	child.ParentIndex = len(y.Values)
	y.Values = append(y.Values, child)
}

// Set appends child as an object member named key. An existing member
// with the same name is not replaced; use ReplaceKey for that.
func (y *Node) Set(key string, child *Node) {
	child.Key = key
	y.Append(child)
}

// Get returns the first member named key, or nil.
func (y *Node) Get(key string) *Node {
	for _, v := range y.Values {
		if v.Key == key {
			return v
		}
	}
	return nil
}

func (y *Node) Has(key string) bool {
	return y.Get(key) != nil
}

// Detach removes and returns the i'th child, renumbering the children
// after it. The detached node is standalone: no parent, index zero,
// safe to destroy or attach elsewhere.
func (y *Node) Detach(i int) *Node {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	child := y.Values[i]
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
	child.Parent = nil
	child.ParentIndex = 0
	return child
}

// DetachKey detaches the first member named key, or returns nil.
func (y *Node) DetachKey(key string) *Node {
	for i, v := range y.Values {
		if v.Key == key {
			return y.Detach(i)
		}
	}
	return nil
}

// Insert places child at index i, shifting later children right. An
// index at or past the end appends.
func (y *Node) Insert(i int, child *Node) {
	if i < 0 {
		i = 0
	}
	if i >= len(y.Values) {
		y.Append(child)
		return
	}
	y.Values = append(y.Values, nil)
	copy(y.Values[i+1:], y.Values[i:])
	y.Values[i] = child
	child.Parent = y
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
}

// Replace substitutes child for the i'th element and returns the old
// element, detached. Out-of-range indices return nil without attaching.
func (y *Node) Replace(i int, child *Node) *Node {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	old := y.Values[i]
	y.Values[i] = child
	child.Parent = y
	child.ParentIndex = i
	old.Parent = nil
	old.ParentIndex = 0
	return old
}

// ReplaceKey substitutes child for the first member named key, giving
// child that key, and returns the old member detached.
func (y *Node) ReplaceKey(key string, child *Node) *Node {
	for i, v := range y.Values {
		if v.Key == key {
			child.Key = key
			return y.Replace(i, child)
		}
	}
	return nil
}
