package token

import "fmt"

// Pos locates a byte within a document.
type Pos struct {
	Offset int

	doc []byte
}

// PosAt returns the position of byte off within doc.
func PosAt(doc []byte, off int) Pos {
	return Pos{Offset: off, doc: doc}
}

// LineCol returns the 1-based line and column of the position.
func (p Pos) LineCol() (int, int) {
	line, col := 1, 1
	end := p.Offset
	if end > len(p.doc) {
		end = len(p.doc)
	}
	for _, c := range p.doc[:end] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func (p Pos) String() string {
	line, col := p.LineCol()
	return fmt.Sprintf("%d:%d (byte %d)", line, col, p.Offset)
}
