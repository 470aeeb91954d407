package token

import (
	"fmt"
	"strconv"
)

// Pos is a location in a decoded document. Offset counts runes; Line and Col
// are zero based.
type Pos struct {
	Offset int
	Line   int
	Col    int

	// Context is a short sample of the input around Offset.
	Context string
}

// PosDoc computes positions within one decoded document.
type PosDoc struct {
	d  []rune
	nl []int
}

func NewPosDoc(d []rune) *PosDoc {
	p := &PosDoc{d: d}
	for i, r := range d {
		if r == Newline {
			p.nl = append(p.nl, i)
		}
	}
	return p
}

func (p *PosDoc) Pos(off int) Pos {
	line, lineStart := 0, 0
	for _, n := range p.nl {
		if n >= off {
			break
		}
		line++
		lineStart = n + 1
	}
	lo, hi := max(0, off-5), min(off+5, len(p.d))
	return Pos{
		Offset:  off,
		Line:    line,
		Col:     off - lineStart,
		Context: string(p.d[lo:hi]),
	}
}

func (p Pos) String() string {
	sample := p.Context
	if sample == "" {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.Offset, p.Line, p.Col)
}
