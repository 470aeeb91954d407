package npath

import (
	"strconv"
	"strings"
)

const (
	Sep         = "/"
	IndexPrefix = "@"
)

// Segment is one step of a Path.
type Segment struct {
	// Name is the list name matched by a name segment, or the raw text
	// of a positional segment.
	Name string
	// Index is the position among non line break children when
	// Positional is set.
	Index      int
	Positional bool
	// Invalid marks a positional segment with a malformed index.
	Invalid bool
}

// Path is a parsed node path.
type Path []Segment

// Name returns a segment selecting the first child list called name.
func Name(name string) Segment {
	return Segment{Name: name}
}

// Index returns a positional segment.
func Index(i int) Segment {
	return Segment{Name: IndexPrefix + strconv.Itoa(i), Index: i, Positional: true, Invalid: i < 0}
}

// Parse splits p into segments. It never fails; malformed positional
// segments are marked Invalid.
func Parse(p string) Path {
	parts := strings.Split(p, Sep)
	res := make(Path, len(parts))
	for i, part := range parts {
		res[i] = parseSegment(part)
	}
	return res
}

func parseSegment(s string) Segment {
	rest, ok := strings.CutPrefix(s, IndexPrefix)
	if !ok {
		return Name(s)
	}
	seg := Segment{Name: s, Positional: true}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 {
		seg.Invalid = true
		return seg
	}
	seg.Index = i
	return seg
}

func (s Segment) String() string {
	return s.Name
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i := range p {
		parts[i] = p[i].String()
	}
	return strings.Join(parts, Sep)
}

// Append returns a new path with segs added to the end of p.
func (p Path) Append(segs ...Segment) Path {
	res := make(Path, 0, len(p)+len(segs))
	res = append(res, p...)
	return append(res, segs...)
}
