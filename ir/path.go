package ir

import (
	"fmt"

	"github.com/bmsexpr/bms/ir/npath"
)

// TryGetChild resolves path against the descendants of n and returns nil if
// any segment does not match. See package npath for the path syntax.
func (n *Node) TryGetChild(path string) *Node {
	res, _ := n.resolve(npath.Parse(path))
	return res
}

// GetChild is like TryGetChild but panics with an error wrapping
// ErrLookupMiss when the path does not resolve.
func (n *Node) GetChild(path string) *Node {
	res, err := n.Lookup(path)
	if err != nil {
		panic(err)
	}
	return res
}

// Lookup is like TryGetChild but reports which segment failed to resolve.
func (n *Node) Lookup(path string) (*Node, error) {
	return n.LookupPath(npath.Parse(path))
}

// LookupPath resolves an already parsed path.
func (n *Node) LookupPath(p npath.Path) (*Node, error) {
	res, i := n.resolve(p)
	if res == nil {
		return nil, fmt.Errorf("%w: %q unresolved at segment %d (%q)", ErrLookupMiss, p.String(), i, p[i].String())
	}
	return res, nil
}

// resolve returns the addressed node, or nil and the index of the first
// segment that did not match.
func (n *Node) resolve(p npath.Path) (*Node, int) {
	cur := n
	for i, seg := range p {
		var next *Node
		if seg.Positional {
			next = cur.nthValue(seg)
		} else {
			next = cur.firstNamed(seg.Name)
		}
		if next == nil {
			return nil, i
		}
		cur = next
	}
	return cur, len(p)
}

// nthValue returns the seg.Index-th child that is not a line break.
func (n *Node) nthValue(seg npath.Segment) *Node {
	if seg.Invalid {
		return nil
	}
	k := 0
	for _, c := range n.children {
		if c.typ == LineBreakType {
			continue
		}
		if k == seg.Index {
			return c
		}
		k++
	}
	return nil
}

func (n *Node) firstNamed(name string) *Node {
	for _, c := range n.children {
		if c.typ == ListType && c.value == name {
			return c
		}
	}
	return nil
}

// ChildrenOfType returns the immediate children of n of type t.
func (n *Node) ChildrenOfType(t Type) []*Node {
	var res []*Node
	for _, c := range n.children {
		if c.typ == t {
			res = append(res, c)
		}
	}
	return res
}

// ChildrenNamed returns the immediate child lists of n called name.
func (n *Node) ChildrenNamed(name string) []*Node {
	var res []*Node
	for _, c := range n.children {
		if c.typ == ListType && c.value == name {
			res = append(res, c)
		}
	}
	return res
}
