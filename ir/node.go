package ir

import (
	"fmt"
	"slices"
)

// Node is one value in a bms document: a named list, a token, a string or a
// line break. Only lists have children.
//
// Nodes are created with NewList, NewToken, NewString and NewLineBreak. A
// tree is owned by whoever holds its root; AppendChild copies its argument so
// that no node is ever reachable from two trees.
type Node struct {
	typ      Type
	value    string
	children []*Node
}

func NewList(name string) *Node {
	return &Node{typ: ListType, value: name}
}

func NewToken(v string) *Node {
	return &Node{typ: TokenType, value: v}
}

func NewString(v string) *Node {
	return &Node{typ: StringType, value: v}
}

func NewLineBreak() *Node {
	return &Node{typ: LineBreakType}
}

func (n *Node) Type() Type { return n.typ }

func (n *Node) IsList() bool      { return n.typ == ListType }
func (n *Node) IsToken() bool     { return n.typ == TokenType }
func (n *Node) IsString() bool    { return n.typ == StringType }
func (n *Node) IsLineBreak() bool { return n.typ == LineBreakType }

// Name returns the name of a list. It panics if n is not a list.
func (n *Node) Name() string {
	if n.typ != ListType {
		panic(fmt.Errorf("%w: Name of %s node", ErrInvalidAccess, n.typ))
	}
	return n.value
}

// Value returns the text of a token or string. It panics for lists and line
// breaks.
func (n *Node) Value() string {
	if !n.typ.IsAtom() {
		panic(fmt.Errorf("%w: Value of %s node", ErrInvalidAccess, n.typ))
	}
	return n.value
}

// Children returns the children of n in document order. The returned slice
// may be modified by the caller; the nodes it points to belong to n.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

func (n *Node) Len() int { return len(n.children) }

// AppendChild appends a copy of child to the list n and returns the copy.
func (n *Node) AppendChild(child *Node) *Node {
	if n.typ != ListType {
		panic(fmt.Errorf("%w: append to %s node", ErrInvalidOperation, n.typ))
	}
	c := child.Clone()
	n.children = append(n.children, c)
	return c
}

// AppendList appends a new empty list named name and returns it.
func (n *Node) AppendList(name string) *Node {
	return n.AppendChild(NewList(name))
}

// EnsureLineBreak appends a line break unless the last child already is one.
func (n *Node) EnsureLineBreak() {
	if k := len(n.children); k > 0 && n.children[k-1].typ == LineBreakType {
		return
	}
	n.AppendChild(NewLineBreak())
}

// EnsureLineBreakIfMultiLine calls EnsureLineBreak when n spans several
// lines.
func (n *Node) EnsureLineBreakIfMultiLine() {
	if n.IsMultiLine() {
		n.EnsureLineBreak()
	}
}

// IsMultiLine reports whether n is a line break or contains one at any depth.
func (n *Node) IsMultiLine() bool {
	switch n.typ {
	case LineBreakType:
		return true
	case ListType:
		for _, c := range n.children {
			if c.IsMultiLine() {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	res := &Node{typ: n.typ, value: n.value}
	if n.children != nil {
		res.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			res.children[i] = c.Clone()
		}
	}
	return res
}

// Visit calls f on n and, if f returns true, on each descendant in document
// order.
func (n *Node) Visit(f func(n *Node) (bool, error)) error {
	dive, err := f(n)
	if err != nil {
		return err
	}
	if !dive {
		return nil
	}
	for _, c := range n.children {
		if err := c.Visit(f); err != nil {
			return err
		}
	}
	return nil
}

// GoString renders n structurally, for test failures and debugging.
func (n *Node) GoString() string {
	switch n.typ {
	case ListType:
		s := "List(" + n.value
		for _, c := range n.children {
			s += " " + c.GoString()
		}
		return s + ")"
	case TokenType:
		return "Token(" + n.value + ")"
	case StringType:
		return fmt.Sprintf("String(%q)", n.value)
	case LineBreakType:
		return "LineBreak"
	default:
		return "<unknown node>"
	}
}
