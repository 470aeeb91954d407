package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two trees.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Nodes order first by type, then by value, then child by child.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.typ != b.typ {
		return cmp.Compare(a.typ, b.typ)
	}
	if c := strings.Compare(a.value, b.value); c != 0 {
		return c
	}
	n := min(len(a.children), len(b.children))
	for i := range n {
		if c := Compare(a.children[i], b.children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.children), len(b.children))
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
