package serial

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/bmsexpr/bms/ir"

	"github.com/google/uuid"
)

// Serializable is implemented by objects which can append their own fields
// to a list node.
type Serializable interface {
	Serialize(root *ir.Node)
}

// Identified is a Serializable with a stable identity used for ordering.
type Identified interface {
	Serializable
	UUID() uuid.UUID
}

// ToRoot serializes obj into a new list called name.
func ToRoot(obj Serializable, name string) *ir.Node {
	root := ir.NewList(name)
	obj.Serialize(root)
	return root
}

// Container appends each item to root as a list called itemName, each on its
// own line. A closing line break is added whenever root then spans lines,
// so an empty container still closes a root that was already multi-line.
func Container[T Serializable](root *ir.Node, items []T, itemName string) {
	for _, item := range items {
		root.EnsureLineBreak()
		root.AppendChild(ToRoot(item, itemName))
	}
	root.EnsureLineBreakIfMultiLine()
}

// PointerContainer is Container for elements held by pointer. A nil element
// panics with an error wrapping ir.ErrInvalidOperation.
func PointerContainer[E any, P interface {
	*E
	Serializable
}](root *ir.Node, items []P, itemName string) {
	for i, p := range items {
		if (*E)(p) == nil {
			panic(fmt.Errorf("%w: nil element %d in %q container", ir.ErrInvalidOperation, i, itemName))
		}
		root.EnsureLineBreak()
		root.AppendChild(ToRoot(p, itemName))
	}
	root.EnsureLineBreakIfMultiLine()
}

// UUIDSorted is Container applied to a sorted copy of items, ascending by
// UUID. items is not modified.
func UUIDSorted[T Identified](root *ir.Node, items []T, itemName string) {
	sorted := slices.Clone(items)
	sortByUUID(sorted)
	Container(root, sorted, itemName)
}

// UUIDSortedMap is UUIDSorted over the values of m. Values must have
// distinct UUIDs; two values sharing a UUID panic with an error wrapping
// ir.ErrInvalidOperation, since map order would decide their placement.
func UUIDSortedMap[K comparable, T Identified](root *ir.Node, m map[K]T, itemName string) {
	values := slices.Collect(maps.Values(m))
	sortByUUID(values)
	for i := 1; i < len(values); i++ {
		if u := values[i].UUID(); u == values[i-1].UUID() {
			panic(fmt.Errorf("%w: duplicate uuid %s in %q container", ir.ErrInvalidOperation, u, itemName))
		}
	}
	Container(root, values, itemName)
}

func sortByUUID[T Identified](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		ua, ub := a.UUID(), b.UUID()
		return bytes.Compare(ua[:], ub[:])
	})
}
