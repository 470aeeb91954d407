// Package sample holds the demonstration document: a list of names, a list
// of ids and a set of UUID-keyed items.
package sample

import (
	"errors"
	"fmt"

	"github.com/bmsexpr/bms/gomap"
	"github.com/bmsexpr/bms/ir"
	"github.com/bmsexpr/bms/serial"

	"github.com/google/uuid"
)

const (
	RootName = "bmserialize"
	NameName = "name"
	IDName   = "id"
	ItemName = "item"
)

var ErrNotDocument = errors.New("not a sample document")

type Item struct {
	ID    uuid.UUID
	Label string
}

func (it *Item) Serialize(root *ir.Node) {
	gomap.MustAppend(root, it.ID)
	gomap.MustAppend(root, it.Label)
}

func (it *Item) UUID() uuid.UUID { return it.ID }

type Document struct {
	Names []string
	IDs   []int
	Items map[uuid.UUID]*Item
}

// Default returns the document written by "sample save".
func Default() *Document {
	return &Document{
		Names: []string{"name1", "name2", "name3", "name4", "name5"},
		IDs:   []int{1, 2, 3, 4, 5},
	}
}

// Serialize writes the names on one line, the ids on the next and then one
// line per item, ordered by UUID.
func (d *Document) Serialize(root *ir.Node) {
	root.EnsureLineBreak()
	for _, name := range d.Names {
		gomap.MustAppendNamed(root, NameName, name)
	}
	root.EnsureLineBreak()
	for _, id := range d.IDs {
		gomap.MustAppendNamed(root, IDName, id)
	}
	root.EnsureLineBreak()
	serial.UUIDSortedMap(root, d.Items, ItemName)
}

// Node returns d as a complete document tree.
func (d *Document) Node() *ir.Node {
	return serial.ToRoot(d, RootName)
}

// Load reads a document written by Serialize. Unknown children are ignored.
func Load(root *ir.Node) (*Document, error) {
	if !root.IsList() || root.Name() != RootName {
		return nil, fmt.Errorf("%w: root is not (%s ...)", ErrNotDocument, RootName)
	}
	d := &Document{}
	for i, n := range root.ChildrenNamed(NameName) {
		v, err := field[string](n, "@0")
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", NameName, i, err)
		}
		d.Names = append(d.Names, v)
	}
	for i, n := range root.ChildrenNamed(IDName) {
		v, err := field[int](n, "@0")
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", IDName, i, err)
		}
		d.IDs = append(d.IDs, v)
	}
	for i, n := range root.ChildrenNamed(ItemName) {
		id, err := field[uuid.UUID](n, "@0")
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", ItemName, i, err)
		}
		label, err := field[string](n, "@1")
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", ItemName, i, err)
		}
		if d.Items == nil {
			d.Items = map[uuid.UUID]*Item{}
		}
		if _, dup := d.Items[id]; dup {
			return nil, fmt.Errorf("%w: duplicate %s %s", ErrNotDocument, ItemName, id)
		}
		d.Items[id] = &Item{ID: id, Label: label}
	}
	return d, nil
}

func field[T any](n *ir.Node, path string) (T, error) {
	v, err := n.Lookup(path)
	if err != nil {
		var zero T
		return zero, err
	}
	return gomap.Deserialize[T](v)
}
