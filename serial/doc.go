// Package serial defines how application objects write themselves into bms
// trees, and how collections of them become ordered, line broken lists.
//
// An object implements Serializable by appending its fields to a list:
//
//	func (p *Person) Serialize(root *ir.Node) {
//	    gomap.MustAppendNamed(root, "name", p.Name)
//	    gomap.MustAppendNamed(root, "id", p.ID)
//	}
//
//	doc := serial.ToRoot(p, "person") // (person (name "…") (id 7))
//
// The container helpers place each element on its own line as a child list
// named itemName. UUIDSorted and UUIDSortedMap order elements by UUID first,
// so that output does not depend on how the collection was built.
package serial
