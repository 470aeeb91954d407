// Package npath parses and builds the slash separated paths used to address
// nodes inside a bms tree.
//
// A path is a sequence of segments joined by '/':
//   - name       - the first child list called name
//   - @N         - the N-th child that is not a line break (N >= 0)
//
// Segments are matched against immediate children only, so
//
//	"name/@0"
//
// is the first value of the first (name ...) list below the starting node.
// A positional segment whose index does not parse, or is negative, is kept
// as an invalid segment which never matches anything.
//
// # Usage
//
//	p := npath.Parse("item/@1")
//	p = p.Append(npath.Index(0))
//	fmt.Println(p) // item/@1/@0
package npath
