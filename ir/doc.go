// Package ir provides the tree representation of bms S-expression documents.
//
// # Overview
//
// Every document, whether parsed from text or built by application code, is
// an ir.Node tree. A Node is a tagged union of four kinds:
//
//   - ListType: a named list, "(name child...)"; the only kind with children
//   - TokenType: an unquoted atom such as 42, true or {uuid}
//   - StringType: a double quoted atom, stored without its quotes
//   - LineBreakType: a newline inside a list, kept so that formatting
//     survives a read/write cycle
//
// # Creating Nodes
//
//	root := ir.NewList("bmserialize")
//	root.EnsureLineBreak()
//	root.AppendList("name").AppendChild(ir.NewString("Alice"))
//	root.AppendList("id").AppendChild(ir.NewToken("1"))
//
// Nodes have value semantics: AppendChild stores a deep copy of its argument
// and returns that copy, and Clone copies a whole subtree. A tree therefore
// has a single owner, the holder of its root.
//
// # Contract Violations
//
// Kind specific operations panic when used on the wrong kind of node: Name on
// a non-list and Value on a list or line break panic with an error wrapping
// ErrInvalidAccess; appending to a non-list panics with an error wrapping
// ErrInvalidOperation. These indicate programming errors, not bad input.
//
// # Navigating Nodes
//
// Paths are '/' separated. A segment is either a list name, matching the
// first child list with that name, or "@N", matching the N-th child which is
// not a line break:
//
//	n := root.TryGetChild("name/@0") // nil if absent
//	n, err := root.Lookup("name/@0") // err wraps ErrLookupMiss if absent
//	n := root.GetChild("name/@0")    // panics if absent
//
// See package npath for path parsing.
//
// # Thread Safety
//
// Node trees are not safe for concurrent mutation. Distinct trees, including
// clones, may be used from different goroutines freely.
//
// # Related Packages
//
//   - github.com/bmsexpr/bms/parse - Parses text into IR nodes
//   - github.com/bmsexpr/bms/encode - Encodes IR nodes to canonical text
//   - github.com/bmsexpr/bms/gomap - Maps Go values to and from IR nodes
package ir
