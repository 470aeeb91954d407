// Package encode encodes IR nodes to canonical bms text.
//
// # Usage
//
//	root := ir.NewList("doc")
//	root.AppendList("name").AppendChild(ir.NewString("alice"))
//	d, err := encode.ToBytes(root) // (doc (name "alice"))\n
//
//	// Encode with terminal colors
//	err := encode.Encode(root, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// The rendering of a tree is unique. Line breaks are the only source of
// newlines; each line break is followed by one space per level of list
// nesting, two line breaks in a row produce a bare empty line, and a line
// break closing a list is indented one level less so that ")" lines up with
// its opening line. Parsing canonical text and encoding it again yields the
// same bytes.
//
// Tokens and list names are checked against the token rules when encoding.
// A tree holding an invalid token cannot be encoded: Encode returns an error
// wrapping ErrInvalidToken and writes nothing.
//
// # Related Packages
//
//   - github.com/bmsexpr/bms/ir - IR representation
//   - github.com/bmsexpr/bms/parse - Parse text to IR
package encode
