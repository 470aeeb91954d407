// Package parse parses bms S-expression text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// record where each node came from
//	pos := map[*ir.Node]token.Pos{}
//	node, err := parse.Parse(data, parse.ParsePositions(pos))
//
// A document is exactly one expression surrounded by optional whitespace,
// newlines and comments. Newlines inside lists become ir.LineBreakType
// children; string literals are copied verbatim, there are no escapes.
//
// Errors are *token.Err values wrapping ir.ErrParse and a specific cause such
// as token.ErrUnexpectedEOF. No partial tree is returned on error.
//
// # Related Packages
//
//   - github.com/bmsexpr/bms/ir - IR representation
//   - github.com/bmsexpr/bms/encode - Encode IR to canonical text
//   - github.com/bmsexpr/bms/token - Lexical rules
package parse
