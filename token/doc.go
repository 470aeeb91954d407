// Package token holds the lexical rules of the bms S-expression format and
// the positioned errors reported while reading it.
//
// # Tokens
//
// A token is an unquoted atom made of ASCII letters, digits and the special
// characters
//
//	\ . : _ - { }
//
// List names are tokens too. Braces are included so that braced UUIDs such as
// {2b1e5c8a-0d3f-4c0e-9a51-6f1f0e8d2c11} are plain tokens.
//
// # Whitespace and comments
//
// Whitespace is space, carriage return, horizontal and vertical tab and form
// feed. A newline is not whitespace: inside a list it is a structural line
// break. A ';' starts a comment which runs up to, but not including, the next
// newline.
//
// # Related Packages
//
//   - github.com/bmsexpr/bms/parse - reads text using these rules
//   - github.com/bmsexpr/bms/encode - validates tokens before printing
package token
