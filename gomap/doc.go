// Package gomap maps Go values to and from IR nodes.
//
// # Usage
//
//	n, err := gomap.Serialize(42)            // Token 42
//	v, err := gomap.Deserialize[int](n)      // 42
//
//	// append (id 7) to a list
//	_, err := gomap.AppendNamed(root, "id", 7)
//
// Each Go type is mapped by a Codec registered for it. Codecs for bool, int,
// string and uuid.UUID are registered by this package:
//
//	bool       Token true / false
//	int        Token holding the decimal value
//	string     String holding the raw text (a Token is accepted on read)
//	uuid.UUID  Token holding the braced form {xxxxxxxx-xxxx-...}
//
// Other types are supported by registering a codec, usually from an init
// function, without changing this package:
//
//	gomap.Register(gomap.CodecFuncs[Color]{
//	    To:   func(c Color) *ir.Node { return ir.NewToken(c.Hex()) },
//	    From: parseColorNode,
//	})
//
// A type with no codec may instead implement Marshaler and Unmarshaler.
//
// A token whose text does not have the form expected for the target type is
// reported as a *TypeError wrapping ErrTypeConversion.
//
// # Related Packages
//
//   - github.com/bmsexpr/bms/ir - IR representation
//   - github.com/bmsexpr/bms/serial - Serializable objects and containers
package gomap
