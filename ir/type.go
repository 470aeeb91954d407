package ir

import "fmt"

type Type int

// The zero Type is not a valid node type, so a Node which was not made by
// one of the constructors is rejected by accessors and the encoder.
const (
	ListType Type = iota + 1
	TokenType
	StringType
	LineBreakType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ListType:      "List",
		TokenType:     "Token",
		StringType:    "String",
		LineBreakType: "LineBreak",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"List":      ListType,
		"Token":     TokenType,
		"String":    StringType,
		"LineBreak": LineBreakType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ListType,
		TokenType,
		StringType,
		LineBreakType,
	}
}

// IsAtom reports whether nodes of type t carry a value.
func (t Type) IsAtom() bool {
	return t == TokenType || t == StringType
}
