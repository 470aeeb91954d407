package encode

import (
	"bytes"

	"github.com/bmsexpr/bms/ir"
)

// MustBytes is like ToBytes but panics if node cannot be encoded.
func MustBytes(node *ir.Node) []byte {
	d, err := ToBytes(node)
	if err != nil {
		panic(err)
	}
	return d
}

// MustString returns the canonical text of node without its final newline.
func MustString(node *ir.Node) string {
	return string(bytes.TrimSuffix(MustBytes(node), []byte{'\n'}))
}
