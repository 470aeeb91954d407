package parse

import (
	"github.com/bmsexpr/bms/ir"
	"github.com/bmsexpr/bms/token"
)

type parseOpts struct {
	positions map[*ir.Node]token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the start position of every parsed node in m.
func ParsePositions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
