package libdiff

import "github.com/bmsexpr/bms/ir"

// MakeDiff returns an insert when from is nil, a delete when to is nil and a
// replace otherwise.
func MakeDiff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil:
		res := ir.NewList(InsertName)
		res.AppendChild(to)
		return res
	case to == nil:
		res := ir.NewList(DeleteName)
		res.AppendChild(from)
		return res
	default:
		res := ir.NewList(ReplaceName)
		res.AppendList(FromName).AppendChild(from)
		res.AppendList(ToName).AppendChild(to)
		return res
	}
}
