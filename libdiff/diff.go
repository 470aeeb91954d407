package libdiff

import "github.com/bmsexpr/bms/ir"

// Diff returns the changes which turn from into to, or nil if the trees are
// equal. Line breaks count as children, so a change of layout is a change.
func Diff(from, to *ir.Node) *ir.Node {
	if ir.Equal(from, to) {
		return nil
	}
	switch {
	case from.Type() != to.Type():
		return MakeDiff(from, to)
	case from.IsList():
		if from.Name() != to.Name() {
			return MakeDiff(from, to)
		}
		return DiffList(from, to)
	case from.IsString():
		return DiffString(from, to)
	default:
		return MakeDiff(from, to)
	}
}
