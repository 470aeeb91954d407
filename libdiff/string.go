package libdiff

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bmsexpr/bms/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString compares two string nodes. When more than half of the shorter
// string changes the result is a plain replace.
func DiffString(from, to *ir.Node) *ir.Node {
	a, b := from.Value(), to.Value()
	dmp := diffpatch.New()
	lineMode := strings.Contains(a, "\n") && strings.Contains(b, "\n")
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, lineMode))
	res := ir.NewList(StringDiffName)
	diffSize := 0
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			res.AppendList(EqualName).AppendChild(ir.NewToken(strconv.Itoa(utf8.RuneCountInString(d.Text))))
		case diffpatch.DiffInsert:
			res.AppendList(InsertName).AppendChild(ir.NewString(d.Text))
			diffSize += len(d.Text)
		case diffpatch.DiffDelete:
			res.AppendList(DeleteName).AppendChild(ir.NewString(d.Text))
			diffSize += len(d.Text)
		}
	}
	if diffSize == 0 {
		return nil
	}
	if diffSize > min(len(a), len(b))/2 {
		return MakeDiff(from, to)
	}
	return res
}
