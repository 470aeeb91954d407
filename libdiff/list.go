package libdiff

import (
	"strconv"
	"strings"

	"github.com/bmsexpr/bms/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type listOp struct {
	at     int
	change *ir.Node
}

// DiffList compares the children of two lists of the same name.
//
// Each child is reduced to a summary rune: lists by name, atoms by type and
// value, multi-line strings by type only. The rune sequences are diffed and
// children whose summaries match are compared recursively. Within a run of
// deletions and insertions, deleted and inserted children are paired off as
// replacements.
func DiffList(from, to *ir.Node) *ir.Node {
	fc, tc := from.Children(), to.Children()
	m := map[string]rune{}
	fromRunes := summarize(m, fc)
	toRunes := summarize(m, tc)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var (
		ops        []listOp
		dels, inss []int
		fi, ti     int
	)
	flush := func() {
		n := min(len(dels), len(inss))
		for i := range n {
			ops = append(ops, listOp{dels[i], MakeDiff(fc[dels[i]], tc[inss[i]])})
		}
		for _, d := range dels[n:] {
			ops = append(ops, listOp{d, MakeDiff(fc[d], nil)})
		}
		for _, t := range inss[n:] {
			ops = append(ops, listOp{fi, MakeDiff(nil, tc[t])})
		}
		dels, inss = dels[:0], inss[:0]
	}
	for i := range diffs {
		d := &diffs[i]
		count := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range count {
				dels = append(dels, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range count {
				inss = append(inss, ti)
				ti++
			}
		case diffpatch.DiffEqual:
			flush()
			for range count {
				if sub := Diff(fc[fi], tc[ti]); sub != nil {
					ops = append(ops, listOp{fi, sub})
				}
				fi++
				ti++
			}
		}
	}
	flush()
	if len(ops) == 0 {
		return nil
	}
	res := ir.NewList(ListDiffName)
	for _, op := range ops {
		res.EnsureLineBreak()
		at := res.AppendList(AtName)
		at.AppendChild(ir.NewToken(strconv.Itoa(op.at)))
		at.AppendChild(op.change)
	}
	res.EnsureLineBreakIfMultiLine()
	return res
}

func summarize(m map[string]rune, nodes []*ir.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		sum := summary(n)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summary(n *ir.Node) string {
	switch n.Type() {
	case ir.ListType:
		return n.Type().String() + "-" + n.Name()
	case ir.StringType:
		if strings.Contains(n.Value(), "\n") {
			return n.Type().String() + "/m"
		}
		return n.Type().String() + "-" + n.Value()
	case ir.TokenType:
		return n.Type().String() + "-" + n.Value()
	default:
		return n.Type().String()
	}
}
