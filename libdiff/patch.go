package libdiff

import (
	"fmt"
	"strings"

	"github.com/bmsexpr/bms/encode"
	"github.com/bmsexpr/bms/gomap"
	"github.com/bmsexpr/bms/ir"
)

// Patch applies a diff produced by Diff to doc and returns the result. doc
// is not modified. A nil diff yields a copy of doc.
func Patch(doc, diff *ir.Node) (*ir.Node, error) {
	if diff == nil {
		return doc.Clone(), nil
	}
	if !diff.IsList() {
		return nil, fmt.Errorf("%w: diff is a %s node", ErrPatch, diff.Type())
	}
	switch diff.Name() {
	case ReplaceName:
		from, to, err := replaceArgs(diff)
		if err != nil {
			return nil, err
		}
		if !ir.Equal(doc, from) {
			return nil, mismatch(doc, from)
		}
		return to.Clone(), nil
	case ListDiffName:
		return patchList(doc, diff)
	case StringDiffName:
		return patchString(doc, diff)
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrPatch, diff.Name())
	}
}

func patchList(doc, diff *ir.Node) (*ir.Node, error) {
	if !doc.IsList() {
		return nil, fmt.Errorf("%w: %s applied to %s node", ErrPatch, ListDiffName, doc.Type())
	}
	src := doc.Children()
	res := ir.NewList(doc.Name())
	fi := 0
	for _, at := range diff.ChildrenNamed(AtName) {
		idx, op, err := atArgs(at)
		if err != nil {
			return nil, err
		}
		if idx < fi || idx > len(src) {
			return nil, fmt.Errorf("%w: index %d out of order in %q", ErrPatch, idx, doc.Name())
		}
		for ; fi < idx; fi++ {
			res.AppendChild(src[fi])
		}
		if op.Name() == InsertName {
			v, err := operand(op)
			if err != nil {
				return nil, err
			}
			res.AppendChild(v)
			continue
		}
		if fi == len(src) {
			return nil, fmt.Errorf("%w: %s past end of %q", ErrPatch, op.Name(), doc.Name())
		}
		if op.Name() == DeleteName {
			v, err := operand(op)
			if err != nil {
				return nil, err
			}
			if !ir.Equal(src[fi], v) {
				return nil, mismatch(src[fi], v)
			}
			fi++
			continue
		}
		p, err := Patch(src[fi], op)
		if err != nil {
			return nil, err
		}
		res.AppendChild(p)
		fi++
	}
	for ; fi < len(src); fi++ {
		res.AppendChild(src[fi])
	}
	return res, nil
}

func patchString(doc, diff *ir.Node) (*ir.Node, error) {
	if !doc.IsString() {
		return nil, fmt.Errorf("%w: %s applied to %s node", ErrPatch, StringDiffName, doc.Type())
	}
	src := []rune(doc.Value())
	b := &strings.Builder{}
	i := 0
	for _, op := range diff.ChildrenOfType(ir.ListType) {
		v, err := operand(op)
		if err != nil {
			return nil, err
		}
		switch op.Name() {
		case EqualName:
			n, err := gomap.Deserialize[int](v)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrPatch, err)
			}
			if n < 0 || i+n > len(src) {
				return nil, fmt.Errorf("%w: %s %d past end of string", ErrPatch, EqualName, n)
			}
			b.WriteString(string(src[i : i+n]))
			i += n
		case InsertName:
			s, err := gomap.Deserialize[string](v)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrPatch, err)
			}
			b.WriteString(s)
		case DeleteName:
			s, err := gomap.Deserialize[string](v)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrPatch, err)
			}
			rs := []rune(s)
			if i+len(rs) > len(src) || string(src[i:i+len(rs)]) != s {
				return nil, fmt.Errorf("%w: expected %q at rune %d", ErrPatch, s, i)
			}
			i += len(rs)
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %s", ErrPatch, op.Name(), StringDiffName)
		}
	}
	if i != len(src) {
		return nil, fmt.Errorf("%w: %s covers %d of %d runes", ErrPatch, StringDiffName, i, len(src))
	}
	return ir.NewString(b.String()), nil
}

func atArgs(at *ir.Node) (int, *ir.Node, error) {
	idxNode, op := at.TryGetChild("@0"), at.TryGetChild("@1")
	if idxNode == nil || op == nil || !op.IsList() {
		return 0, nil, fmt.Errorf("%w: malformed %q entry", ErrPatch, AtName)
	}
	idx, err := gomap.Deserialize[int](idxNode)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return idx, op, nil
}

func replaceArgs(diff *ir.Node) (from, to *ir.Node, err error) {
	fs, ts := diff.ChildrenNamed(FromName), diff.ChildrenNamed(ToName)
	if len(fs) != 1 || len(ts) != 1 {
		return nil, nil, fmt.Errorf("%w: %s needs one %s and one %s", ErrPatch, ReplaceName, FromName, ToName)
	}
	if from, err = operand(fs[0]); err != nil {
		return nil, nil, err
	}
	if to, err = operand(ts[0]); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// operand returns the single child of an insert, delete, from, to or equal
// list.
func operand(op *ir.Node) (*ir.Node, error) {
	cs := op.Children()
	if len(cs) != 1 {
		return nil, fmt.Errorf("%w: %q has %d children, want 1", ErrPatch, op.Name(), len(cs))
	}
	return cs[0], nil
}

func mismatch(got, want *ir.Node) error {
	return fmt.Errorf("%w: unexpected value %s, want %s", ErrPatch, render(got), render(want))
}

func render(n *ir.Node) string {
	if n.IsLineBreak() {
		return "line break"
	}
	d, err := encode.ToBytes(n)
	if err != nil {
		return n.GoString()
	}
	return strings.TrimSuffix(string(d), "\n")
}
