package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bmsexpr/bms/ir"
	"github.com/bmsexpr/bms/token"
)

var (
	ErrEncoding     = errors.New("encoding error")
	ErrInvalidToken = errors.New("invalid token")
)

type EncState struct {
	Color func(ColorAttr, string) string
}

// Encode writes the canonical text of node to w, followed by a newline
// unless the text already ends with one.
//
// A token or list name which is not a valid token, or a node not made by
// one of the ir constructors, is a programming error. Encode reports it as
// an error wrapping ErrInvalidToken or ErrEncoding rather than panicking,
// so that a command can refuse to write a broken document; MustBytes and
// MustString panic instead. Nothing is written if node cannot be encoded.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(node, buf, 0, es); err != nil {
		return err
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte{'\n'}) {
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// ToBytes returns the canonical text of node.
func ToBytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(node *ir.Node, buf *bytes.Buffer, indent int, es *EncState) error {
	switch node.Type() {
	case ir.ListType:
		return encodeList(node, buf, indent, es)
	case ir.TokenType:
		v := node.Value()
		if !token.IsValid(v) {
			return fmt.Errorf("%w: %w: token %q", ErrEncoding, ErrInvalidToken, v)
		}
		buf.WriteString(es.color(TokenColor, v))
		return nil
	case ir.StringType:
		buf.WriteString(es.color(StringColor, string(token.Quote)+node.Value()+string(token.Quote)))
		return nil
	case ir.LineBreakType:
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", indent))
		return nil
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type())
	}
}

// encodeList writes a list at the given indent. A line break child is
// indented one level deeper than the list, except when it is directly
// followed by another line break (it then produces a bare newline) or when
// it is the last child (it then indents to the list's own level, so the
// closing paren aligns with the opening line).
func encodeList(node *ir.Node, buf *bytes.Buffer, indent int, es *EncState) error {
	name := node.Name()
	if !token.IsValid(name) {
		return fmt.Errorf("%w: %w: list name %q", ErrEncoding, ErrInvalidToken, name)
	}
	buf.WriteString(es.color(ParenColor, string(token.ListOpen)))
	buf.WriteString(es.color(NameColor, name))
	children := node.Children()
	last := len(children) - 1
	afterIndent := false
	for i, child := range children {
		isBreak := child.IsLineBreak()
		if !afterIndent && !isBreak {
			buf.WriteByte(' ')
		}
		childIndent := indent + 1
		if isBreak && i < last && children[i+1].IsLineBreak() {
			childIndent = 0
		}
		afterIndent = isBreak && childIndent > 0
		if afterIndent && i == last {
			childIndent--
		}
		if err := encode(child, buf, childIndent, es); err != nil {
			return err
		}
	}
	buf.WriteString(es.color(ParenColor, string(token.ListClose)))
	return nil
}

func (es *EncState) color(attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}
