package parse

import (
	"fmt"

	"github.com/bmsexpr/bms/debug"
	"github.com/bmsexpr/bms/ir"
	"github.com/bmsexpr/bms/token"
)

// Parse parses a single document. Leading and trailing whitespace, newlines
// and comments are allowed; anything else after the first expression is an
// error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: []rune(string(d)), opts: pOpts}
	p.skip(true)
	if p.eof() {
		return nil, p.errAt(token.ErrEmptyDoc, p.i)
	}
	res, err := p.parseExpr(nil)
	if err != nil {
		return nil, err
	}
	p.skip(true)
	if !p.eof() {
		return nil, p.errAt(fmt.Errorf("%w %q", token.ErrTrailing, p.d[p.i]), p.i)
	}
	if debug.Parse() {
		debug.Logf("parsed %d runes into:\n%v", len(p.d), res)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	d    []rune
	i    int
	pd   *token.PosDoc
	opts *parseOpts
}

func (p *parser) eof() bool { return p.i >= len(p.d) }

func (p *parser) cur() rune { return p.d[p.i] }

func (p *parser) pos(at int) token.Pos {
	if p.pd == nil {
		p.pd = token.NewPosDoc(p.d)
	}
	return p.pd.Pos(at)
}

func (p *parser) errAt(e error, at int) error {
	return token.NewErr(e, p.pos(at))
}

func (p *parser) track(n *ir.Node, at int) {
	if p.opts.positions != nil {
		p.opts.positions[n] = p.pos(at)
	}
}

// skip advances past whitespace and comments, and past newlines too when
// newlines is set. A comment ends before the newline which terminates it.
func (p *parser) skip(newlines bool) {
	inComment := false
	for !p.eof() {
		r := p.cur()
		switch r {
		case token.CommentStart:
			inComment = true
		case token.Newline:
			inComment = false
		}
		if inComment || (newlines && r == token.Newline) || token.IsSpace(r) {
			p.i++
			continue
		}
		return
	}
}

// parseExpr parses one expression at the cursor. When parent is nil the
// result is a new root, otherwise it is appended to parent and the stored
// child is returned.
func (p *parser) parseExpr(parent *ir.Node) (*ir.Node, error) {
	start := p.i
	add := func(n *ir.Node) *ir.Node {
		if parent != nil {
			n = parent.AppendChild(n)
		}
		p.track(n, start)
		return n
	}
	switch p.cur() {
	case token.Newline:
		p.i++
		p.skip(false)
		return add(ir.NewLineBreak()), nil
	case token.ListOpen:
		p.i++
		name, err := p.parseToken()
		if err != nil {
			return nil, err
		}
		list := add(ir.NewList(name))
		if err := p.parseChildren(list, start); err != nil {
			return nil, err
		}
		return list, nil
	case token.Quote:
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return add(ir.NewString(s)), nil
	default:
		v, err := p.parseToken()
		if err != nil {
			return nil, err
		}
		return add(ir.NewToken(v)), nil
	}
}

func (p *parser) parseChildren(list *ir.Node, open int) error {
	for {
		if p.eof() {
			return p.errAt(fmt.Errorf("%w: list %q opened at offset %d is not closed", token.ErrUnexpectedEOF, list.Name(), open), p.i)
		}
		if p.cur() == token.ListClose {
			p.i++
			p.skip(false)
			return nil
		}
		if _, err := p.parseExpr(list); err != nil {
			return err
		}
	}
}

func (p *parser) parseToken() (string, error) {
	start := p.i
	for !p.eof() && token.IsTokenRune(p.cur()) {
		p.i++
	}
	if p.i == start {
		if p.eof() {
			return "", p.errAt(fmt.Errorf("%w: expected token", token.ErrUnexpectedEOF), p.i)
		}
		return "", p.errAt(fmt.Errorf("%w: unexpected %q", token.ErrEmptyToken, p.cur()), p.i)
	}
	res := string(p.d[start:p.i])
	p.skip(false)
	return res, nil
}

func (p *parser) parseString() (string, error) {
	open := p.i
	p.i++
	start := p.i
	for {
		if p.eof() {
			return "", p.errAt(fmt.Errorf("%w: string opened at offset %d is not closed", token.ErrUnexpectedEOF, open), p.i)
		}
		if p.cur() == token.Quote {
			res := string(p.d[start:p.i])
			p.i++
			p.skip(false)
			return res, nil
		}
		p.i++
	}
}
