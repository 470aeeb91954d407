package token

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsValid(t *testing.T) {
	valid := []string{
		"a",
		"Z9",
		"true",
		"-12.34",
		"a:b",
		`back\slash`,
		"under_score",
		"{2b1e5c8a-0d3f-4c0e-9a51-6f1f0e8d2c11}",
	}
	for _, s := range valid {
		if !IsValid(s) {
			t.Errorf("expected %q to be a valid token", s)
		}
	}
	invalid := []string{
		"",
		"a b",
		`a"b`,
		"(",
		"a)",
		"semi;colon",
		"tab\t",
		"nl\n",
		"é",
		"[x]",
	}
	for _, s := range invalid {
		if IsValid(s) {
			t.Errorf("expected %q to be an invalid token", s)
		}
	}
}

func TestIsSpace(t *testing.T) {
	for _, r := range " \r\t\v\f" {
		if !IsSpace(r) {
			t.Errorf("expected %q to be whitespace", r)
		}
	}
	for _, r := range "\na;(\"" {
		if IsSpace(r) {
			t.Errorf("expected %q not to be whitespace", r)
		}
	}
}

func TestPos(t *testing.T) {
	doc := []rune("(a\n  (b c)\n)")
	pd := NewPosDoc(doc)
	p := pd.Pos(6)
	if p.Line != 1 || p.Col != 3 {
		t.Fatalf("got line=%d col=%d, want line=1 col=3", p.Line, p.Col)
	}
	if p := pd.Pos(0); p.Line != 0 || p.Col != 0 {
		t.Fatalf("got line=%d col=%d at start", p.Line, p.Col)
	}
	if !strings.Contains(p.String(), "offset 6") {
		t.Errorf("unexpected pos string %q", p.String())
	}
}

func TestErrWraps(t *testing.T) {
	err := error(NewErr(ErrUnexpectedEOF, NewPosDoc([]rune("(a")).Pos(2)))
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected %v to wrap ErrParse", err)
	}
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected %v to wrap ErrUnexpectedEOF", err)
	}
	var te *Err
	if !errors.As(err, &te) || te.Pos.Offset != 2 {
		t.Errorf("expected *Err at offset 2, got %v", err)
	}
}

func TestErrSentinels(t *testing.T) {
	pos := NewPosDoc([]rune("(")).Pos(1)
	for _, sentinel := range []error{ErrEmptyDoc, ErrUnexpectedEOF, ErrEmptyToken, ErrTrailing} {
		err := error(NewErr(fmt.Errorf("%w: detail", sentinel), pos))
		if !errors.Is(err, sentinel) || !errors.Is(err, ErrParse) {
			t.Errorf("%v does not classify as %v and %v", err, sentinel, ErrParse)
		}
	}
}
