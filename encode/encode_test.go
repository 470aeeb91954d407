package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bmsexpr/bms/ir"
)

func list(name string, children ...*ir.Node) *ir.Node {
	l := ir.NewList(name)
	for _, c := range children {
		l.AppendChild(c)
	}
	return l
}

func br() *ir.Node { return ir.NewLineBreak() }

func tok(v string) *ir.Node { return ir.NewToken(v) }

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   *ir.Node
		want string
	}{
		{
			name: "single line",
			in:   list("root", list("name", ir.NewString("Alice")), list("id", tok("1"))),
			want: "(root (name \"Alice\") (id 1))\n",
		},
		{
			name: "empty list",
			in:   list("empty"),
			want: "(empty)\n",
		},
		{
			name: "top level token",
			in:   tok("42"),
			want: "42\n",
		},
		{
			name: "top level string",
			in:   ir.NewString("a b"),
			want: "\"a b\"\n",
		},
		{
			name: "break then token",
			in:   list("l", br(), tok("a")),
			want: "(l\n a)\n",
		},
		{
			name: "trailing break aligns paren",
			in:   list("l", br(), tok("a"), br()),
			want: "(l\n a\n)\n",
		},
		{
			name: "consecutive breaks collapse",
			in:   list("a", br(), br(), tok("b")),
			want: "(a\n\n b)\n",
		},
		{
			name: "consecutive trailing breaks",
			in:   list("a", tok("x"), br(), br()),
			want: "(a x\n\n)\n",
		},
		{
			name: "nested indentation",
			in:   list("a", br(), list("b", br(), tok("c"), br()), br()),
			want: "(a\n (b\n  c\n )\n)\n",
		},
		{
			name: "items on one line between breaks",
			in: list("doc",
				br(), list("name", ir.NewString("n1")), list("name", ir.NewString("n2")),
				br(), list("id", tok("1")), list("id", tok("2")),
				br()),
			want: "(doc\n (name \"n1\") (name \"n2\")\n (id 1) (id 2)\n)\n",
		},
		{
			name: "top level line break",
			in:   br(),
			want: "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBytes(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestEncodeInvalidToken(t *testing.T) {
	for _, n := range []*ir.Node{
		tok("has space"),
		tok(""),
		list("bad name"),
		list("ok", list("inner", tok("(paren"))),
		list("ok", tok(`q"uote`)),
	} {
		buf := bytes.NewBuffer(nil)
		err := Encode(n, buf)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%#v: expected ErrInvalidToken, got %v", n, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%#v: partial output %q", n, buf.String())
		}
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(list("a", tok("b"))); got != "(a b)" {
		t.Errorf("got %q", got)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected panic wrapping ErrInvalidToken, got %v", r)
		}
	}()
	MustBytes(tok("a b"))
}

func TestEncodeColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			NameColor:  func(s string, _ ...any) string { return "<" + s + ">" },
			TokenColor: func(s string, _ ...any) string { return "[" + s + "]" },
		},
	}
	got, err := ToBytes(list("a", tok("b"), ir.NewString("s")), EncodeColors(c))
	if err != nil {
		t.Fatal(err)
	}
	if want := "(<a> [b] \"s\")\n"; string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
	plain := NewColors()
	if f := plain.Get(ColorAttr(99)); f("x%y") != "x%y" {
		t.Errorf("default color changed text")
	}
	if s := plain.Color(StringColor, `"100%"`); !strings.Contains(s, "100%") {
		t.Errorf("percent lost in %q", s)
	}
}

func TestEncodeZeroNode(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := Encode(list("ok", &ir.Node{}), buf)
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial output %q", buf.String())
	}
}
