package libdiff

import (
	"errors"
	"testing"

	"github.com/bmsexpr/bms/encode"
	"github.com/bmsexpr/bms/ir"
	"github.com/bmsexpr/bms/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

type diffTest struct {
	a    string
	b    string
	diff string
}

var diffTests = []diffTest{
	{
		a:    `(r a b c)`,
		b:    `(r a b c)`,
		diff: ``,
	},
	{
		a: `(r a b c)`,
		b: `(r a x c)`,
		diff: `
(listdiff
 (at 1 (replace (from b) (to x)))
)`,
	},
	{
		a: `(r a b c)`,
		b: `(r b c d)`,
		diff: `
(listdiff
 (at 0 (delete a))
 (at 3 (insert d))
)`,
	},
	{
		a:    `(r a)`,
		b:    `(s a)`,
		diff: `(replace (from (r a)) (to (s a)))`,
	},
	{
		a: `(r (x 1) (y 2))`,
		b: `(r (x 1) (y 3))`,
		diff: `
(listdiff
 (at 1 (listdiff
  (at 0 (replace (from 2) (to 3)))
 ))
)`,
	},
	{
		a: `(r "x")`,
		b: `(r "y")`,
		diff: `
(listdiff
 (at 0 (replace (from "x") (to "y")))
)`,
	},
	{
		a:    `"the quick brown fox jumps over the lazy dog"`,
		b:    `"the quick brown cat jumps over the lazy dog"`,
		diff: `(strdiff (equal 16) (delete "fox") (insert "cat") (equal 24))`,
	},
	{
		a:    `"abc"`,
		b:    `"xyz"`,
		diff: `(replace (from "abc") (to "xyz"))`,
	},
}

func TestDiff(t *testing.T) {
	for i, tc := range diffTests {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		got := Diff(a, b)
		if tc.diff == "" {
			if got != nil {
				t.Errorf("%d: expected no diff, got %s", i, encode.MustString(got))
			}
			continue
		}
		want := mustParse(t, tc.diff)
		if got == nil {
			t.Errorf("%d: expected diff %s, got none", i, tc.diff)
			continue
		}
		if !ir.Equal(got, want) {
			t.Errorf("%d: got\n%s\nwant\n%s", i, encode.MustString(got), encode.MustString(want))
		}
	}
}

var patchPairs = [][2]string{
	{`(r a b c)`, `(r c b a)`},
	{`(r)`, `(r a "b" (c))`},
	{`(r a "b" (c))`, `(r)`},
	{"(r\n (x 1)\n (y 2)\n)", "(r\n (y 2)\n (x 1)\n (z 3)\n)"},
	{"(r \"line one\nline two\nline three\")", "(r \"line one\nline 2\nline three\")"},
	{`(a (b (c (d 1))))`, `(a (b (c (d 2) e)))`},
	{`(doc (names "n1" "n2") (ids 1 2))`, `(doc (names "n2" "n3") (ids 1 2 3))`},
	{`tok`, `"str"`},
}

func TestPatchRoundTrip(t *testing.T) {
	for _, pair := range patchPairs {
		a, b := mustParse(t, pair[0]), mustParse(t, pair[1])
		diff := Diff(a, b)
		got, err := Patch(a, diff)
		if err != nil {
			t.Errorf("patch %q -> %q: %v", pair[0], pair[1], err)
			continue
		}
		if !ir.Equal(got, b) {
			t.Errorf("patch %q: got %s, want %s", pair[0], encode.MustString(got), pair[1])
		}
		if diff == nil {
			continue
		}
		// the diff survives printing and parsing
		reparsed := mustParse(t, encode.MustString(diff))
		got, err = Patch(a, reparsed)
		if err != nil {
			t.Errorf("patch with reparsed diff %q: %v", pair[0], err)
			continue
		}
		if !ir.Equal(got, b) {
			t.Errorf("reparsed diff on %q: got %s, want %s", pair[0], encode.MustString(got), pair[1])
		}
	}
}

func TestPatchDoesNotModify(t *testing.T) {
	a := mustParse(t, `(r a b)`)
	orig := a.Clone()
	if _, err := Patch(a, Diff(a, mustParse(t, `(r b)`))); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(a, orig) {
		t.Errorf("Patch modified its input")
	}
}

func TestPatchErrors(t *testing.T) {
	tests := []struct {
		doc  string
		diff string
	}{
		{`(r a b)`, `(listdiff (at 0 (delete x)))`},
		{`(r a b)`, `(listdiff (at 5 (insert x)))`},
		{`(r a b)`, `(listdiff (at 1 (insert x)) (at 0 (delete a)))`},
		{`(r a b)`, `(listdiff (at 2 (delete b)))`},
		{`(r a b)`, `(replace (from (r a)) (to x))`},
		{`(r a b)`, `(replace (from (r a b)))`},
		{`(r a b)`, `(strdiff (equal 1))`},
		{`"abc"`, `(strdiff (equal 4))`},
		{`"abc"`, `(strdiff (equal 1))`},
		{`"abc"`, `(strdiff (delete "x") (equal 2))`},
		{`"abc"`, `(strdiff (equal x))`},
		{`(r a)`, `(unknown)`},
		{`(r a)`, `(listdiff (at x (insert a)))`},
		{`(r a)`, `(listdiff (at 0 (delete a b)))`},
	}
	for _, tc := range tests {
		_, err := Patch(mustParse(t, tc.doc), mustParse(t, tc.diff))
		if !errors.Is(err, ErrPatch) {
			t.Errorf("patch %s with %s: expected ErrPatch, got %v", tc.doc, tc.diff, err)
		}
	}
}

func TestLines(t *testing.T) {
	got, changed := Lines("a\nb\nc\n", "a\nx\nc\n")
	if !changed {
		t.Fatal("expected a change")
	}
	want := " a\n-b\n+x\n c\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, changed := Lines("same\n", "same\n"); changed {
		t.Errorf("identical texts reported as changed")
	}
}
