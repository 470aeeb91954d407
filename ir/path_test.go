package ir

import (
	"errors"
	"testing"

	"github.com/bmsexpr/bms/ir/npath"
)

func pathTree() *Node {
	// (root
	//  (name "Alice")
	//  (id 1)
	//  (name "Bob"))
	root := NewList("root")
	root.EnsureLineBreak()
	root.AppendList("name").AppendChild(NewString("Alice"))
	root.EnsureLineBreak()
	root.AppendList("id").AppendChild(NewToken("1"))
	root.EnsureLineBreak()
	root.AppendList("name").AppendChild(NewString("Bob"))
	return root
}

func TestPositionalSkipsLineBreaks(t *testing.T) {
	l := NewList("l")
	l.AppendChild(NewLineBreak())
	l.AppendChild(NewToken("A"))
	l.AppendChild(NewLineBreak())
	l.AppendChild(NewToken("B"))
	l.AppendChild(NewToken("C"))
	for path, want := range map[string]string{"@0": "A", "@1": "B", "@2": "C"} {
		got := l.TryGetChild(path)
		if got == nil || got.Value() != want {
			t.Errorf("%s: got %#v, want %s", path, got, want)
		}
	}
	for _, path := range []string{"@3", "@-1", "@x", "@"} {
		if got := l.TryGetChild(path); got != nil {
			t.Errorf("%s: expected miss, got %#v", path, got)
		}
	}
}

func TestNameLookup(t *testing.T) {
	root := pathTree()
	if got := root.GetChild("name/@0").Value(); got != "Alice" {
		t.Errorf("first match should win, got %q", got)
	}
	if got := root.GetChild("id/@0").Value(); got != "1" {
		t.Errorf("got %q", got)
	}
	if got := root.GetChild("@1"); got.Name() != "id" {
		t.Errorf("@1 resolved to %#v", got)
	}
	for _, path := range []string{"nope", "name/@1", "name/@0/@0", "id/x", ""} {
		if got := root.TryGetChild(path); got != nil {
			t.Errorf("%q: expected miss, got %#v", path, got)
		}
	}
}

func TestLookupAndGetChildMiss(t *testing.T) {
	root := pathTree()
	_, err := root.Lookup("name/@5")
	if !errors.Is(err, ErrLookupMiss) {
		t.Fatalf("expected ErrLookupMiss, got %v", err)
	}
	expectPanic(t, ErrLookupMiss, func() { root.GetChild("missing") })
}

func TestChildrenQueries(t *testing.T) {
	root := pathTree()
	names := root.ChildrenNamed("name")
	if len(names) != 2 || names[0].GetChild("@0").Value() != "Alice" || names[1].GetChild("@0").Value() != "Bob" {
		t.Errorf("ChildrenNamed order: %#v", names)
	}
	if got := len(root.ChildrenOfType(LineBreakType)); got != 3 {
		t.Errorf("got %d line breaks", got)
	}
	if got := len(root.ChildrenOfType(ListType)); got != 3 {
		t.Errorf("got %d lists", got)
	}
	if got := root.ChildrenNamed("absent"); len(got) != 0 {
		t.Errorf("got %#v", got)
	}
	if got := NewToken("t").ChildrenOfType(TokenType); len(got) != 0 {
		t.Errorf("token has children %#v", got)
	}
}

func TestLookupPath(t *testing.T) {
	root := pathTree()
	p := npath.Path{}.Append(npath.Index(2), npath.Index(0))
	got, err := root.LookupPath(p)
	if err != nil {
		t.Fatal(err)
	}
	if got.Value() != "Bob" {
		t.Errorf("%s: got %#v", p, got)
	}
	if _, err := root.LookupPath(p.Append(npath.Name("x"))); !errors.Is(err, ErrLookupMiss) {
		t.Errorf("expected ErrLookupMiss, got %v", err)
	}
}
