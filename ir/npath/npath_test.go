package npath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Path
	}{
		{
			name:  "single name",
			input: "name",
			want:  Path{{Name: "name"}},
		},
		{
			name:  "name then index",
			input: "name/@0",
			want:  Path{{Name: "name"}, {Name: "@0", Index: 0, Positional: true}},
		},
		{
			name:  "large index",
			input: "@12",
			want:  Path{{Name: "@12", Index: 12, Positional: true}},
		},
		{
			name:  "negative index",
			input: "@-1",
			want:  Path{{Name: "@-1", Positional: true, Invalid: true}},
		},
		{
			name:  "malformed index",
			input: "@x",
			want:  Path{{Name: "@x", Positional: true, Invalid: true}},
		},
		{
			name:  "bare at",
			input: "@",
			want:  Path{{Name: "@", Positional: true, Invalid: true}},
		},
		{
			name:  "empty path",
			input: "",
			want:  Path{{Name: ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, in := range []string{"a", "a/b", "a/@3/b", "@0/@1"} {
		if got := Parse(in).String(); got != in {
			t.Errorf("Parse(%q).String() = %q", in, got)
		}
	}
}

func TestAppend(t *testing.T) {
	p := Parse("item")
	q := p.Append(Index(1), Name("label"))
	if got := q.String(); got != "item/@1/label" {
		t.Errorf("got %q", got)
	}
	if got := p.String(); got != "item" {
		t.Errorf("Append modified receiver: %q", got)
	}
	if !Index(-2).Invalid {
		t.Errorf("expected negative index segment to be invalid")
	}
}
