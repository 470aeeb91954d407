package debug

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmsexpr/bms/encode"
	"github.com/bmsexpr/bms/ir"
)

var out io.Writer = os.Stderr

// Node renders a tree canonically when formatted with %v or %s.
type Node struct{ *ir.Node }

func (n Node) String() string {
	d, err := encode.ToBytes(n.Node)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %#v", n.Node)
	}
	return strings.TrimSuffix(string(d), "\n")
}

// Logf writes a debug message to stderr. *ir.Node arguments are rendered in
// canonical form.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok && x != nil {
			args[i] = Node{x}.String()
		}
	}
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(out, msg, args...)
}
