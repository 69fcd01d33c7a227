package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/ir"
)

// Logf writes to stderr. Node arguments are rendered as compact text,
// maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			s, err := encode.ToText(x, encode.DefaultFormat)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %s %s", x.Type(), x.Trace())
				continue
			}
			args[i] = s
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
