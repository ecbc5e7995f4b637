// Package debug gates codec tracing behind environment variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/y-lohse/ink/ir"
)

type debug struct {
	Encode bool
	Parse  bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("INKC_DEBUG_ENCODE")
	d.Parse = boolEnv("INKC_DEBUG_PARSE")
	d.Eval = boolEnv("INKC_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}

// Logf writes a trace line to stderr. Node arguments are rendered as
// their JSON document form.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			doc, err := x.ToDoc()
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %s", x.Kind)
				continue
			}
			data, err := json.Marshal(doc)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %s", x.Kind)
				continue
			}
			args[i] = string(data)
		case map[string]any, []any:
			data, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(data)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
