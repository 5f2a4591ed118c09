// Package debug holds env-controlled diagnostic switches.
//
// Each switch is read once at startup from an LV_DEBUG_* variable.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Move  bool
	LSP   bool
	Eval  bool
}

var (
	d   *debug
	out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("LV_DEBUG_PARSE")
	d.Move = boolEnv("LV_DEBUG_MOVE")
	d.LSP = boolEnv("LV_DEBUG_LSP")
	d.Eval = boolEnv("LV_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Move() bool {
	return d.Move
}
func LSP() bool {
	return d.LSP
}
func Eval() bool {
	return d.Eval
}

// SetOutput redirects diagnostics, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

func Logf(format string, args ...any) {
	fmt.Fprintf(out, format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		io.WriteString(out, "\n")
	}
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
