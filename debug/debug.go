package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Path   bool
	Patch  bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("JDOC_DEBUG_TOKENS")
	d.Parse = boolEnv("JDOC_DEBUG_PARSE")
	d.Path = boolEnv("JDOC_DEBUG_PATH")
	d.Patch = boolEnv("JDOC_DEBUG_PATCH")
	d.Eval = boolEnv("JDOC_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Path() bool {
	return d.Path
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
