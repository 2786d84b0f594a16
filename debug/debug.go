// Package debug holds env-var gated debug switches for the translation
// pipeline. Set HEXON_DEBUG_TOKENS, HEXON_DEBUG_PARSE, or
// HEXON_DEBUG_CONSTS to a truthy value to enable the corresponding
// tracing on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Consts bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("HEXON_DEBUG_TOKENS")
	d.Parse = boolEnv("HEXON_DEBUG_PARSE")
	d.Consts = boolEnv("HEXON_DEBUG_CONSTS")
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

func Consts() bool {
	return d.Consts
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
