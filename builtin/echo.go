package builtin

import (
	"fmt"
	"strings"
)

// isNFlag reports whether s is spec.md §4.5's echo flag: a hyphen followed
// by one or more literal 'n's, e.g. -n, -nn, -nnn.
func isNFlag(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for _, r := range s[1:] {
		if r != 'n' {
			return false
		}
	}
	return true
}

func echo(c *Context) int {
	args := c.Argv[1:]
	noNewline := false
	if len(args) > 0 && isNFlag(args[0]) {
		noNewline = true
		args = args[1:]
	}

	fmt.Fprint(c.Stdout, strings.Join(args, " "))
	if !noNewline {
		fmt.Fprint(c.Stdout, "\n")
	}
	return 0
}
