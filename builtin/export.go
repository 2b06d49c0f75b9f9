package builtin

import (
	"fmt"
	"strings"

	"github.com/brg/pebsh/env"
)

// export implements spec.md §4.5's export builtin. With no arguments it
// lists every exported variable, matching what `declare -x` prints.
func export(c *Context) int {
	args := c.Argv[1:]
	if len(args) == 0 {
		for _, name := range c.Env.All() {
			v, ok := c.Env.Variable(name)
			if ok && v.Exported {
				fmt.Fprintf(c.Stdout, "declare -x %s=%q\n", name, v.Value)
			}
		}
		return 0
	}

	status := 0
	for _, arg := range args {
		name, value, hasEq := strings.Cut(arg, "=")
		if !env.ValidName(name) {
			errorf(c, "%q: not a valid identifier", name)
			status = 1
			continue
		}
		if err := c.Env.Export(name, value, hasEq); err != nil {
			errorf(c, "%s", err)
			status = 1
		}
	}
	return status
}
