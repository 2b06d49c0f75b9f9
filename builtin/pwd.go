package builtin

import (
	"fmt"
	"os"
)

// pwd implements spec.md §4.5's pwd builtin. It ignores its arguments.
func pwd(c *Context) int {
	cwd, err := os.Getwd()
	if err != nil {
		errorf(c, "%s", err)
		return 1
	}
	fmt.Fprintln(c.Stdout, cwd)
	return 0
}
