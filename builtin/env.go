package builtin

import "fmt"

// envCmd implements the `env` builtin. It ignores its arguments.
func envCmd(c *Context) int {
	for _, kv := range c.Env.Exported() {
		fmt.Fprintln(c.Stdout, kv)
	}
	return 0
}
