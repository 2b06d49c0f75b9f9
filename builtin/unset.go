package builtin

import "github.com/brg/pebsh/env"

// unset implements spec.md §4.5's unset builtin: remove each valid name,
// skipping invalid ones but still processing the rest.
func unset(c *Context) int {
	status := 0
	for _, name := range c.Argv[1:] {
		if !env.ValidName(name) {
			errorf(c, "%q: not a valid identifier", name)
			status = 1
			continue
		}
		c.Env.Unset(name)
	}
	return status
}
