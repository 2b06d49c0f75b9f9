package builtin

import "strconv"

// exit implements spec.md §4.5's exit builtin. Whether it actually
// terminates the shell process (as opposed to just ending the pipeline
// stage it ran as) is up to the caller: it's only asked to via c.Exit,
// which the executor wires up solely for the single-builtin-in-parent
// fast path.
func exit(c *Context) int {
	switch len(c.Argv) {
	case 1:
		status := c.Env.LastStatus()
		if c.Exit != nil {
			c.Exit(status)
		}
		return status

	case 2:
		n, err := strconv.Atoi(c.Argv[1])
		if err != nil {
			errorf(c, "numeric argument required")
			return 255
		}
		status := ((n % 256) + 256) % 256
		if c.Exit != nil {
			c.Exit(status)
		}
		return status

	default:
		errorf(c, "too many arguments")
		return 1
	}
}
