package builtin

import (
	"fmt"
	"os"
)

func cd(c *Context) int {
	home, hasHome := c.Env.Get("HOME")

	var dst string
	echoDst := false

	switch len(c.Argv) {
	case 1:
		if !hasHome || home == "" {
			errorf(c, "HOME not set")
			return 1
		}
		dst = home
	case 2:
		switch arg := c.Argv[1]; arg {
		case "~":
			if !hasHome || home == "" {
				errorf(c, "HOME not set")
				return 1
			}
			dst = home
		case "-":
			oldpwd, ok := c.Env.Get("OLDPWD")
			if !ok || oldpwd == "" {
				errorf(c, "OLDPWD not set")
				return 1
			}
			dst = oldpwd
			echoDst = true
		default:
			dst = arg
		}
	default:
		errorf(c, "too many arguments")
		return 1
	}

	cwd, err := os.Getwd()
	if err != nil {
		errorf(c, "%s", err)
		return 1
	}

	if err := os.Chdir(dst); err != nil {
		errorf(c, "%s", err)
		return 1
	}

	newCwd, err := os.Getwd()
	if err != nil {
		newCwd = dst
	}
	c.Env.Export("OLDPWD", cwd, true)
	c.Env.Export("PWD", newCwd, true)

	if echoDst {
		fmt.Fprintln(c.Stdout, newCwd)
	}
	return 0
}
