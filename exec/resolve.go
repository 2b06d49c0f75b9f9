package exec

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/brg/pebsh/env"
	"github.com/brg/pebsh/status"
)

// resolve turns argv[0] into an executable path per spec.md §4.5: verbatim
// if it contains a '/', otherwise a search of each ':'-delimited $PATH
// entry for an executable regular file.
func resolve(name string, e *env.Env) (string, *status.Error) {
	if strings.Contains(name, "/") {
		info, err := os.Stat(name)
		switch {
		case os.IsNotExist(err):
			return "", status.NotFound(name)
		case err != nil:
			return "", status.NotFound(name)
		case info.IsDir() || info.Mode()&0111 == 0:
			return "", status.NotExecutable(name)
		default:
			return name, nil
		}
	}

	pathVal, _ := e.Get("PATH")
	for _, dir := range strings.Split(pathVal, ":") {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0111 != 0 {
			return candidate, nil
		}
	}
	return "", status.NotFound(name)
}
