//nolint:gochecknoglobals
package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Prefix returns the base name used for the config and cache directories
// and for environment variable identifiers.
//
// It is the base name of the executable without extension, except:
//   - "__debug_bin<N>" (dlv output) is replaced with [Name]
//   - leading dots are removed
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		return executablePrefix(id)
	},
)

var prefixRules = []struct {
	rex *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`^__debug_bin\d*$`), Name},
	{regexp.MustCompile(`^\.+`), ""},
}

func executablePrefix(path string) string {
	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	for _, r := range prefixRules {
		id = r.rex.ReplaceAllString(id, r.rep)
	}

	if id == "" {
		return Name
	}

	return id
}

// EnvPrefix returns the prefix of environment variable identifiers, e.g.
// "COMMANDER". Variables are named PREFIX_FLAG_NAME.
func EnvPrefix() string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(Prefix()))
}

// ConfigDir returns the directory holding the config file and option
// tables.
var ConfigDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserConfigDir, ".config"), Prefix())
	},
)

// CacheDir returns the directory used for transient files such as REPL
// history.
var CacheDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserCacheDir, ".cache"), Prefix())
	},
)

// userDir returns the result of lookup, or a dot directory under the home
// directory, or the working directory, whichever is found first.
func userDir(lookup func() (string, error), dot string) string {
	if dir, err := lookup(); err == nil {
		return dir
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, dot)
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return "."
}
