package util

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
)

// HomeDir falls back to the user database when $HOME is unset.
func HomeDir() string {
	home, _ := os.UserHomeDir()
	if home != "" || runtime.GOOS == "windows" {
		return home
	}
	if u, err := user.Current(); err == nil {
		return u.HomeDir
	}
	return ""
}

// ExpandHome replaces a leading ~ with the home directory.
// Paths from config files and env vars are not expanded by the shell.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home := HomeDir()
	if home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
