package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// version and buildTime are filled in during build by the Makefile
var (
	name      = "auth-tui"
	buildTime = "N/A"
	commit    = "N/A"
)

// HomeEnv defines the name of the environment variable that can overwrite the
// default home directory.
const HomeEnv = "HOME"

// SecretsFileName is the name of the default secrets file in the home
// directory.
const SecretsFileName = ".auth-tui"

// Home returns the user home directory using the environment variable HOME or
// the os/user package. It returns an empty string if none of them is
// available.
func Home() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return filepath.Clean(home)
	}
	if usr, err := user.Current(); err == nil && usr.HomeDir != "" {
		return filepath.Clean(usr.HomeDir)
	}
	return ""
}

// DefaultSecretsPath returns the path of the secrets file used when no other
// file is given, '$HOME/.auth-tui'. If the home directory cannot be
// determined it defaults to '.auth-tui' in the current directory.
func DefaultSecretsPath() string {
	home := Home()
	if home == "" {
		return SecretsFileName
	}
	return filepath.Join(home, SecretsFileName)
}

// Abs returns the given path with the special prefix "~/" replaced by the home
// directory. Other paths are returned cleaned but unchanged.
func Abs(path string) string {
	if path == "" {
		return path
	}
	// Windows accept both \ and /
	if slashed := filepath.ToSlash(path); strings.HasPrefix(slashed, "~/") {
		if home := Home(); home != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return filepath.Clean(path)
}

// SecretsPath returns the secrets file to use, the given one if it's not empty
// or the default one.
func SecretsPath(path string) string {
	if path == "" {
		return DefaultSecretsPath()
	}
	return Abs(path)
}

// Set updates the Version and ReleaseDate
func Set(n, v, t string) {
	name = n
	buildTime = t
	commit = v
}

// Version returns the current version of the binary
func Version() string {
	out := commit
	if commit == "N/A" {
		out = "0000000-dev"
	}

	return fmt.Sprintf("%s/%s (%s/%s)",
		name, out, runtime.GOOS, runtime.GOARCH)
}

// ReleaseDate returns the time of when the binary was built
func ReleaseDate() string {
	out := buildTime
	if buildTime == "N/A" {
		out = time.Now().UTC().Format("2006-01-02 15:04 MST")
	}

	return out
}
