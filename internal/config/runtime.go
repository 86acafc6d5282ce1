package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves the runtime directory before any config struct is
// parsed, so the .env file inside it can be loaded first. AppConfig resolves
// its RuntimePath the same way, everything under the runtime dir ends up in
// one place regardless of the launch directory.
func GetRuntimePath() string {
	path := os.Getenv("SULPHITE_RUNTIME_PATH")
	if path == "" {
		path = ".sulphite"
	}
	return resolveRuntimePath(path)
}

// resolveRuntimePath anchors a relative runtime path at the home directory.
func resolveRuntimePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
