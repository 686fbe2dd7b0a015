package config

import (
	"os"
	"path/filepath"
)

// ConfigFileNames are the config file names searched for, in priority order.
var ConfigFileNames = []string{".sqlfmt.yaml", ".sqlfmt.yml", "sqlfmt.yaml"}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// FindConfigFile returns the config file in dir, or "" if there is none.
func FindConfigFile(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// FindConfigFileUpward walks up from startDir and returns the first config
// file found, or "" when none exists within maxUpwardSearchLevels.
func FindConfigFileUpward(startDir string) string {
	dir := startDir
	for range maxUpwardSearchLevels {
		if path := FindConfigFile(dir); path != "" {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// ResolvePath resolves path relative to baseDir unless it is empty or absolute.
func ResolvePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
