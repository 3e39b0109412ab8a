package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "ctryrisk"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/ctryrisk by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/ctryrisk/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/ctryrisk/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ContinentsFilePath returns the full path to the continents.yaml file
// with the hand-maintained country to continent table.
// Returns ~/.config/ctryrisk/continents.yaml by default.
func ContinentsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "continents.yaml")
}
