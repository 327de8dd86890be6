// Package config resolves the target directories for generated desktop
// entries: built-in defaults, an optional config file, then environment
// overrides.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Daechler/LinuxBinaryInstaller/internal/infrastructure/install"
)

// Environment variables overriding the configured directories.
const (
	EnvApplicationsDir = "LBI_APPLICATIONS_DIR"
	EnvDesktopDir      = "LBI_DESKTOP_DIR"
)

// Config holds the directories installations write into.
type Config struct {
	ApplicationsDir string `json:"applications_dir"`
	DesktopDir      string `json:"desktop_dir"`
}

// Default returns the conventional user-level locations.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		ApplicationsDir: filepath.Join(home, ".local", "share", "applications"),
		DesktopDir:      filepath.Join(home, "Desktop"),
	}
}

// Load builds the effective configuration: defaults, overlaid by
// ~/.config/lbi/config.json when present, overlaid by environment
// variables. Loading is best effort and never fails; unreadable or
// malformed sources are skipped.
func Load() Config {
	cfg := Default()

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "lbi", "config.json")
		if data, err := os.ReadFile(path); err == nil {
			var file Config
			if err := json.Unmarshal(data, &file); err == nil {
				if file.ApplicationsDir != "" {
					cfg.ApplicationsDir = install.ExpandHome(file.ApplicationsDir)
				}
				if file.DesktopDir != "" {
					cfg.DesktopDir = install.ExpandHome(file.DesktopDir)
				}
			}
		}
	}

	if v := os.Getenv(EnvApplicationsDir); v != "" {
		cfg.ApplicationsDir = install.ExpandHome(v)
	}
	if v := os.Getenv(EnvDesktopDir); v != "" {
		cfg.DesktopDir = install.ExpandHome(v)
	}
	return cfg
}
