// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/cpulaunch/cpulaunch/internal/cpuinfo"
	"github.com/cpulaunch/cpulaunch/pkg/platform"
)

const (
	// AppName is the application name.
	AppName = "cpulaunch"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// DefaultAllocator is the variant discriminator used when none is
	// configured.
	DefaultAllocator = "system"
)

// Config is the effective launcher configuration after merging defaults,
// the optional config file, and the environment.
type Config struct {
	// Allocator is the variant discriminator used when composing backend
	// module filenames.
	Allocator string `toml:"allocator"`
	// LibDir overrides the backend module directory. Empty means the
	// "lib" directory next to the running executable.
	LibDir string `toml:"lib_dir"`
	// Verbose enables debug-level diagnostics.
	Verbose bool `toml:"verbose"`

	// ForceLibPath, when non-empty, is loaded directly, bypassing
	// selection entirely. Environment-only (FORCE_LIB_PATH).
	ForceLibPath string `toml:"-"`
	// Override is the capability override built from CPU_VENDOR /
	// CPU_FEATURES / CPU_MODEL, or nil when the override channel is not
	// active. Environment-only.
	Override *cpuinfo.Override `toml:"-"`
}

// ConfigDir returns the cpulaunch configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the full path of the config file.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Allocator: DefaultAllocator,
	}
}

// Load merges defaults, the optional config file, and the environment into
// the effective configuration. A missing config file is not an error; an
// unreadable or malformed one is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("allocator", defaults.Allocator)
	v.SetDefault("lib_dir", "")
	v.SetDefault("verbose", false)

	// Only the launcher's own knobs go through viper, so the config file
	// can set them. The override/forcing channel (FORCE_LIB_PATH, CPU_*)
	// is read from the environment directly below and a file key of the
	// same name has no effect.
	bindings := map[string]string{
		"allocator": "ALLOCATOR",
		"lib_dir":   "CPULAUNCH_LIB_DIR",
		"verbose":   "CPULAUNCH_VERBOSE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)
	if dir, err := ConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Allocator:    v.GetString("allocator"),
		LibDir:       v.GetString("lib_dir"),
		Verbose:      v.GetBool("verbose"),
		ForceLibPath: os.Getenv("FORCE_LIB_PATH"),
		Override:     overrideFromEnv(),
	}
	if cfg.Allocator == "" {
		cfg.Allocator = DefaultAllocator
	}
	return cfg, nil
}

// overrideFromEnv builds the capability override. The channel is only
// active when both the vendor and the feature list are present; the model
// is optional (the prober defaults it).
func overrideFromEnv() *cpuinfo.Override {
	vendor := os.Getenv("CPU_VENDOR")
	features := os.Getenv("CPU_FEATURES")
	if vendor == "" || features == "" {
		return nil
	}
	return &cpuinfo.Override{
		Vendor:   vendor,
		Model:    os.Getenv("CPU_MODEL"),
		Features: splitFeatures(features),
	}
}

// splitFeatures parses the comma-separated CPU_FEATURES value.
func splitFeatures(s string) []string {
	parts := strings.Split(s, ",")
	features := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			features = append(features, p)
		}
	}
	return features
}
