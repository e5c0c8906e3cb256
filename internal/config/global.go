// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to redirect the config directory.
var configDirOverride string

// SetConfigDirOverride redirects ConfigDir to the given directory. Pass an
// empty string to restore the platform default. Intended for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
