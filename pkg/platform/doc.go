// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes the platform-specific concerns of the launcher:
// GOOS string constants and the native shared-library naming convention
// (prefix and extension) used to compose backend module filenames.
package platform
