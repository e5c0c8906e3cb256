// SPDX-License-Identifier: MPL-2.0

//go:build arm64 && !darwin

package cpuinfo

// darwinBrandString is darwin-only; the sysctl interface does not exist on
// other systems, so the brand lookup reports unavailable and detectHost
// keeps its fallback vendor and model.
func darwinBrandString() (string, bool) {
	return "", false
}
