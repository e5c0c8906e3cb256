// SPDX-License-Identifier: MPL-2.0

//go:build arm64 && darwin

package cpuinfo

import "syscall"

// darwinBrandString reads the processor brand via sysctl.
func darwinBrandString() (string, bool) {
	brand, err := syscall.Sysctl("machdep.cpu.brand_string")
	return brand, err == nil && brand != ""
}
