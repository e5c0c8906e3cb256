// SPDX-License-Identifier: MPL-2.0

//go:build amd64 && purego

package cpuinfo

// cpuid fallback for purego builds (no assembly allowed).
// We cannot execute the CPUID instruction directly; every query reads as
// unavailable, so detection fails rather than guesses.
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}
