// SPDX-License-Identifier: MPL-2.0

//go:build amd64 && !purego

package cpuinfo

// cpuid executes the CPUID instruction with the given EAX and ECX inputs.
// Returns EAX, EBX, ECX, EDX outputs.
// Defined in cpuid_amd64.s
//
//go:noescape
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)
