// SPDX-License-Identifier: MPL-2.0

// Package cpuinfo probes the host processor and produces a normalized
// description of its vendor, model, and supported instruction-set
// extensions.
//
// Detection runs once per process. An explicit Override (built from the
// CPU_VENDOR/CPU_FEATURES/CPU_MODEL environment variables by the config
// layer) replaces hardware probing entirely, which keeps Detect pure and
// testable on any machine.
//
// On amd64 the prober issues raw CPUID queries for the vendor string, the
// processor brand string, and the base and extended feature records; any of
// those being unavailable is a DetectionError, never a guess. On arm64
// there is no user-space capability query, so detection is heuristic:
// /proc/cpuinfo (or sysctl on darwin) supplies vendor and model, and the
// "neon" tag is always reported since ASIMD is mandatory on ARMv8-A.
package cpuinfo
