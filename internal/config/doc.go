// SPDX-License-Identifier: MPL-2.0

// Package config handles launcher configuration using Viper.
//
// Configuration is layered, lowest to highest precedence: built-in
// defaults, an optional config.toml in the platform config directory, and
// environment variables (CPU_VENDOR, CPU_FEATURES, CPU_MODEL,
// FORCE_LIB_PATH, ALLOCATOR, CPULAUNCH_LIB_DIR, CPULAUNCH_VERBOSE).
// CLI flags are applied on top by the cmd layer.
//
// The capability override channel is materialized here, once, into an
// explicit cpuinfo.Override value instead of being read from the
// environment inside the prober. This keeps detection pure and testable.
package config
