// SPDX-License-Identifier: MPL-2.0

//go:build arm64

package backend

// priorityTags is the candidate ladder on ARM64. NEON is the only tag the
// prober reports on this architecture.
var priorityTags = []string{"neon", BaseTag}
