// SPDX-License-Identifier: MPL-2.0

//go:build !amd64 && !arm64

package backend

// priorityTags on architectures the prober cannot describe. Detection
// fails before selection ever runs on these, but the ladder keeps the
// package total.
var priorityTags = []string{BaseTag}
