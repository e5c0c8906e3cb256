// SPDX-License-Identifier: MPL-2.0

//go:build amd64

package backend

// priorityTags is the candidate ladder on x86-64, best to worst.
var priorityTags = []string{"avx2", "avx", "sse4.2", BaseTag}
