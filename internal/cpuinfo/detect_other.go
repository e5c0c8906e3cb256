// SPDX-License-Identifier: MPL-2.0

//go:build !amd64 && !arm64

package cpuinfo

import "runtime"

// detectHost on architectures without a detection strategy. The prober
// does not guess, so this is always a fatal DetectionError naming the
// unsupported architecture.
func detectHost() (Info, error) {
	return Info{}, &DetectionError{Reason: "unsupported architecture: " + runtime.GOARCH}
}
