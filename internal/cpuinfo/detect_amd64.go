// SPDX-License-Identifier: MPL-2.0

//go:build amd64

package cpuinfo

import "strings"

// CPUID leaf numbers and feature bit positions used by the prober.
const (
	leafVendor      = 0x0
	leafFeatures    = 0x1
	leafExtFeatures = 0x7

	leafExtMax    = 0x80000000
	leafBrandLast = 0x80000004

	// Leaf 1 ECX bits.
	bitSSE42 = 1 << 20
	bitAVX   = 1 << 28

	// Leaf 7 (sub-leaf 0) EBX bits.
	bitAVX2 = 1 << 5
)

// detectHost probes the processor via CPUID. Each of the four queries
// (vendor string, brand string, feature info, extended feature info) can
// independently be unavailable; an unavailable query is a DetectionError,
// not a default. An absent feature bit only means the tag is absent.
func detectHost() (Info, error) {
	maxLeaf, vb, vd, vc := cpuid(leafVendor, 0)
	vendor := vendorString(vb, vd, vc)
	if vendor == "" {
		return Info{}, &DetectionError{Reason: "vendor string query unavailable"}
	}

	model, ok := brandString()
	if !ok {
		return Info{}, &DetectionError{Reason: "processor brand string query unavailable"}
	}

	if maxLeaf < leafFeatures {
		return Info{}, &DetectionError{Reason: "feature info query unavailable"}
	}
	_, _, fc, _ := cpuid(leafFeatures, 0)

	if maxLeaf < leafExtFeatures {
		return Info{}, &DetectionError{Reason: "extended feature info query unavailable"}
	}
	xb, _, _, _ := cpuid(leafExtFeatures, 0)

	features := make([]string, 0, 3)
	if fc&bitSSE42 != 0 {
		features = append(features, "sse4.2")
	}
	if fc&bitAVX != 0 {
		features = append(features, "avx")
	}
	if xb&bitAVX2 != 0 {
		features = append(features, "avx2")
	}

	return Info{Vendor: vendor, Model: model, Features: features}, nil
}

// vendorString decodes the 12-byte vendor identifier returned by leaf 0.
// Register order is EBX, EDX, ECX ("GenuineIntel", "AuthenticAMD", ...).
func vendorString(ebx, edx, ecx uint32) string {
	buf := make([]byte, 0, 12)
	for _, reg := range [...]uint32{ebx, edx, ecx} {
		buf = append(buf, byte(reg), byte(reg>>8), byte(reg>>16), byte(reg>>24))
	}
	return strings.TrimRight(string(buf), "\x00 ")
}

// brandString decodes the 48-byte processor brand string from the extended
// leaves 0x80000002..0x80000004. It reports ok=false when the processor
// does not implement those leaves.
func brandString() (string, bool) {
	maxExt, _, _, _ := cpuid(leafExtMax, 0)
	if maxExt < leafBrandLast {
		return "", false
	}

	buf := make([]byte, 0, 48)
	for leaf := uint32(0x80000002); leaf <= leafBrandLast; leaf++ {
		a, b, c, d := cpuid(leaf, 0)
		for _, reg := range [...]uint32{a, b, c, d} {
			buf = append(buf, byte(reg), byte(reg>>8), byte(reg>>16), byte(reg>>24))
		}
	}
	return strings.TrimSpace(strings.TrimRight(string(buf), "\x00")), true
}
