// SPDX-License-Identifier: MPL-2.0

package loader

import "unsafe"

// cArgv converts an argument sequence into a NULL-terminated array of
// pointers to NUL-terminated byte strings, the C argv convention. The
// returned backing slices must be kept alive for the duration of the call
// (runtime.KeepAlive) since only raw pointers cross the ABI boundary.
func cArgv(args []string) (argv []*byte, backing [][]byte) {
	backing = make([][]byte, len(args))
	argv = make([]*byte, len(args)+1) // trailing NULL terminator
	for i, arg := range args {
		buf := make([]byte, len(arg)+1)
		copy(buf, arg)
		backing[i] = buf
		argv[i] = &buf[0]
	}
	return argv, backing
}

// goString copies a NUL-terminated C string into a Go string. A nil
// pointer yields the empty string. The copy must happen before the module
// that owns the memory is released.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
