// SPDX-License-Identifier: MPL-2.0

//go:build linux || darwin

package loader

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// invoke performs one open-resolve-invoke-release cycle via dlopen.
func invoke(path string, args []string) (int, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return 0, &OpenError{Path: path, Err: err}
	}

	sym, err := purego.Dlsym(handle, EntrySymbol)
	if err != nil || sym == 0 {
		_ = purego.Dlclose(handle)
		return 0, &SymbolError{Path: path, Symbol: EntrySymbol, Err: err}
	}

	argv, backing := cArgv(args)
	var errMsg *byte

	// The handle must outlive this call: the resolved function pointer is
	// only valid while the module stays mapped.
	r1, _, _ := purego.SyscallN(sym,
		uintptr(len(args)),
		uintptr(unsafe.Pointer(&argv[0])),
		uintptr(unsafe.Pointer(&errMsg)),
	)
	status := int32(uint32(r1))

	// Copy the message out before the module (which owns it) is released.
	msg := goString(errMsg)
	runtime.KeepAlive(argv)
	runtime.KeepAlive(backing)

	_ = purego.Dlclose(handle)

	if status < 0 {
		return 0, &ExecError{Path: path, Code: int(status), Message: msg}
	}
	return int(status), nil
}
