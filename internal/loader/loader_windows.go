// SPDX-License-Identifier: MPL-2.0

//go:build windows

package loader

import (
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// invoke performs one open-resolve-invoke-release cycle via LoadLibrary.
func invoke(path string, args []string) (int, error) {
	handle, err := windows.LoadLibraryEx(path, 0, windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	if err != nil {
		return 0, &OpenError{Path: path, Err: err}
	}

	proc, err := windows.GetProcAddress(handle, EntrySymbol)
	if err != nil {
		_ = windows.FreeLibrary(handle)
		return 0, &SymbolError{Path: path, Symbol: EntrySymbol, Err: err}
	}

	argv, backing := cArgv(args)
	var errMsg *byte

	// The handle must outlive this call: the resolved function pointer is
	// only valid while the module stays mapped.
	r1, _, _ := syscall.SyscallN(proc,
		uintptr(len(args)),
		uintptr(unsafe.Pointer(&argv[0])),
		uintptr(unsafe.Pointer(&errMsg)),
	)
	status := int32(uint32(r1))

	// Copy the message out before the module (which owns it) is released.
	msg := goString(errMsg)
	runtime.KeepAlive(argv)
	runtime.KeepAlive(backing)

	_ = windows.FreeLibrary(handle)

	if status < 0 {
		return 0, &ExecError{Path: path, Code: int(status), Message: msg}
	}
	return int(status), nil
}
