// SPDX-License-Identifier: MPL-2.0

// cpulaunch selects the best-matching precompiled backend module for the
// host CPU, loads it, and hands control to its exported entry point.
package main

import cmd "github.com/cpulaunch/cpulaunch/cmd/cpulaunch"

func main() {
	cmd.Execute()
}
