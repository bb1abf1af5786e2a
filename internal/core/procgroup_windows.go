//go:build windows

package core

import "os/exec"

// setupProcessGroup is a no-op on Windows: exec.CommandContext already kills
// the child on context cancellation, and cmd.exe does not leave a process
// group behind for the built-in commands we spawn.
func setupProcessGroup(cmd *exec.Cmd) {}
