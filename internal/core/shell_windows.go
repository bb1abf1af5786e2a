//go:build windows

package core

// shellCommand returns the host shell invocation for a raw command string.
// cmd.exe interprets built-ins (dir, del, ...) that have no standalone
// executable.
func shellCommand(command string) (string, []string) {
	return "cmd", []string{"/C", command}
}
