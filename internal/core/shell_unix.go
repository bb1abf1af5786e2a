//go:build !windows

package core

// shellCommand returns the host shell invocation for a raw command string.
// The string is passed to the shell unparsed so that pipes, wildcards and
// redirects keep their usual meaning.
func shellCommand(command string) (string, []string) {
	return "sh", []string{"-c", command}
}
