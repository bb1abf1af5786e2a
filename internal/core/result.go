package core

// Result represents the outcome of a single command invocation. It is a
// value object: created per call, owned by the caller, never shared.
//
// Success implies the process ran and exited zero with no execution error.
// Blocked, cancelled and timed-out invocations never carry an exit code.
type Result struct {
	Command  string `json:"command"`
	Success  bool   `json:"success"`
	Output   string `json:"output"`
	Error    string `json:"error,omitempty"`
	ExitCode *int   `json:"exit_code,omitempty"`
}
