package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/aryasadawrate19/AINux-Proto/internal/core/security"
)

// DefaultTimeout is the wall-clock budget for a single command.
const DefaultTimeout = 30 * time.Second

// ErrEmptyCommand reports a caller contract violation: the executor was
// handed an empty command string. Normal failure modes (blocked, cancelled,
// timed out, non-zero exit) are returned as Result data, never as errors.
var ErrEmptyCommand = errors.New("core: empty command string")

// Confirmer supplies the user's accept/decline decision for a confirm-tier
// command. The executor owns no terminal abstraction; front ends (CLI,
// network, voice) inject their own implementation.
type Confirmer interface {
	Confirm(command string, check security.CheckResult) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(command string, check security.CheckResult) bool

// Confirm calls f.
func (f ConfirmerFunc) Confirm(command string, check security.CheckResult) bool {
	return f(command, check)
}

// runnerFunc spawns a command through the host shell and reports its exit
// code and captured output. It is swappable so tests can assert that
// blocked and cancelled commands never spawn a process.
type runnerFunc func(ctx context.Context, command, dir string) (exitCode int, stdout, stderr string, err error)

// Executor runs candidate commands under the safety gate. Each Execute call
// is independent and stateless; the classifier and configuration are
// read-only after construction, so concurrent calls need no locking.
type Executor struct {
	classifier *security.Classifier
	confirmer  Confirmer
	timeout    time.Duration
	workdir    string
	runner     runnerFunc
}

// NewExecutor creates an executor. A zero timeout falls back to
// DefaultTimeout; an empty workdir inherits the process working directory.
// A nil confirmer declines every confirm-tier command.
func NewExecutor(classifier *security.Classifier, confirmer Confirmer, timeout time.Duration) *Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Executor{
		classifier: classifier,
		confirmer:  confirmer,
		timeout:    timeout,
		runner:     runShell,
	}
}

// SetWorkdir overrides the working directory inherited by spawned commands.
func (e *Executor) SetWorkdir(dir string) {
	e.workdir = dir
}

// Timeout returns the configured wall-clock budget.
func (e *Executor) Timeout() time.Duration {
	return e.timeout
}

// Execute classifies a command, obtains confirmation when required, and runs
// it through the host shell with a bounded timeout. The returned error is
// non-nil only for contract violations (empty command); every normal failure
// mode is represented in the Result.
func (e *Executor) Execute(ctx context.Context, command string) (*Result, error) {
	if strings.TrimSpace(command) == "" {
		return nil, ErrEmptyCommand
	}

	check := e.classifier.Check(command)

	if check.Verdict == security.Forbidden {
		return &Result{
			Command: command,
			Success: false,
			Error:   fmt.Sprintf("command blocked for security reasons: %s", command),
		}, nil
	}

	if check.Verdict == security.Confirm {
		if e.confirmer == nil || !e.confirmer.Confirm(command, check) {
			return &Result{
				Command: command,
				Success: false,
				Error:   fmt.Sprintf("execution cancelled by user: %s", command),
			}, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	exitCode, stdout, stderr, err := e.runner(ctx, command, e.workdir)

	if ctx.Err() == context.DeadlineExceeded {
		return &Result{
			Command: command,
			Success: false,
			Error:   fmt.Sprintf("command timed out after %d seconds: %s", int(e.timeout.Seconds()), command),
		}, nil
	}

	if err != nil {
		// Spawn-level failure: the shell itself could not be started.
		return &Result{
			Command: command,
			Success: false,
			Error:   fmt.Sprintf("failed to run command: %v", err),
		}, nil
	}

	code := exitCode
	return &Result{
		Command:  command,
		Success:  code == 0,
		Output:   strings.TrimSpace(stdout),
		Error:    strings.TrimSpace(stderr),
		ExitCode: &code,
	}, nil
}

// runShell executes the command string through the host shell, in its own
// process group so that a timeout kills the child and all its descendants.
func runShell(ctx context.Context, command, dir string) (int, string, string, error) {
	name, args := shellCommand(command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	setupProcessGroup(cmd)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Non-zero exit is not a spawn failure.
			return exitErr.ExitCode(), stdout.String(), stderr.String(), nil
		}
		return 0, stdout.String(), stderr.String(), err
	}

	return 0, stdout.String(), stderr.String(), nil
}
