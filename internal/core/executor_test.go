package core

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/aryasadawrate19/AINux-Proto/internal/core/security"
)

// spyRunner counts spawns so tests can prove that blocked and cancelled
// commands never reach the shell.
type spyRunner struct {
	calls    int
	exitCode int
	stdout   string
	stderr   string
	err      error
}

func (s *spyRunner) run(ctx context.Context, command, dir string) (int, string, string, error) {
	s.calls++
	return s.exitCode, s.stdout, s.stderr, s.err
}

func newTestExecutor(confirmer Confirmer, spy *spyRunner) *Executor {
	e := NewExecutor(security.NewClassifier(), confirmer, 5*time.Second)
	if spy != nil {
		e.runner = spy.run
	}
	return e
}

func TestExecute_EmptyCommandIsContractViolation(t *testing.T) {
	spy := &spyRunner{}
	executor := newTestExecutor(nil, spy)

	for _, cmd := range []string{"", "   ", "\t\n"} {
		if _, err := executor.Execute(context.Background(), cmd); !errors.Is(err, ErrEmptyCommand) {
			t.Errorf("Execute(%q) error = %v, want ErrEmptyCommand", cmd, err)
		}
	}
	if spy.calls != 0 {
		t.Errorf("runner called %d times for empty commands", spy.calls)
	}
}

func TestExecute_ForbiddenNeverSpawns(t *testing.T) {
	spy := &spyRunner{}
	alwaysYes := ConfirmerFunc(func(string, security.CheckResult) bool { return true })
	executor := newTestExecutor(alwaysYes, spy)

	commands := []string{"rm -rf /", "shutdown -h now", "dd if=/dev/zero of=/dev/sda", ":(){ :|:& };:"}
	for _, cmd := range commands {
		result, err := executor.Execute(context.Background(), cmd)
		if err != nil {
			t.Fatalf("Execute(%q) returned error: %v", cmd, err)
		}
		if result.Success {
			t.Errorf("Execute(%q) succeeded, want blocked", cmd)
		}
		if !strings.Contains(result.Error, "blocked for security reasons") {
			t.Errorf("Execute(%q) error = %q, want security block", cmd, result.Error)
		}
		if result.Command != cmd {
			t.Errorf("result.Command = %q, want %q", result.Command, cmd)
		}
		if result.ExitCode != nil {
			t.Errorf("blocked command carries exit code %d", *result.ExitCode)
		}
	}

	if spy.calls != 0 {
		t.Errorf("runner called %d times for forbidden commands, want 0", spy.calls)
	}
}

func TestExecute_ConfirmDeclinedNeverSpawns(t *testing.T) {
	spy := &spyRunner{}
	alwaysNo := ConfirmerFunc(func(string, security.CheckResult) bool { return false })
	executor := newTestExecutor(alwaysNo, spy)

	result, err := executor.Execute(context.Background(), "rm -rf /tmp/testdir")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success {
		t.Error("declined command reported success")
	}
	if !strings.Contains(result.Error, "cancelled") {
		t.Errorf("result.Error = %q, want cancellation", result.Error)
	}
	if result.Command != "rm -rf /tmp/testdir" {
		t.Errorf("result.Command = %q", result.Command)
	}
	if result.ExitCode != nil {
		t.Error("cancelled command carries an exit code")
	}
	if spy.calls != 0 {
		t.Errorf("runner called %d times, want 0", spy.calls)
	}
}

func TestExecute_NilConfirmerDeclines(t *testing.T) {
	spy := &spyRunner{}
	executor := newTestExecutor(nil, spy)

	result, err := executor.Execute(context.Background(), "mv a.txt b.txt")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success || !strings.Contains(result.Error, "cancelled") {
		t.Errorf("expected cancellation, got %+v", result)
	}
	if spy.calls != 0 {
		t.Errorf("runner called %d times, want 0", spy.calls)
	}
}

func TestExecute_ConfirmGrantedSpawns(t *testing.T) {
	spy := &spyRunner{stdout: "done\n"}
	var sawCommand string
	confirmer := ConfirmerFunc(func(cmd string, check security.CheckResult) bool {
		sawCommand = cmd
		if check.Verdict != security.Confirm {
			t.Errorf("confirmer saw verdict %v, want Confirm", check.Verdict)
		}
		return true
	})
	executor := newTestExecutor(confirmer, spy)

	result, err := executor.Execute(context.Background(), "rm -rf /tmp/testdir")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if spy.calls != 1 {
		t.Fatalf("runner called %d times, want 1", spy.calls)
	}
	if sawCommand != "rm -rf /tmp/testdir" {
		t.Errorf("confirmer saw command %q", sawCommand)
	}
	if !result.Success || result.Output != "done" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestExecute_SafeCommandSkipsConfirmation(t *testing.T) {
	spy := &spyRunner{stdout: "hello\n"}
	neverAsk := ConfirmerFunc(func(string, security.CheckResult) bool {
		t.Error("confirmer invoked for a safe command")
		return false
	})
	executor := newTestExecutor(neverAsk, spy)

	result, err := executor.Execute(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !result.Success || result.Output != "hello" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestExecute_ExitCodeMapping(t *testing.T) {
	tests := []struct {
		name     string
		spy      *spyRunner
		success  bool
		exitCode int
		errText  string
	}{
		{
			name:     "exit zero with empty stderr",
			spy:      &spyRunner{exitCode: 0, stdout: "ok\n"},
			success:  true,
			exitCode: 0,
		},
		{
			name:     "exit one with stderr",
			spy:      &spyRunner{exitCode: 1, stderr: "boom\n"},
			success:  false,
			exitCode: 1,
			errText:  "boom",
		},
		{
			name:     "exit zero with warning on stderr stays successful",
			spy:      &spyRunner{exitCode: 0, stdout: "ok\n", stderr: "warning: deprecated\n"},
			success:  true,
			exitCode: 0,
			errText:  "warning: deprecated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := newTestExecutor(nil, tt.spy)
			result, err := executor.Execute(context.Background(), "echo probe")
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			if result.Success != tt.success {
				t.Errorf("Success = %v, want %v", result.Success, tt.success)
			}
			if result.ExitCode == nil || *result.ExitCode != tt.exitCode {
				t.Errorf("ExitCode = %v, want %d", result.ExitCode, tt.exitCode)
			}
			if result.Error != tt.errText {
				t.Errorf("Error = %q, want %q", result.Error, tt.errText)
			}
		})
	}
}

func TestExecute_SpawnFailure(t *testing.T) {
	spy := &spyRunner{err: errors.New("exec: \"sh\": executable file not found")}
	executor := newTestExecutor(nil, spy)

	result, err := executor.Execute(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success {
		t.Error("spawn failure reported success")
	}
	if result.ExitCode != nil {
		t.Error("spawn failure carries an exit code")
	}
	if !strings.Contains(result.Error, "failed to run command") {
		t.Errorf("Error = %q", result.Error)
	}
}

func TestExecute_RealCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	executor := NewExecutor(security.NewClassifier(), nil, 5*time.Second)

	result, err := executor.Execute(context.Background(), "echo hello world")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("echo failed: %+v", result)
	}
	if result.Output != "hello world" {
		t.Errorf("Output = %q, want %q", result.Output, "hello world")
	}
	if result.ExitCode == nil || *result.ExitCode != 0 {
		t.Errorf("ExitCode = %v, want 0", result.ExitCode)
	}
}

func TestExecute_RealCommandNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	executor := NewExecutor(security.NewClassifier(), nil, 5*time.Second)

	result, err := executor.Execute(context.Background(), "echo oops >&2; exit 1")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success {
		t.Error("exit 1 reported success")
	}
	if result.ExitCode == nil || *result.ExitCode != 1 {
		t.Errorf("ExitCode = %v, want 1", result.ExitCode)
	}
	if result.Error != "oops" {
		t.Errorf("Error = %q, want %q", result.Error, "oops")
	}
}

func TestExecute_Timeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	executor := NewExecutor(security.NewClassifier(), nil, 1*time.Second)

	start := time.Now()
	result, err := executor.Execute(context.Background(), "sleep 30")
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success {
		t.Error("timed-out command reported success")
	}
	if !strings.Contains(result.Error, "timed out after 1 seconds") {
		t.Errorf("Error = %q, want timeout message", result.Error)
	}
	if result.ExitCode != nil {
		t.Errorf("timed-out command carries exit code %d", *result.ExitCode)
	}
	// The process group is SIGKILLed; Execute must return promptly rather
	// than waiting out the child's sleep.
	if elapsed > 10*time.Second {
		t.Errorf("Execute took %v, child not terminated", elapsed)
	}
}

func TestExecute_TimeoutKillsDescendants(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	executor := NewExecutor(security.NewClassifier(), nil, 1*time.Second)

	// The background child inherits the session; both must die on timeout
	// or Execute would block on the shared stdout pipe far longer than the
	// WaitDelay allows.
	start := time.Now()
	result, err := executor.Execute(context.Background(), "sleep 30 & sleep 30")
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success {
		t.Error("timed-out command reported success")
	}
	if elapsed > 10*time.Second {
		t.Errorf("Execute took %v, process group not killed", elapsed)
	}
}
