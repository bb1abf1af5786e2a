//go:build !windows

package core

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// processGroupWaitDelay bounds how long we wait for pipe reads after the
// process group has been killed.
const processGroupWaitDelay = 3 * time.Second

// setupProcessGroup runs cmd in its own session and installs a Cancel
// function that kills the whole process group when the context expires.
// Without this, a timed-out shell would die while its children kept running
// (and kept the stdout/stderr pipes open).
func setupProcessGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setsid = true

	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return os.ErrProcessDone
		}
		pid := cmd.Process.Pid
		// kill(-1) would kill every process of this user; never signal a
		// group for a pid that cannot be a real child.
		if pid <= 1 {
			return os.ErrProcessDone
		}
		if err := syscall.Kill(-pid, syscall.SIGKILL); err != nil {
			if errors.Is(err, syscall.ESRCH) {
				return os.ErrProcessDone
			}
			return err
		}
		return nil
	}
	cmd.WaitDelay = processGroupWaitDelay
}
