// Package terminal implements the interactive surface of AiNux: the
// confirmation prompt for risky commands and the REPL loop.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aryasadawrate19/AINux-Proto/internal/core/security"
)

// DefaultConfirmToken is the reply that approves a risky command. Anything
// else declines.
const DefaultConfirmToken = "YES"

// ConfirmPrompt asks the user to approve a risky command on the terminal.
// It implements core.Confirmer.
type ConfirmPrompt struct {
	input  io.Reader
	output io.Writer
	token  string
}

// NewConfirmPromptWithIO creates a prompt with the given IO streams and
// approval token. An empty token falls back to the default.
func NewConfirmPromptWithIO(input io.Reader, output io.Writer, token string) *ConfirmPrompt {
	if token == "" {
		token = DefaultConfirmToken
	}
	return &ConfirmPrompt{input: input, output: output, token: token}
}

// Confirm displays the command and the matched rule, then reads one line.
// Only an exact, case-insensitive match of the approval token approves; a
// closed input stream declines.
func (p *ConfirmPrompt) Confirm(command string, check security.CheckResult) bool {
	fmt.Fprintf(p.output, "\n⚠️  This command requires confirmation\n\n")
	fmt.Fprintf(p.output, "Command: %s\n", command)
	if check.Reason != "" {
		fmt.Fprintf(p.output, "Reason:  %s\n", check.Reason)
	}
	fmt.Fprintf(p.output, "\nType '%s' to execute, anything else to cancel: ", p.token)

	scanner := bufio.NewScanner(p.input)
	if !scanner.Scan() {
		fmt.Fprintln(p.output, "✗ Cancelled")
		return false
	}

	reply := strings.TrimSpace(scanner.Text())
	if strings.EqualFold(reply, p.token) {
		fmt.Fprintln(p.output, "✓ Approved")
		return true
	}

	fmt.Fprintln(p.output, "✗ Cancelled")
	return false
}
