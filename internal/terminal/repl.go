package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aryasadawrate19/AINux-Proto/internal/ai"
	"github.com/aryasadawrate19/AINux-Proto/internal/core"
	"github.com/aryasadawrate19/AINux-Proto/internal/platform"
)

// ErrUserExit signals that the user asked to leave the REPL.
var ErrUserExit = errors.New("user requested exit")

// REPL reads natural language requests in a loop and hands them to the
// engine.
type REPL struct {
	engine   *core.Engine
	platform platform.Platform
	input    io.Reader
	output   io.Writer
}

// NewREPL creates a REPL on the given IO streams.
func NewREPL(engine *core.Engine, p platform.Platform, input io.Reader, output io.Writer) *REPL {
	return &REPL{
		engine:   engine,
		platform: p,
		input:    input,
		output:   output,
	}
}

// Run prints the banner and processes lines until exit or EOF.
func (r *REPL) Run(ctx context.Context) error {
	r.displayBanner()

	scanner := bufio.NewScanner(r.input)
	for {
		fmt.Fprint(r.output, "AiNux> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.output, "\n👋 Goodbye!")
			return scanner.Err()
		}

		if err := r.ProcessInput(ctx, scanner.Text()); err != nil {
			if errors.Is(err, ErrUserExit) {
				return nil
			}
			return err
		}
	}
}

// ProcessInput handles one line: built-in REPL commands first, everything
// else goes to the engine. Returns ErrUserExit on an exit command.
func (r *REPL) ProcessInput(ctx context.Context, input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	switch strings.ToLower(trimmed) {
	case "exit", "quit", "q", "bye":
		fmt.Fprintln(r.output, "👋 Goodbye!")
		return ErrUserExit

	case "help", "h", "?":
		r.displayHelp()
		return nil

	case "mode", "info", "status":
		r.displayMode()
		return nil
	}

	_, err := r.engine.Process(ctx, trimmed)
	if err != nil {
		if errors.Is(err, ai.ErrNoCommand) {
			fmt.Fprintf(r.output, "🤔 Sorry, I couldn't understand: '%s'\n", trimmed)
			fmt.Fprintln(r.output, "   Type 'help' to see what I can do.")
			return nil
		}
		fmt.Fprintf(r.output, "❌ Error: %v\n", err)
	}
	return nil
}

func (r *REPL) displayBanner() {
	fmt.Fprintln(r.output, "🤖 AiNux - Natural Language Shell Assistant")
	fmt.Fprintf(r.output, "   Platform: %s | Mode: %s\n", r.platform, r.engine.ResolverName())
	fmt.Fprintln(r.output, "   Type 'help' for examples, 'exit' to quit.")
	fmt.Fprintln(r.output)
}

func (r *REPL) displayHelp() {
	fmt.Fprintln(r.output, `
Available REPL commands:
  help, h, ?           Show this help
  mode, info, status   Show platform and resolver mode
  exit, quit, q, bye   Leave AiNux

Everything else is treated as a request, for example:
  list all files in the current directory
  show running processes
  how much disk space is left
  create directory myproject`)
}

func (r *REPL) displayMode() {
	fmt.Fprintf(r.output, "Platform: %s\n", r.platform)
	fmt.Fprintf(r.output, "Resolver: %s\n", r.engine.ResolverName())
	fmt.Fprintf(r.output, "Timeout:  %s\n", r.engine.Timeout())
}
