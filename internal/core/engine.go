package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aryasadawrate19/AINux-Proto/internal/ai"
)

const maxOutputLines = 20

// Recorder logs processed requests. Implementations must tolerate being
// called for failed executions.
type Recorder interface {
	Record(input, resolver string, result *Result) error
}

// Summarizer produces a short explanation of a command's output.
type Summarizer interface {
	Summarize(ctx context.Context, command, output string) (string, error)
}

// OutputRenderer prettifies markdown for terminal display.
type OutputRenderer interface {
	Render(markdown string) (string, error)
}

// Engine orchestrates a request from natural language to executed command:
// resolve, execute (the executor gates safety), record, summarize.
type Engine struct {
	resolver   ai.Resolver
	executor   *Executor
	recorder   Recorder
	summarizer Summarizer
	renderer   OutputRenderer
	out        io.Writer
}

// NewEngine creates an engine. Recorder, summarizer and renderer are
// optional.
func NewEngine(resolver ai.Resolver, executor *Executor, out io.Writer) *Engine {
	return &Engine{
		resolver: resolver,
		executor: executor,
		out:      out,
	}
}

// SetRecorder attaches a history recorder.
func (e *Engine) SetRecorder(recorder Recorder) {
	e.recorder = recorder
}

// SetSummarizer attaches an output summarizer.
func (e *Engine) SetSummarizer(summarizer Summarizer, renderer OutputRenderer) {
	e.summarizer = summarizer
	e.renderer = renderer
}

// ResolverName names the active resolver for the mode display.
func (e *Engine) ResolverName() string {
	return resolverName(e.resolver)
}

// Timeout reports the executor's per-command timeout.
func (e *Engine) Timeout() time.Duration {
	return e.executor.Timeout()
}

// Process handles one user request end to end and returns the execution
// result. A resolver miss returns ai.ErrNoCommand; the caller decides how
// to phrase that to the user.
func (e *Engine) Process(ctx context.Context, input string) (*Result, error) {
	command, err := e.resolver.Resolve(ctx, input)
	if err != nil {
		if errors.Is(err, ai.ErrNoCommand) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve input: %w", err)
	}

	fmt.Fprintf(e.out, "🔧 Generated command: %s\n", command)

	result, err := e.executor.Execute(ctx, command)
	if err != nil {
		return nil, err
	}

	e.displayResult(result)

	if e.recorder != nil {
		if recErr := e.recorder.Record(input, e.ResolverName(), result); recErr != nil {
			fmt.Fprintf(e.out, "⚠️  Could not record history: %v\n", recErr)
		}
	}

	if result.Success && e.summarizer != nil && result.Output != "" {
		e.displaySummary(ctx, result)
	}

	return result, nil
}

func (e *Engine) displayResult(result *Result) {
	if result.Output != "" {
		e.displayOutput(result.Output)
	}
	if result.Success {
		fmt.Fprintln(e.out, "✅ Done")
		return
	}
	if result.Error != "" {
		fmt.Fprintf(e.out, "❌ %s\n", result.Error)
	}
	if result.ExitCode != nil && *result.ExitCode != 0 {
		fmt.Fprintf(e.out, "📊 Command failed (exit code %d)\n", *result.ExitCode)
	}
}

// displayOutput shows command output with truncation.
func (e *Engine) displayOutput(output string) {
	lines := strings.Split(output, "\n")
	if len(lines) > maxOutputLines {
		fmt.Fprintf(e.out, "📄 Output (%d lines, showing first %d):\n", len(lines), maxOutputLines)
		for _, line := range lines[:maxOutputLines] {
			fmt.Fprintf(e.out, "  %s\n", line)
		}
		fmt.Fprintf(e.out, "  ... (%d more lines)\n", len(lines)-maxOutputLines)
		return
	}
	fmt.Fprintf(e.out, "📄 Output:\n%s\n", output)
}

func (e *Engine) displaySummary(ctx context.Context, result *Result) {
	summary, err := e.summarizer.Summarize(ctx, result.Command, result.Output)
	if err != nil || summary == "" {
		return
	}
	if e.renderer != nil {
		if rendered, err := e.renderer.Render(summary); err == nil {
			summary = rendered
		}
	}
	fmt.Fprintf(e.out, "💡 %s\n", strings.TrimRight(summary, "\n"))
}

func resolverName(r ai.Resolver) string {
	if named, ok := r.(ai.Name); ok {
		return named.Name()
	}
	return "unknown"
}
