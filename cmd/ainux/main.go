package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aryasadawrate19/AINux-Proto/internal/platform"
	"github.com/aryasadawrate19/AINux-Proto/internal/storage"
	"github.com/aryasadawrate19/AINux-Proto/internal/terminal"
)

var (
	rootNoLLM   bool
	rootTimeout int
)

var rootCmd = &cobra.Command{
	Use:   "ainux",
	Short: "Natural language shell assistant",
	Long:  "AiNux - talk to your shell in plain language. Requests are turned into commands, checked for safety, and executed with confirmation for anything risky.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := storage.InitConfig()
		return err
	},
	RunE: runREPL,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootNoLLM, "no-llm", false, "resolve with pattern matching only, no LLM calls")
	rootCmd.PersistentFlags().IntVar(&rootTimeout, "timeout", 0, "per-command timeout in seconds (overrides config)")

	rootCmd.AddCommand(getRunCommand())
	rootCmd.AddCommand(getHistoryCommand())
}

func runREPL(cmd *cobra.Command, args []string) error {
	p := platform.Detect()
	engine, err := buildEngine(storage.GetConfig(), p)
	if err != nil {
		return err
	}

	repl := terminal.NewREPL(engine, p, os.Stdin, os.Stdout)
	return repl.Run(context.Background())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
