package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aryasadawrate19/AINux-Proto/internal/ai"
	"github.com/aryasadawrate19/AINux-Proto/internal/platform"
	"github.com/aryasadawrate19/AINux-Proto/internal/storage"
)

// getRunCommand returns the run command.
func getRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <request>",
		Short: "Execute one natural language request and exit",
		Long: `Resolve one request to a command, execute it, and exit.

Risky commands still ask for confirmation, exactly like the REPL.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runOnce,
	}
}

func runOnce(cmd *cobra.Command, args []string) error {
	p := platform.Detect()
	engine, err := buildEngine(storage.GetConfig(), p)
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	result, err := engine.Process(context.Background(), input)
	if err != nil {
		if errors.Is(err, ai.ErrNoCommand) {
			return fmt.Errorf("could not understand: '%s'", input)
		}
		return err
	}

	if !result.Success {
		return fmt.Errorf("command did not succeed")
	}
	return nil
}
