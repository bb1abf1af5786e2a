package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aryasadawrate19/AINux-Proto/internal/ai"
	"github.com/aryasadawrate19/AINux-Proto/internal/ai/gemini"
	"github.com/aryasadawrate19/AINux-Proto/internal/ai/pattern"
	"github.com/aryasadawrate19/AINux-Proto/internal/core"
	"github.com/aryasadawrate19/AINux-Proto/internal/core/security"
	"github.com/aryasadawrate19/AINux-Proto/internal/platform"
	"github.com/aryasadawrate19/AINux-Proto/internal/storage"
	"github.com/aryasadawrate19/AINux-Proto/internal/terminal"
)

const summaryWidth = 80

// buildEngine wires the resolver chain, executor, history and summarizer
// from config and flags.
func buildEngine(cfg *storage.Config, p platform.Platform) (*core.Engine, error) {
	timeout := time.Duration(cfg.Executor.Timeout) * time.Second
	if rootTimeout > 0 {
		timeout = time.Duration(rootTimeout) * time.Second
	}
	if timeout <= 0 {
		timeout = core.DefaultTimeout
	}

	confirmer := terminal.NewConfirmPromptWithIO(os.Stdin, os.Stdout, cfg.Executor.ConfirmToken)
	executor := core.NewExecutor(security.NewClassifier(), confirmer, timeout)

	resolver, llm := buildResolver(cfg, p)
	engine := core.NewEngine(resolver, executor, os.Stdout)

	if cfg.History.Enabled {
		configDir, err := storage.GetConfigDir()
		if err != nil {
			return nil, err
		}
		history, err := storage.OpenHistory(configDir, cfg.History.MaxRecords)
		if err != nil {
			return nil, fmt.Errorf("failed to open history: %w", err)
		}
		engine.SetRecorder(history)
	}

	if llm != nil && cfg.LLM.Summarize {
		renderer, err := terminal.NewRenderer(summaryWidth)
		if err == nil {
			engine.SetSummarizer(llm, renderer)
		}
	}

	return engine, nil
}

// buildResolver returns the resolver chain. The pattern resolver is always
// present; the LLM goes first when configured, so an unreachable API
// degrades to pattern matching instead of failing the request.
func buildResolver(cfg *storage.Config, p platform.Platform) (ai.Resolver, *gemini.Client) {
	patterns := pattern.NewResolver(p, platform.DefaultTable())

	if rootNoLLM || !cfg.LLM.Enabled || cfg.LLM.APIKey == "" {
		return patterns, nil
	}

	llm := gemini.NewClient(gemini.Config{
		APIKey:          cfg.LLM.APIKey,
		Model:           cfg.LLM.Model,
		BaseURL:         cfg.LLM.BaseURL,
		Temperature:     cfg.LLM.Temperature,
		MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		MaxRetries:      cfg.LLM.MaxRetries,
		Timeout:         time.Duration(cfg.LLM.Timeout) * time.Second,
	}, p)

	return ai.Chain{llm, patterns}, llm
}
