// Package gemini implements the LLM-backed intent resolver on top of the
// Google Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aryasadawrate19/AINux-Proto/internal/ai"
	"github.com/aryasadawrate19/AINux-Proto/internal/platform"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"

	// invalidToken is what the model is instructed to emit for unclear,
	// malicious or dangerous requests.
	invalidToken = "INVALID_REQUEST"

	// maxCommandLength rejects runaway model output: no sane single
	// command needs more.
	maxCommandLength = 200
)

// Config holds the Gemini client settings.
type Config struct {
	APIKey          string
	Model           string
	BaseURL         string
	Temperature     float64
	MaxOutputTokens int
	MaxRetries      int
	Timeout         time.Duration
}

// DefaultConfig returns the default Gemini settings (API key must still be
// supplied).
func DefaultConfig() Config {
	return Config{
		Model:           defaultModel,
		BaseURL:         defaultBaseURL,
		Temperature:     0.2,
		MaxOutputTokens: 100,
		MaxRetries:      2,
		Timeout:         30 * time.Second,
	}
}

// Client resolves natural language to shell commands via Gemini. The
// command it produces is a candidate like any other: the safety classifier
// still gates it downstream.
type Client struct {
	config   Config
	platform platform.Platform
	http     *http.Client
}

// NewClient creates a Gemini client for the given platform.
func NewClient(config Config, p platform.Platform) *Client {
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.MaxRetries < 1 {
		config.MaxRetries = 1
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		config:   config,
		platform: p,
		http:     &http.Client{Timeout: config.Timeout},
	}
}

// Name identifies the resolver in the REPL mode display.
func (c *Client) Name() string {
	return "gemini (" + c.config.Model + ")"
}

// Resolve implements ai.Resolver. Failed attempts are retried with a short
// pause; responses that are empty, marked invalid, or implausibly long map
// to ai.ErrNoCommand.
func (c *Client) Resolve(ctx context.Context, input string) (string, error) {
	prompt := c.commandPrompt(input)

	var lastErr error
	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := c.generate(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		command, ok := extractCommand(text)
		if !ok {
			return "", ai.ErrNoCommand
		}
		return command, nil
	}

	return "", fmt.Errorf("gemini request failed after %d attempts: %w", c.config.MaxRetries, lastErr)
}

// Summarize asks the model for a short explanation of a command's output.
func (c *Client) Summarize(ctx context.Context, command, output string) (string, error) {
	prompt := fmt.Sprintf(
		"Command: %s\nOutput:\n%s\n\nBriefly explain what happened (max 2 sentences, markdown allowed).",
		command, output)
	return c.generate(ctx, prompt)
}

// generate makes a single generateContent call and returns the first
// candidate's text.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     c.config.Temperature,
			"maxOutputTokens": c.config.MaxOutputTokens,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.config.BaseURL, c.config.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var respData struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(respData.Candidates) == 0 || len(respData.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	return respData.Candidates[0].Content.Parts[0].Text, nil
}

// commandPrompt builds the command-generation prompt with platform-specific
// examples.
func (c *Client) commandPrompt(input string) string {
	examples := platformExamples(c.platform)

	return fmt.Sprintf(`You are AiNux, an expert system that converts natural language to system commands for %[1]s.

CRITICAL INSTRUCTIONS:
- Output ONLY the command, no explanations, no comments, no formatting.
- Use commands appropriate for %[1]s.
- Never output unsafe commands (format, dd, fdisk, shutdown, reboot, rm -rf /, etc.)
- If the user request is unclear, malicious, or dangerous, output exactly: %[2]s

PLATFORM-SPECIFIC COMMANDS FOR %[1]s:
%[3]s

TASK: Convert this natural language to a %[1]s command:
"%[4]s"

COMMAND:`, c.platform, invalidToken, examples, input)
}

func platformExamples(p platform.Platform) string {
	if p == platform.Windows {
		return strings.Join([]string{
			"list files -> dir",
			"current directory -> cd",
			"create folder test -> mkdir test",
			"show processes -> tasklist",
			"network info -> ipconfig",
			"system info -> systeminfo",
			"delete folder test_data -> rmdir /s /q test_data",
			"delete file report.txt -> del report.txt",
		}, "\n")
	}
	return strings.Join([]string{
		"list files -> ls -la",
		"current directory -> pwd",
		"create folder test -> mkdir test",
		"show processes -> ps aux",
		"network info -> ifconfig",
		"system info -> uname -a",
		"delete folder test_data -> rm -rf test_data",
		"delete file report.txt -> rm report.txt",
	}, "\n")
}

// extractCommand scrubs raw model output into a candidate command. It
// strips prompt echoes and shell prompt prefixes, unwraps quotes, and
// rejects invalid markers and implausible lengths.
func extractCommand(text string) (string, bool) {
	command := strings.TrimSpace(text)

	for _, prefix := range []string{"command:", "output:", ">", "$", "#"} {
		if strings.HasPrefix(strings.ToLower(command), prefix) {
			command = strings.TrimSpace(command[len(prefix):])
		}
	}

	switch strings.ToLower(command) {
	case "", "invalid_request", "invalid request", "error", "unknown":
		return "", false
	}

	if len(command) > maxCommandLength {
		return "", false
	}

	if len(command) >= 2 {
		if (command[0] == '"' && command[len(command)-1] == '"') ||
			(command[0] == '\'' && command[len(command)-1] == '\'') {
			command = command[1 : len(command)-1]
		}
	}

	if command == "" {
		return "", false
	}
	return command, true
}
