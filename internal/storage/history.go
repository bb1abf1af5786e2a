package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/aryasadawrate19/AINux-Proto/internal/core"
)

const (
	HistoryFileName   = "history.json"
	DefaultMaxRecords = 200

	// maxOutputBytes caps the stored output per record so one chatty
	// command cannot bloat the log.
	maxOutputBytes = 4096
)

// Record is one executed request in the history log.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Input     string    `json:"input"`
	Resolver  string    `json:"resolver"`
	Command   string    `json:"command"`
	Success   bool      `json:"success"`
	Output    string    `json:"output,omitempty"`
	Error     string    `json:"error,omitempty"`
	ExitCode  *int      `json:"exit_code,omitempty"`
}

// History is a JSON-backed log of executed requests, newest last, trimmed to
// a fixed number of records.
type History struct {
	path       string
	maxRecords int
	records    []Record
}

// OpenHistory loads the history log from dir, creating an empty one if no
// file exists yet.
func OpenHistory(dir string, maxRecords int) (*History, error) {
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	h := &History{
		path:       filepath.Join(dir, HistoryFileName),
		maxRecords: maxRecords,
	}

	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if err := json.Unmarshal(data, &h.records); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	return h, nil
}

// Add appends an execution result to the log and saves it.
func (h *History) Add(input, resolver string, result *core.Result) (Record, error) {
	output := result.Output
	if len(output) > maxOutputBytes {
		output = output[:maxOutputBytes] + "\n... (truncated)"
	}

	record := Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Input:     input,
		Resolver:  resolver,
		Command:   result.Command,
		Success:   result.Success,
		Output:    output,
		Error:     result.Error,
		ExitCode:  result.ExitCode,
	}

	h.records = append(h.records, record)
	if len(h.records) > h.maxRecords {
		h.records = h.records[len(h.records)-h.maxRecords:]
	}

	return record, h.save()
}

// Record implements the engine's recorder contract.
func (h *History) Record(input, resolver string, result *core.Result) error {
	_, err := h.Add(input, resolver, result)
	return err
}

// Records returns the logged records, oldest first.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of logged records.
func (h *History) Len() int {
	return len(h.records)
}

// Clear removes all records and deletes the log file.
func (h *History) Clear() error {
	h.records = nil
	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove history: %w", err)
	}
	return nil
}

func (h *History) save() error {
	data, err := json.MarshalIndent(h.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(h.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
