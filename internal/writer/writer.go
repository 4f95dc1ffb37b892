// Package writer persists scraped events as JSON files, one file per
// source URL.
package writer

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"eventscrape/internal/event"
)

// FileWriter writes event batches into an output directory.
type FileWriter struct {
	outputDir string
	mu        sync.Mutex
}

// New creates the output directory if needed.
func New(outputDir string) (*FileWriter, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &FileWriter{outputDir: outputDir}, nil
}

// WriteBatch writes the events scraped from one source URL to a file named
// after the source. Returns the path written.
func (w *FileWriter) WriteBatch(sourceURL string, events []event.Event) (string, error) {
	name, err := filenameFor(sourceURL)
	if err != nil {
		return "", err
	}
	path := filepath.Join(w.outputDir, name)

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding events: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// filenameFor derives a safe filename from a source URL.
func filenameFor(sourceURL string) (string, error) {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return "", fmt.Errorf("invalid source url: %w", err)
	}

	name := u.Hostname()
	if path := strings.Trim(u.Path, "/"); path != "" {
		name += "_" + strings.ReplaceAll(path, "/", "_")
	}
	if name == "" {
		name = "events"
	}
	return name + ".json", nil
}
