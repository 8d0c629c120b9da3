package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
	"gopkg.in/yaml.v3"
)

// SnapshotWriterAdapter writes inspection reports to disk
type SnapshotWriterAdapter struct {
	workDir string
}

// NewSnapshotWriterAdapter creates a new snapshot writer adapter
func NewSnapshotWriterAdapter(cfg *config.RuntimeConfig) *SnapshotWriterAdapter {
	return &SnapshotWriterAdapter{workDir: cfg.WorkDir}
}

// WriteSnapshot encodes report as JSON, or as YAML when path ends in .yaml
// or .yml, and replaces path atomically
func (w *SnapshotWriterAdapter) WriteSnapshot(_ context.Context, path string, report any) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.workDir, path)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// Go through the JSON form so both files share one schema
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to convert snapshot: %w", err)
		}
		if data, err = yaml.Marshal(doc); err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
	default:
		data = append(data, '\n')
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	// Write to temp file first
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.SnapshotWriter = (*SnapshotWriterAdapter)(nil)
