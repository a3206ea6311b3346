package export

import (
	"fmt"
	"io"

	"github.com/iksnae/braindrain/internal"
)

// Exporter defines the interface for all status output formats
type Exporter interface {
	Export(status *internal.Status, w io.Writer) error
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "text", "":
		return &TextExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "tmux":
		return &TmuxExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json, yaml, tmux)", format)
	}
}
