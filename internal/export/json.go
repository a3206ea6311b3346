package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/braindrain/internal"
)

// JSONExporter exports a status as pretty-printed JSON
type JSONExporter struct{}

// Export exports a status to JSON format
func (e *JSONExporter) Export(status *internal.Status, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(status); err != nil {
		return &internal.ExportError{Format: "json", Err: err}
	}
	return nil
}
