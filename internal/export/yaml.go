package export

import (
	"io"

	"github.com/iksnae/braindrain/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports a status in YAML format
type YAMLExporter struct{}

// Export exports a status to YAML format
func (e *YAMLExporter) Export(status *internal.Status, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	if err := enc.Encode(status); err != nil {
		return &internal.ExportError{Format: "yaml", Err: err}
	}
	return nil
}
