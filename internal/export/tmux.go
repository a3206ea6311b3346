package export

import (
	"fmt"
	"io"

	"github.com/iksnae/braindrain/internal"
)

var tmuxColors = map[internal.Color]string{
	internal.ColorNormal:  "green",
	internal.ColorWarning: "yellow",
	internal.ColorDanger:  "red",
}

// TmuxExporter writes the indicator using tmux status-line color markup
type TmuxExporter struct{}

// Export writes a single status-line segment. Hidden indicators write nothing.
func (e *TmuxExporter) Export(status *internal.Status, w io.Writer) error {
	ind := status.Indicator
	if !ind.Visible {
		return nil
	}

	var err error
	if color, ok := tmuxColors[ind.Color]; ok {
		_, err = fmt.Fprintf(w, "#[fg=%s]%s#[default]\n", color, ind.Text)
	} else {
		_, err = fmt.Fprintln(w, ind.Text)
	}
	if err != nil {
		return &internal.ExportError{Format: "tmux", Err: err}
	}
	return nil
}
