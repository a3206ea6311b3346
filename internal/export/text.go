package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/iksnae/braindrain/internal"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
)

// TextExporter writes a human-readable status
type TextExporter struct{}

// Export writes the indicator followed by the selected session's details
func (e *TextExporter) Export(status *internal.Status, w io.Writer) error {
	write := func(label, value string) {
		_, _ = fmt.Fprintf(w, "%s%s\n", labelStyle.Render(label), valueStyle.Render(value))
	}

	if !status.Indicator.Visible {
		_, err := fmt.Fprintln(w, "(indicator hidden)")
		if err != nil {
			return &internal.ExportError{Format: "text", Err: err}
		}
		return nil
	}

	if _, err := fmt.Fprintln(w, internal.FormatIndicator(status.Indicator, true)); err != nil {
		return &internal.ExportError{Format: "text", Err: err}
	}

	write("Workspace", status.Workspace)
	write("Freshness", string(status.State.Freshness))
	if status.State.Band != internal.BandNone {
		write("Severity", string(status.State.Band))
	}

	snap := status.Snapshot
	if snap == nil {
		return nil
	}
	write("Session", snap.SessionID)
	write("Model", snap.Model)
	write("Directory", snap.WorkingDirectory)
	write("Tokens", fmt.Sprintf("%s in / %s out of %s",
		humanize.Comma(snap.TotalInputTokens),
		humanize.Comma(snap.TotalOutputTokens),
		humanize.Comma(snap.ContextWindowSize)))
	write("Updated", humanize.RelTime(snap.GetTimestamp(), status.CheckedAt, "ago", "from now"))
	return nil
}
