package internal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	tooltipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
)

// bandStyles maps the host palette onto terminal colors
var bandStyles = map[Color]lipgloss.Style{
	ColorNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	ColorWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	ColorDanger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// StyleFor returns the terminal style for a palette color
func StyleFor(c Color) lipgloss.Style {
	if style, ok := bandStyles[c]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// TerminalRenderer draws the indicator as a single terminal line. On a TTY the
// line is redrawn in place; otherwise each tick appends a line.
type TerminalRenderer struct {
	w           io.Writer
	inPlace     bool
	showTooltip bool

	mu   sync.Mutex
	line string // last line drawn in place
}

// NewTerminalRenderer creates a renderer writing to w
func NewTerminalRenderer(w io.Writer, showTooltip bool) *TerminalRenderer {
	return &TerminalRenderer{
		w:           w,
		inPlace:     IsTerminal(w),
		showTooltip: showTooltip,
	}
}

// Render implements Renderer
func (r *TerminalRenderer) Render(ind Indicator) {
	line := FormatIndicator(ind, r.showTooltip)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inPlace {
		r.line = line
		_, _ = fmt.Fprintf(r.w, "\r\033[K%s", line)
		return
	}
	if !ind.Visible {
		return
	}
	_, _ = fmt.Fprintln(r.w, line)
}

// LogWriter returns a writer for log output sharing the renderer's terminal.
// Each write clears the indicator line, prints the log text, and redraws the
// indicator below it.
func (r *TerminalRenderer) LogWriter() io.Writer {
	return terminalLogWriter{r}
}

type terminalLogWriter struct {
	r *TerminalRenderer
}

func (lw terminalLogWriter) Write(p []byte) (int, error) {
	r := lw.r
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintf(r.w, "\r\033[K%s", p); err != nil {
		return 0, err
	}
	if _, err := io.WriteString(r.w, r.line); err != nil {
		return 0, err
	}
	return len(p), nil
}

// FormatIndicator renders ind as styled text; hidden indicators render empty
func FormatIndicator(ind Indicator, withTooltip bool) string {
	if !ind.Visible {
		return ""
	}
	line := StyleFor(ind.Color).Render(ind.Text)
	if withTooltip && ind.Tooltip != "" {
		line += "  " + tooltipStyle.Render(ind.Tooltip)
	}
	return line
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	if IsTerminal(os.Stdout) {
		fmt.Printf("%s %s\n", successStyle.Render("✓"), message)
	} else {
		fmt.Println(message)
	}
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	if IsTerminal(os.Stdout) {
		fmt.Printf("%s %s\n", infoStyle.Render("ℹ"), message)
	} else {
		fmt.Println(message)
	}
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	if IsTerminal(os.Stderr) {
		fmt.Fprintf(os.Stderr, "%s %s\n", warningStyle.Render("⚠"), message)
	} else {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", message)
	}
}
