package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to a terminal stream. Output to pipes and
// files is plain text.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer writing to w with the default theme.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		styles: NewStyles(lipgloss.NewRenderer(w), DefaultTheme),
	}
}

// Entry prints an indented "key: value" line.
func (p *Printer) Entry(key, value string) error {
	_, err := fmt.Fprintf(p.w, "  %s: %s\n", p.styles.Label.Render(key), value)
	return err
}

// Error prints an error message prefixed with "Error:".
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.w, "%s "+format+"\n", append([]any{p.styles.Error.Render("Error:")}, args...)...)
}

// Hint prints a dimmed help line.
func (p *Printer) Hint(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.Hint.Render(fmt.Sprintf(format, args...)))
}

// NewLogger returns a text logger writing to w, at debug level when debug
// is set and at warn level otherwise.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
