// Package output renders command results for terminals, pipes, and machines.
//
// Output adapts to environment:
//   - Terminal: styled text
//   - Piped/Scripted: markdown
//   - JSON: machine-readable
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// OutputMode selects how results are written.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Mode converts a config or flag value to an OutputMode.
// Unknown values fall back to ModeAuto.
func Mode(s string) OutputMode {
	switch OutputMode(strings.ToLower(s)) {
	case ModeText:
		return ModeText
	case ModeMarkdown, "md":
		return ModeMarkdown
	case ModeJSON:
		return ModeJSON
	default:
		return ModeAuto
	}
}

var (
	resultStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	operandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Renderer writes results in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	return &Renderer{out: out, errOut: errOut, mode: mode, isTTY: isTTY}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves ModeAuto: TTY=text, non-TTY=markdown.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Out returns the primary output writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Println writes a plain line regardless of mode.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Warning writes a message to the error stream, styled on a terminal.
func (r *Renderer) Warning(msg string) {
	if r.EffectiveMode() == ModeText {
		msg = errorStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

// Muted styles s as secondary text in text mode.
func (r *Renderer) Muted(s string) string {
	if r.EffectiveMode() == ModeText {
		return mutedStyle.Render(s)
	}
	return s
}
