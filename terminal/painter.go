package terminal

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/vi-checkers/board"
)

// Basic 16-color palette indices
const (
	colorBlack         lipgloss.Color = "0"
	colorBrightGreen   lipgloss.Color = "10"
	colorBrightMagenta lipgloss.Color = "13"
	colorBrightCyan    lipgloss.Color = "14"
)

// ANSIPainter prints frames as styled text; the color profile is detected
// from the writer, so non-terminal writers receive plain glyphs
type ANSIPainter struct {
	w      io.Writer
	styles map[board.Background]lipgloss.Style
}

func NewANSIPainter(w io.Writer) *ANSIPainter {
	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().Bold(true).Foreground(colorBlack)

	return &ANSIPainter{
		w: w,
		styles: map[board.Background]lipgloss.Style{
			board.BackgroundNone:          base,
			board.BackgroundBrightCyan:    base.Background(colorBrightCyan),
			board.BackgroundBrightGreen:   base.Background(colorBrightGreen),
			board.BackgroundBrightMagenta: base.Background(colorBrightMagenta),
		},
	}
}

// Paint writes clear-screen followed by one line per board row
// Lines end in \r\n since output is raw
func (p *ANSIPainter) Paint(s board.Snapshot) error {
	var sb strings.Builder
	sb.Write(csiClear)

	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			v := s.At(r, c)
			sb.WriteString(p.styles[v.Background()].Render(v.Glyph))
		}
		sb.WriteString("\r\n")
	}

	_, err := io.WriteString(p.w, sb.String())
	return err
}
