package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-checkers/board"
	"github.com/lixenwraith/vi-checkers/input"
)

// cellWidth is the number of screen columns per board cell
const cellWidth = 3

var backgroundColors = map[board.Background]tcell.Color{
	board.BackgroundNone:          tcell.ColorDefault,
	board.BackgroundBrightCyan:    tcell.ColorAqua,
	board.BackgroundBrightGreen:   tcell.ColorLime,
	board.BackgroundBrightMagenta: tcell.ColorFuchsia,
}

// Screen is the tcell backend
type Screen struct {
	screen tcell.Screen
	fini   sync.Once
}

// NewScreen allocates a tcell screen for the controlling terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewScreenWith(s), nil
}

// NewScreenWith wraps an existing screen, e.g. a simulation screen
func NewScreenWith(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

// Fini restores the terminal. Safe to call multiple times
func (s *Screen) Fini() {
	s.fini.Do(s.screen.Fini)
}

// ReadKey blocks until a key event arrives; resizes repaint and keep waiting
func (s *Screen) ReadKey() (int, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return 0, ErrClosed
		case *tcell.EventKey:
			return keyCode(ev), nil
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// keyCode reports navigation keys as scan codes and everything else as
// its character or control code
func keyCode(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.CodeUp
	case tcell.KeyDown:
		return input.CodeDown
	case tcell.KeyLeft:
		return input.CodeLeft
	case tcell.KeyRight:
		return input.CodeRight
	case tcell.KeyEnter:
		return input.CodeEnter
	case tcell.KeyEscape:
		return input.CodeEscape
	case tcell.KeyRune:
		return int(ev.Rune())
	}

	// Control keys carry their ASCII value; the rest have none
	if k := ev.Key(); k < tcell.KeyRune {
		return int(k)
	}
	return input.CodeNone
}

// Paint clears the screen and draws each cell as cellWidth columns
func (s *Screen) Paint(snap board.Snapshot) error {
	s.screen.Clear()

	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			v := snap.At(r, c)
			style := cellStyle(v)
			x := c * cellWidth
			for i, ch := range v.Glyph {
				s.screen.SetContent(x+i, r, ch, nil, style)
			}
		}
	}

	s.screen.Show()
	return nil
}

func cellStyle(v board.CellView) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(backgroundColors[v.Background()]).
		Bold(true)
}
