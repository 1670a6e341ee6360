package board

// Painter clears the output surface and paints one frame
type Painter interface {
	Paint(s Snapshot) error
}

// CellView is the render-facing copy of a cell
type CellView struct {
	Glyph    string
	Playable bool
	Focus    FocusState
	Occupied bool
	Symbol   Symbol
}

// Snapshot is a detached, row-major copy of the grid
type Snapshot struct {
	Rows  int
	Cols  int
	Cells []CellView
}

// Snapshot copies every cell so painters never alias board state
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Rows:  Rows,
		Cols:  Cols,
		Cells: make([]CellView, 0, Rows*Cols),
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			cell := &b.cells[r][c]
			v := CellView{
				Glyph:    cell.Glyph(),
				Playable: cell.playable,
				Focus:    cell.focus,
			}
			if cell.marker != nil {
				v.Occupied = true
				v.Symbol = cell.marker.Symbol
			}
			s.Cells = append(s.Cells, v)
		}
	}
	return s
}

// At returns the view of (r, c); callers iterate within Rows x Cols
func (s Snapshot) At(r, c int) CellView {
	return s.Cells[r*s.Cols+c]
}

// Background names the color a painter uses behind a cell
type Background uint8

const (
	BackgroundNone Background = iota
	BackgroundBrightCyan
	BackgroundBrightGreen
	BackgroundBrightMagenta
)

// Background applies the focus color rule shared by all painters
func (v CellView) Background() Background {
	switch v.Focus {
	case Focused:
		return BackgroundBrightGreen
	case PendingMove:
		return BackgroundBrightMagenta
	default:
		if v.Playable {
			return BackgroundBrightCyan
		}
		return BackgroundNone
	}
}
