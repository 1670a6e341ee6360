package board

import "fmt"

// Symbol identifies which side a marker belongs to
type Symbol uint8

const (
	SymbolO Symbol = iota
	SymbolX
)

func (s Symbol) String() string {
	switch s {
	case SymbolO:
		return "O"
	case SymbolX:
		return "X"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// Marker is a piece standing on a playable cell
// Promoted markers may travel any distance along a diagonal
type Marker struct {
	Symbol   Symbol
	Promoted bool
}

// FocusState drives cell presentation only, never legality
type FocusState uint8

const (
	Unfocused FocusState = iota
	Focused
	PendingMove
)

func (f FocusState) String() string {
	switch f {
	case Unfocused:
		return "unfocused"
	case Focused:
		return "focused"
	case PendingMove:
		return "pending_move"
	default:
		return fmt.Sprintf("FocusState(%d)", uint8(f))
	}
}

// Position addresses a cell, row 0 at the top
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell holds at most one marker; playable is fixed at construction
type Cell struct {
	marker   *Marker
	playable bool
	focus    FocusState
}

// Glyph returns the 3-character label painted for the cell
func (c *Cell) Glyph() string {
	if c.marker == nil {
		return "   "
	}
	return " " + c.marker.Symbol.String() + " "
}

func (c *Cell) removeMarker() *Marker {
	m := c.marker
	c.marker = nil
	return m
}
