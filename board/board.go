// Package board holds the checkers grid: cells, markers, movement legality
// and per-cell focus used by painters.
//
// The board is a passive service. It never reads input and never decides
// turn policy; callers pair CanMove with MoveMarker as they see fit.
// Coordinates outside the grid are contract violations and panic.
package board

import (
	"fmt"
	"strings"
)

const (
	Rows = 8
	Cols = 8

	// Rows filled with markers at each edge on a new board
	homeRows = 2
)

// Board is a fixed Rows x Cols grid stored row-major
type Board struct {
	cells [Rows][Cols]Cell
}

// New returns a board with O markers on the playable cells of the two top
// rows and X markers on the playable cells of the two bottom rows
func New() *Board {
	b := &Board{}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			playable := (r+c)%2 == 0
			cell := Cell{playable: playable, focus: Unfocused}
			if playable {
				switch {
				case r < homeRows:
					cell.marker = &Marker{Symbol: SymbolO}
				case r >= Rows-homeRows:
					cell.marker = &Marker{Symbol: SymbolX}
				}
			}
			b.cells[r][c] = cell
		}
	}
	return b
}

// NRow returns the number of rows
func (b *Board) NRow() int { return Rows }

// NCol returns the number of columns
func (b *Board) NCol() int { return Cols }

// InBounds reports whether (r, c) addresses a cell
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < Rows && c >= 0 && c < Cols
}

func (b *Board) cell(r, c int) *Cell {
	if !b.InBounds(r, c) {
		panic(fmt.Sprintf("board: cell (%d,%d) outside %dx%d grid", r, c, Rows, Cols))
	}
	return &b.cells[r][c]
}

// IsPlayable reports whether the cell is a dark square
func (b *Board) IsPlayable(r, c int) bool {
	return b.cell(r, c).playable
}

// HasMarker reports whether the cell holds a marker
func (b *Board) HasMarker(r, c int) bool {
	return b.cell(r, c).marker != nil
}

// MarkerAt returns a copy of the marker at (r, c)
func (b *Board) MarkerAt(r, c int) (Marker, bool) {
	m := b.cell(r, c).marker
	if m == nil {
		return Marker{}, false
	}
	return *m, true
}

// FocusAt returns the presentation state of (r, c)
func (b *Board) FocusAt(r, c int) FocusState {
	return b.cell(r, c).focus
}

// CanMove is the movement legality predicate. The target must be an empty
// playable cell on a strict diagonal from an occupied source, one step away
// unless the marker is promoted. Turn order and symbols are not considered.
func (b *Board) CanMove(from, to Position) bool {
	src := b.cell(from.Row, from.Col)
	dst := b.cell(to.Row, to.Col)

	dr, dc := diffs(from, to)

	if !dst.playable || dst.marker != nil || src.marker == nil || dr != dc {
		return false
	}
	if !src.marker.Promoted && dr+dc > 2 {
		return false
	}
	return true
}

// MoveMarker relocates whatever sits on from (possibly nothing) onto to,
// replacing to's marker slot, and unfocuses from. Legality is the
// caller's concern.
func (b *Board) MoveMarker(from, to Position) {
	src := b.cell(from.Row, from.Col)
	dst := b.cell(to.Row, to.Col)

	src.focus = Unfocused
	dst.marker = src.removeMarker()
}

// Place puts m on a playable cell, replacing any marker there
func (b *Board) Place(pos Position, m Marker) {
	cell := b.cell(pos.Row, pos.Col)
	if !cell.playable {
		panic(fmt.Sprintf("board: cannot place marker on unplayable cell %s", pos))
	}
	cell.marker = &m
}

// Remove clears the marker slot and returns what was there
func (b *Board) Remove(pos Position) (Marker, bool) {
	m := b.cell(pos.Row, pos.Col).removeMarker()
	if m == nil {
		return Marker{}, false
	}
	return *m, true
}

// Focus marks (r, c) as the cursor cell
func (b *Board) Focus(r, c int) {
	b.cell(r, c).focus = Focused
}

// Unfocus clears any focus state on (r, c)
func (b *Board) Unfocus(r, c int) {
	b.cell(r, c).focus = Unfocused
}

// PrepareToMove marks (r, c) as the selected marker awaiting a target
func (b *Board) PrepareToMove(r, c int) {
	b.cell(r, c).focus = PendingMove
}

// Draw hands the current state to p, which clears and repaints the screen
func (b *Board) Draw(p Painter) error {
	return p.Paint(b.Snapshot())
}

// String renders the grid as plain text: '.' unplayable, '_' empty
// playable, otherwise the marker symbol
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			cell := &b.cells[r][c]
			switch {
			case cell.marker != nil:
				sb.WriteString(cell.marker.Symbol.String())
			case cell.playable:
				sb.WriteByte('_')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func diffs(a, b Position) (int, int) {
	return absInt(a.Row - b.Row), absInt(a.Col - b.Col)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
