// Package game runs the pick-then-place interaction over a board.
//
// Each turn is one atomic read-decide-mutate-render cycle. The state
// machine never terminates the process: an exit key surfaces as TurnExit
// and the driver decides what to do with it.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-checkers/board"
	"github.com/lixenwraith/vi-checkers/input"
)

// ErrNoInput wraps key reader failures; there is no way to continue without input
var ErrNoInput = errors.New("no input")

// KeyReader blocks until one raw key code is available
type KeyReader interface {
	ReadKey() (int, error)
}

// Option configures a Game
type Option func(*Game)

// WithKeyTable replaces the default code -> action bindings
func WithKeyTable(kt *input.KeyTable) Option {
	return func(g *Game) {
		if kt != nil {
			g.keys = kt
		}
	}
}

// WithStrictMoves makes the move step also require board.CanMove.
// Off by default: any empty playable target is accepted.
func WithStrictMoves(strict bool) Option {
	return func(g *Game) {
		g.strictMoves = strict
	}
}

// Game owns the board, the cursor and the interaction phase
type Game struct {
	board   *board.Board
	painter board.Painter
	keys    *input.KeyTable

	cursor board.Position
	phase  Phase

	strictMoves bool
}

// New builds the initial board, focuses the bottom-left cell and draws once
func New(p board.Painter, opts ...Option) (*Game, error) {
	if p == nil {
		return nil, errors.New("game: nil painter")
	}

	b := board.New()
	g := &Game{
		board:   b,
		painter: p,
		keys:    input.DefaultKeyTable(),
		cursor:  board.Position{Row: b.NRow() - 1, Col: 0},
		phase:   SelectionPhase(),
	}
	for _, opt := range opts {
		opt(g)
	}

	b.Focus(g.cursor.Row, g.cursor.Col)
	if err := b.Draw(p); err != nil {
		return nil, fmt.Errorf("initial draw: %w", err)
	}
	return g, nil
}

// Board returns the live board; callers must not mutate it mid-turn
func (g *Game) Board() *board.Board { return g.board }

// Cursor returns the focused position
func (g *Game) Cursor() board.Position { return g.cursor }

// Phase returns the current interaction phase
func (g *Game) Phase() Phase { return g.phase }

// NextTurn reads one key from r and plays it
func (g *Game) NextTurn(r KeyReader) (Outcome, error) {
	code, err := r.ReadKey()
	if err != nil {
		return Outcome{}, fmt.Errorf("read key: %w: %w", ErrNoInput, err)
	}
	return g.Step(g.keys.Lookup(code))
}

// Step plays one turn with an already decoded action
func (g *Game) Step(a input.Action) (Outcome, error) {
	old := g.cursor
	out := Outcome{Action: a, Result: TurnContinue, From: old, To: old}

	if a == input.ActionExit {
		out.Result = TurnExit
		return out, nil
	}

	next := g.clamp(old, a)

	switch {
	case a.IsMotion():
		if next != old {
			out.Event = EventCursorMoved
			out.To = next
		}
	case a == input.ActionEnter:
		g.enter(&out)
	default:
		out.Result = TurnIgnored
	}

	// Focus is applied last so the cursor cell wins over PendingMove
	g.board.Unfocus(old.Row, old.Col)
	if sel, ok := g.phase.Selected(); ok {
		g.board.PrepareToMove(sel.Row, sel.Col)
	}
	g.board.Focus(next.Row, next.Col)
	g.cursor = next

	if err := g.board.Draw(g.painter); err != nil {
		return out, fmt.Errorf("draw: %w", err)
	}
	return out, nil
}

// enter dispatches on the phase using the current (pre-move) cursor
func (g *Game) enter(out *Outcome) {
	pos := g.cursor

	sel, waitingForTarget := g.phase.Selected()
	if !waitingForTarget {
		if !g.board.HasMarker(pos.Row, pos.Col) {
			out.Event = EventRejected
			return
		}
		g.phase = MoveTargetPhase(pos)
		out.Event = EventSelected
		return
	}

	if !g.board.IsPlayable(pos.Row, pos.Col) || g.board.HasMarker(pos.Row, pos.Col) {
		out.Event = EventRejected
		return
	}
	if g.strictMoves && !g.board.CanMove(sel, pos) {
		out.Event = EventRejected
		return
	}

	g.board.MoveMarker(sel, pos)
	g.phase = SelectionPhase()
	out.Event = EventMoved
	out.From = sel
	out.To = pos
}

// clamp applies a directional action without wrapping at the edges
func (g *Game) clamp(p board.Position, a input.Action) board.Position {
	dr, dc := a.Delta()
	next := board.Position{Row: p.Row + dr, Col: p.Col + dc}
	if !g.board.InBounds(next.Row, next.Col) {
		return p
	}
	return next
}

// Run plays turns until an exit action (nil) or a read/draw failure.
// onTurn, when set, observes every outcome including the exit.
// ctx is checked between turns; a blocked read is not interrupted.
func (g *Game) Run(ctx context.Context, r KeyReader, onTurn func(Outcome)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := g.NextTurn(r)
		if err != nil {
			return err
		}
		if onTurn != nil {
			onTurn(out)
		}
		if out.Result == TurnExit {
			return nil
		}
	}
}
