package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-checkers/board"
	"github.com/lixenwraith/vi-checkers/input"
)

type recordingPainter struct {
	frames []board.Snapshot
	err    error
}

func (p *recordingPainter) Paint(s board.Snapshot) error {
	if p.err != nil {
		return p.err
	}
	p.frames = append(p.frames, s)
	return nil
}

type scriptedReader struct {
	codes []int
	err   error
}

func (r *scriptedReader) ReadKey() (int, error) {
	if len(r.codes) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, errors.New("script exhausted")
	}
	code := r.codes[0]
	r.codes = r.codes[1:]
	return code, nil
}

func newTestGame(t *testing.T, opts ...Option) (*Game, *recordingPainter) {
	t.Helper()
	p := &recordingPainter{}
	g, err := New(p, opts...)
	require.NoError(t, err)
	return g, p
}

func step(t *testing.T, g *Game, actions ...input.Action) Outcome {
	t.Helper()
	var out Outcome
	for _, a := range actions {
		var err error
		out, err = g.Step(a)
		require.NoError(t, err)
	}
	return out
}

// assertFocusInvariants checks that only the cursor is focused and only the
// selection (when not under the cursor) is pending
func assertFocusInvariants(t *testing.T, g *Game) {
	t.Helper()
	b := g.Board()
	sel, selecting := g.Phase().Selected()
	focused := 0
	for r := 0; r < b.NRow(); r++ {
		for c := 0; c < b.NCol(); c++ {
			pos := board.Position{Row: r, Col: c}
			switch b.FocusAt(r, c) {
			case board.Focused:
				focused++
				assert.Equal(t, g.Cursor(), pos)
			case board.PendingMove:
				require.True(t, selecting, "pending cell %s without selection", pos)
				assert.Equal(t, sel, pos)
			}
		}
	}
	assert.Equal(t, 1, focused)
}

func TestNew_InitialState(t *testing.T) {
	g, p := newTestGame(t)

	assert.Equal(t, board.Position{Row: 7, Col: 0}, g.Cursor())
	assert.Equal(t, WaitingForMarkerSelection, g.Phase().Kind())
	assert.Equal(t, board.Focused, g.Board().FocusAt(7, 0))
	require.Len(t, p.frames, 1)
	assert.Equal(t, board.Focused, p.frames[0].At(7, 0).Focus)
	assertFocusInvariants(t, g)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	drawErr := errors.New("no tty")
	_, err = New(&recordingPainter{err: drawErr})
	require.ErrorIs(t, err, drawErr)
}

func TestStep_CursorClampsAtEdges(t *testing.T) {
	g, _ := newTestGame(t)

	// Bottom-left corner: down and left stay put
	out := step(t, g, input.ActionMoveDown)
	assert.Equal(t, EventNone, out.Event)
	assert.Equal(t, board.Position{Row: 7, Col: 0}, g.Cursor())
	step(t, g, input.ActionMoveLeft)
	assert.Equal(t, board.Position{Row: 7, Col: 0}, g.Cursor())

	for i := 0; i < 7; i++ {
		step(t, g, input.ActionMoveUp)
	}
	assert.Equal(t, board.Position{Row: 0, Col: 0}, g.Cursor())

	// Top-left: up does not wrap
	out = step(t, g, input.ActionMoveUp)
	assert.Equal(t, board.Position{Row: 0, Col: 0}, g.Cursor())
	assert.Equal(t, TurnContinue, out.Result)
	assert.Equal(t, EventNone, out.Event)

	for i := 0; i < 10; i++ {
		step(t, g, input.ActionMoveRight)
	}
	assert.Equal(t, board.Position{Row: 0, Col: 7}, g.Cursor())
	assertFocusInvariants(t, g)
}

func TestStep_CursorMovedEvent(t *testing.T) {
	g, _ := newTestGame(t)

	out := step(t, g, input.ActionMoveRight)
	assert.Equal(t, EventCursorMoved, out.Event)
	assert.Equal(t, board.Position{Row: 7, Col: 0}, out.From)
	assert.Equal(t, board.Position{Row: 7, Col: 1}, out.To)
	assert.Equal(t, board.Unfocused, g.Board().FocusAt(7, 0))
	assert.Equal(t, board.Focused, g.Board().FocusAt(7, 1))
}

func TestStep_EnterOnEmptyUnplayableCorner(t *testing.T) {
	g, _ := newTestGame(t)
	before := g.Board().String()

	// (7,0) is a light square under the parity rule and holds nothing
	out := step(t, g, input.ActionEnter)

	assert.Equal(t, EventRejected, out.Event)
	assert.Equal(t, WaitingForMarkerSelection, g.Phase().Kind())
	assert.Equal(t, before, g.Board().String())
}

func TestStep_SelectThenMove(t *testing.T) {
	g, p := newTestGame(t)

	step(t, g, input.ActionMoveUp)
	require.Equal(t, board.Position{Row: 6, Col: 0}, g.Cursor())

	out := step(t, g, input.ActionEnter)
	assert.Equal(t, EventSelected, out.Event)
	assert.Equal(t, board.Position{Row: 6, Col: 0}, out.From)
	sel, ok := g.Phase().Selected()
	require.True(t, ok)
	assert.Equal(t, board.Position{Row: 6, Col: 0}, sel)
	// Cursor still sits on the selection, focus wins
	assert.Equal(t, board.Focused, g.Board().FocusAt(6, 0))
	assertFocusInvariants(t, g)

	step(t, g, input.ActionMoveUp)
	assert.Equal(t, board.PendingMove, g.Board().FocusAt(6, 0))
	assert.Equal(t, board.PendingMove, p.frames[len(p.frames)-1].At(6, 0).Focus)
	assertFocusInvariants(t, g)

	step(t, g, input.ActionMoveRight)
	require.Equal(t, board.Position{Row: 5, Col: 1}, g.Cursor())

	out = step(t, g, input.ActionEnter)
	assert.Equal(t, EventMoved, out.Event)
	assert.Equal(t, board.Position{Row: 6, Col: 0}, out.From)
	assert.Equal(t, board.Position{Row: 5, Col: 1}, out.To)

	assert.False(t, g.Board().HasMarker(6, 0))
	m, ok := g.Board().MarkerAt(5, 1)
	require.True(t, ok)
	assert.Equal(t, board.Marker{Symbol: board.SymbolX}, m)

	assert.Equal(t, WaitingForMarkerSelection, g.Phase().Kind())
	_, ok = g.Phase().Selected()
	assert.False(t, ok)
	assert.Equal(t, board.Unfocused, g.Board().FocusAt(6, 0))
	assertFocusInvariants(t, g)
}

func TestStep_MoveTargetRejected(t *testing.T) {
	tests := []struct {
		name   string
		toward []input.Action
	}{
		{
			name:   "occupied target",
			toward: []input.Action{input.ActionMoveDown, input.ActionMoveRight},
		},
		{
			name:   "unplayable target",
			toward: []input.Action{input.ActionMoveUp},
		},
		{
			name:   "selected cell itself",
			toward: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			step(t, g, input.ActionMoveUp, input.ActionEnter)
			before := g.Board().String()

			step(t, g, tt.toward...)
			out := step(t, g, input.ActionEnter)

			assert.Equal(t, EventRejected, out.Event)
			assert.Equal(t, WaitingForMoveTarget, g.Phase().Kind())
			assert.Equal(t, before, g.Board().String())
			assertFocusInvariants(t, g)
		})
	}
}

func TestStep_MoveIgnoresDiagonalRuleByDefault(t *testing.T) {
	g, _ := newTestGame(t)

	// Select (6,0) then target (4,2): empty and playable, two steps away
	step(t, g, input.ActionMoveUp, input.ActionEnter)
	step(t, g, input.ActionMoveUp, input.ActionMoveUp, input.ActionMoveRight, input.ActionMoveRight)
	require.Equal(t, board.Position{Row: 4, Col: 2}, g.Cursor())
	require.False(t, g.Board().CanMove(board.Position{Row: 6, Col: 0}, board.Position{Row: 4, Col: 2}))

	out := step(t, g, input.ActionEnter)

	assert.Equal(t, EventMoved, out.Event)
	assert.True(t, g.Board().HasMarker(4, 2))
	assert.False(t, g.Board().HasMarker(6, 0))
}

func TestStep_StrictMovesRequireCanMove(t *testing.T) {
	g, _ := newTestGame(t, WithStrictMoves(true))

	step(t, g, input.ActionMoveUp, input.ActionEnter)
	step(t, g, input.ActionMoveUp, input.ActionMoveUp, input.ActionMoveRight, input.ActionMoveRight)

	out := step(t, g, input.ActionEnter)
	assert.Equal(t, EventRejected, out.Event)
	assert.Equal(t, WaitingForMoveTarget, g.Phase().Kind())
	assert.True(t, g.Board().HasMarker(6, 0))

	// One legal diagonal step still works
	step(t, g, input.ActionMoveDown, input.ActionMoveLeft)
	require.Equal(t, board.Position{Row: 5, Col: 1}, g.Cursor())
	out = step(t, g, input.ActionEnter)
	assert.Equal(t, EventMoved, out.Event)
	assert.True(t, g.Board().HasMarker(5, 1))
}

func TestStep_ExitLeavesStateUntouched(t *testing.T) {
	for _, selecting := range []bool{false, true} {
		g, p := newTestGame(t)
		if selecting {
			step(t, g, input.ActionMoveUp, input.ActionEnter)
		}
		frames := len(p.frames)
		before := g.Board().String()
		phase := g.Phase()
		cursor := g.Cursor()

		out := step(t, g, input.ActionExit)

		assert.Equal(t, TurnExit, out.Result)
		assert.Len(t, p.frames, frames, "exit must not redraw")
		assert.Equal(t, before, g.Board().String())
		assert.Equal(t, phase, g.Phase())
		assert.Equal(t, cursor, g.Cursor())
	}
}

func TestStep_InvalidIsIgnored(t *testing.T) {
	g, p := newTestGame(t)
	frames := len(p.frames)

	out := step(t, g, input.ActionInvalid)

	assert.Equal(t, TurnIgnored, out.Result)
	assert.Equal(t, EventNone, out.Event)
	assert.Equal(t, board.Position{Row: 7, Col: 0}, g.Cursor())
	assert.Len(t, p.frames, frames+1)
}

func TestStep_DrawFailure(t *testing.T) {
	g, p := newTestGame(t)
	drawErr := errors.New("screen gone")
	p.err = drawErr

	_, err := g.Step(input.ActionMoveRight)
	require.ErrorIs(t, err, drawErr)
}

func TestNextTurn_MapsRawCodes(t *testing.T) {
	g, _ := newTestGame(t)
	r := &scriptedReader{codes: []int{input.CodeUp, input.CodeRight, 'x', input.CodeEscape}}

	out, err := g.NextTurn(r)
	require.NoError(t, err)
	assert.Equal(t, input.ActionMoveUp, out.Action)

	out, err = g.NextTurn(r)
	require.NoError(t, err)
	assert.Equal(t, input.ActionMoveRight, out.Action)
	assert.Equal(t, board.Position{Row: 6, Col: 1}, g.Cursor())

	out, err = g.NextTurn(r)
	require.NoError(t, err)
	assert.Equal(t, TurnIgnored, out.Result)

	out, err = g.NextTurn(r)
	require.NoError(t, err)
	assert.Equal(t, TurnExit, out.Result)
}

func TestNextTurn_ReadFailure(t *testing.T) {
	g, _ := newTestGame(t)
	readErr := errors.New("stdin closed")

	_, err := g.NextTurn(&scriptedReader{err: readErr})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoInput)
	assert.ErrorIs(t, err, readErr)
}

func TestNextTurn_CustomKeyTable(t *testing.T) {
	override, err := input.LoadKeyConfig(map[string]string{"k": "move_up", "q": "exit"})
	require.NoError(t, err)
	g, _ := newTestGame(t, WithKeyTable(input.MergeKeyTable(input.DefaultKeyTable(), override)))

	out, err := g.NextTurn(&scriptedReader{codes: []int{'k'}})
	require.NoError(t, err)
	assert.Equal(t, input.ActionMoveUp, out.Action)
	assert.Equal(t, board.Position{Row: 6, Col: 0}, g.Cursor())

	out, err = g.NextTurn(&scriptedReader{codes: []int{'q'}})
	require.NoError(t, err)
	assert.Equal(t, TurnExit, out.Result)
}

func TestRun_UntilExit(t *testing.T) {
	g, _ := newTestGame(t)
	r := &scriptedReader{codes: []int{
		input.CodeUp, input.CodeEnter, // select (6,0)
		input.CodeUp, input.CodeRight, input.CodeEnter, // move to (5,1)
		input.CodeEscape,
		input.CodeEnter, // never read
	}}

	var outcomes []Outcome
	err := g.Run(context.Background(), r, func(o Outcome) {
		outcomes = append(outcomes, o)
	})

	require.NoError(t, err)
	require.Len(t, outcomes, 6)
	assert.Equal(t, EventSelected, outcomes[1].Event)
	assert.Equal(t, EventMoved, outcomes[4].Event)
	assert.Equal(t, TurnExit, outcomes[5].Result)
	assert.Len(t, r.codes, 1)
	assert.True(t, g.Board().HasMarker(5, 1))
}

func TestRun_ReadFailureStops(t *testing.T) {
	g, _ := newTestGame(t)
	readErr := errors.New("tty lost")

	err := g.Run(context.Background(), &scriptedReader{codes: []int{input.CodeUp}, err: readErr}, nil)

	require.ErrorIs(t, err, readErr)
	assert.Equal(t, board.Position{Row: 6, Col: 0}, g.Cursor())
}

func TestRun_CanceledContext(t *testing.T) {
	g, _ := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &scriptedReader{codes: []int{input.CodeUp}}
	err := g.Run(ctx, r, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, r.codes, 1)
}

func TestPhase_TaggedVariant(t *testing.T) {
	p := SelectionPhase()
	_, ok := p.Selected()
	assert.False(t, ok)
	assert.Equal(t, "waiting_for_marker_selection", p.String())

	p = MoveTargetPhase(board.Position{Row: 6, Col: 2})
	sel, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, board.Position{Row: 6, Col: 2}, sel)
	assert.Equal(t, "waiting_for_move_target(6,2)", p.String())
}
