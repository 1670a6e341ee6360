package game

import (
	"fmt"

	"github.com/lixenwraith/vi-checkers/board"
)

// PhaseKind discriminates the two interaction states
type PhaseKind uint8

const (
	WaitingForMarkerSelection PhaseKind = iota
	WaitingForMoveTarget
)

func (k PhaseKind) String() string {
	switch k {
	case WaitingForMarkerSelection:
		return "waiting_for_marker_selection"
	case WaitingForMoveTarget:
		return "waiting_for_move_target"
	default:
		return fmt.Sprintf("PhaseKind(%d)", uint8(k))
	}
}

// Phase is a tagged variant: the selected position exists only while
// waiting for a move target
type Phase struct {
	kind     PhaseKind
	selected board.Position
}

// SelectionPhase is the initial phase
func SelectionPhase() Phase {
	return Phase{kind: WaitingForMarkerSelection}
}

// MoveTargetPhase records the marker picked for the next move
func MoveTargetPhase(selected board.Position) Phase {
	return Phase{kind: WaitingForMoveTarget, selected: selected}
}

func (p Phase) Kind() PhaseKind { return p.kind }

// Selected returns the picked marker position while waiting for a target
func (p Phase) Selected() (board.Position, bool) {
	if p.kind != WaitingForMoveTarget {
		return board.Position{}, false
	}
	return p.selected, true
}

func (p Phase) String() string {
	if sel, ok := p.Selected(); ok {
		return fmt.Sprintf("%s%s", p.kind, sel)
	}
	return p.kind.String()
}
