package game

import (
	"fmt"

	"github.com/lixenwraith/vi-checkers/board"
	"github.com/lixenwraith/vi-checkers/input"
)

// TurnResult tells the driver whether to keep reading input
type TurnResult uint8

const (
	TurnContinue TurnResult = iota
	TurnIgnored
	TurnExit
)

func (r TurnResult) String() string {
	switch r {
	case TurnContinue:
		return "continue"
	case TurnIgnored:
		return "ignored"
	case TurnExit:
		return "exit"
	default:
		return fmt.Sprintf("TurnResult(%d)", uint8(r))
	}
}

// Event describes what a turn did, for sound and logging collaborators
type Event uint8

const (
	EventNone Event = iota
	EventCursorMoved
	EventSelected
	EventMoved
	EventRejected
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventCursorMoved:
		return "cursor_moved"
	case EventSelected:
		return "selected"
	case EventMoved:
		return "moved"
	case EventRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Event(%d)", uint8(e))
	}
}

// Outcome is the result of one turn
// From/To carry the cursor move, the selection (From only) or the marker move
type Outcome struct {
	Action input.Action
	Result TurnResult
	Event  Event
	From   board.Position
	To     board.Position
}
