package input

import "fmt"

// Action is the semantic meaning of one key press
type Action uint8

const (
	ActionInvalid Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionEnter
	ActionExit
)

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Delta returns the cursor displacement for directional actions, zero otherwise
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case ActionMoveUp:
		return -1, 0
	case ActionMoveDown:
		return 1, 0
	case ActionMoveLeft:
		return 0, -1
	case ActionMoveRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// IsMotion reports whether the action moves the cursor
func (a Action) IsMotion() bool {
	switch a {
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight:
		return true
	}
	return false
}
