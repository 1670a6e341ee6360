package input

import "sort"

// actionRegistry maps canonical action names to actions
// Used by the keymap config loader to resolve action strings to bindings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionInvalid,

	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"enter":      ActionEnter,
	"exit":       ActionExit,
}

var actionNames = map[Action]string{
	ActionInvalid:   "invalid",
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionEnter:     "enter",
	ActionExit:      "exit",
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
