package input

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known action name
// before no suggestion is offered
const maxSuggestDistance = 3

// LoadKeyConfig turns a key -> action name table (the [keys] section of the
// config file) into a sparse override KeyTable.
//
// Keys are a key name ("enter", "left", ...), a multi-digit decimal code
// ("104"), or a single character ("h"). Single characters always mean the
// character itself, so "7" binds the '7' key, not code 7.
// Returns error on unknown action names or invalid keys.
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{Codes: make(map[int]Action, len(bindings))}

	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, keyStr := range keys {
		code, err := resolveKey(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}

		action, err := resolveAction(bindings[keyStr])
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		kt.Codes[code] = action
	}

	return kt, nil
}

// resolveKey converts a config key string to a raw code
func resolveKey(s string) (int, error) {
	trimmed := strings.TrimSpace(s)

	// Single character, taken literally (case preserved)
	runes := []rune(trimmed)
	if len(runes) == 1 {
		return int(runes[0]), nil
	}

	if code, ok := CodeByName(strings.ToLower(trimmed)); ok {
		return code, nil
	}

	if code, err := strconv.Atoi(trimmed); err == nil {
		if code < 0 || code > 0x10FFFF {
			return 0, fmt.Errorf("key code %d out of range", code)
		}
		return code, nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected key name, decimal code or single character)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		if suggestion := suggestAction(name); suggestion != "" {
			return ActionInvalid, fmt.Errorf("unknown action: %q (did you mean %q?)", name, suggestion)
		}
		return ActionInvalid, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// suggestAction returns the closest registered name, or "" when nothing is close
func suggestAction(name string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, candidate := range ActionNames() {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
