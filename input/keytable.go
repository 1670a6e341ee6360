package input

// KeyTable maps raw key codes to actions
// Codes absent from the table resolve to ActionInvalid
type KeyTable struct {
	Codes map[int]Action
}

// DefaultKeyTable returns the fixed arrow/enter/escape bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Codes: map[int]Action{
			CodeEnter:  ActionEnter,
			CodeLeft:   ActionMoveLeft,
			CodeUp:     ActionMoveUp,
			CodeRight:  ActionMoveRight,
			CodeDown:   ActionMoveDown,
			CodeEscape: ActionExit,
		},
	}
}

// Lookup resolves a raw code
func (kt *KeyTable) Lookup(code int) Action {
	if kt == nil {
		return ActionInvalid
	}
	if a, ok := kt.Codes[code]; ok {
		return a
	}
	return ActionInvalid
}

// Clone returns a deep copy of the KeyTable with an independent map
func (kt *KeyTable) Clone() *KeyTable {
	c := make(map[int]Action, len(kt.Codes))
	for k, v := range kt.Codes {
		c[k] = v
	}
	return &KeyTable{Codes: c}
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionInvalid ("none") delete the code from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for k, v := range override.Codes {
		if v == ActionInvalid {
			delete(result.Codes, k)
		} else {
			result.Codes[k] = v
		}
	}
	return result
}
