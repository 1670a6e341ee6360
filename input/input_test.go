package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyTable_Codes(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		code int
		want Action
	}{
		{13, ActionEnter},
		{75, ActionMoveLeft},
		{72, ActionMoveUp},
		{77, ActionMoveRight},
		{80, ActionMoveDown},
		{27, ActionExit},
		{0, ActionInvalid},
		{10, ActionInvalid},
		{'q', ActionInvalid},
		{CodeNone, ActionInvalid},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, kt.Lookup(tt.code), "code %d", tt.code)
	}
}

func TestLookup_NilTable(t *testing.T) {
	var kt *KeyTable
	assert.Equal(t, ActionInvalid, kt.Lookup(CodeEnter))
}

func TestActionDelta(t *testing.T) {
	tests := []struct {
		action Action
		dr, dc int
		motion bool
	}{
		{ActionMoveUp, -1, 0, true},
		{ActionMoveDown, 1, 0, true},
		{ActionMoveLeft, 0, -1, true},
		{ActionMoveRight, 0, 1, true},
		{ActionEnter, 0, 0, false},
		{ActionExit, 0, 0, false},
		{ActionInvalid, 0, 0, false},
	}

	for _, tt := range tests {
		dr, dc := tt.action.Delta()
		assert.Equal(t, tt.dr, dr, tt.action.String())
		assert.Equal(t, tt.dc, dc, tt.action.String())
		assert.Equal(t, tt.motion, tt.action.IsMotion(), tt.action.String())
	}
}

func TestActionNamesRoundTrip(t *testing.T) {
	for _, name := range ActionNames() {
		if name == "none" {
			continue
		}
		a, ok := ActionByName(name)
		require.True(t, ok)
		assert.Equal(t, name, a.String())
	}
}

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]string{
		"k":     "move_up",
		"j":     "Move_Down",
		"104":   "move_left",
		"space": "enter",
		"esc":   "none",
	})
	require.NoError(t, err)

	assert.Equal(t, ActionMoveUp, kt.Codes['k'])
	assert.Equal(t, ActionMoveDown, kt.Codes['j'])
	assert.Equal(t, ActionMoveLeft, kt.Codes[104])
	assert.Equal(t, ActionEnter, kt.Codes[' '])

	unbind, ok := kt.Codes[CodeEscape]
	require.True(t, ok)
	assert.Equal(t, ActionInvalid, unbind)
}

func TestLoadKeyConfig_SingleDigitIsCharacter(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]string{"7": "enter"})
	require.NoError(t, err)

	assert.Equal(t, ActionEnter, kt.Codes['7'])
	_, ok := kt.Codes[7]
	assert.False(t, ok)
}

func TestLoadKeyConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		contains string
	}{
		{
			name:     "unknown action with suggestion",
			bindings: map[string]string{"k": "move_upp"},
			contains: `did you mean "move_up"`,
		},
		{
			name:     "unknown action far from any name",
			bindings: map[string]string{"k": "teleport_anywhere"},
			contains: `unknown action: "teleport_anywhere"`,
		},
		{
			name:     "invalid key name",
			bindings: map[string]string{"pagedown": "move_down"},
			contains: `invalid key: "pagedown"`,
		},
		{
			name:     "negative code",
			bindings: map[string]string{"-50": "move_down"},
			contains: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kt, err := LoadKeyConfig(tt.bindings)
			require.Error(t, err)
			assert.Nil(t, kt)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override, err := LoadKeyConfig(map[string]string{
		"q":      "exit",
		"escape": "none",
		"up":     "move_down",
	})
	require.NoError(t, err)

	merged := MergeKeyTable(base, override)

	assert.Equal(t, ActionExit, merged.Lookup('q'))
	assert.Equal(t, ActionInvalid, merged.Lookup(CodeEscape))
	assert.Equal(t, ActionMoveDown, merged.Lookup(CodeUp))
	assert.Equal(t, ActionEnter, merged.Lookup(CodeEnter))

	// Base untouched
	assert.Equal(t, ActionExit, base.Lookup(CodeEscape))
	assert.Equal(t, ActionMoveUp, base.Lookup(CodeUp))
}

func TestMergeKeyTable_NilOverride(t *testing.T) {
	base := DefaultKeyTable()
	merged := MergeKeyTable(base, nil)

	assert.Equal(t, base.Codes, merged.Codes)
	merged.Codes['x'] = ActionEnter
	assert.NotContains(t, base.Codes, int('x'))
}
