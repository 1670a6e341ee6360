package input

// Raw key codes delivered by key readers. Arrow keys use the single-byte
// scan codes of the classic getch convention; readers translate terminal
// escape sequences into them.
const (
	CodeEnter  = 13
	CodeEscape = 27
	CodeUp     = 72
	CodeLeft   = 75
	CodeRight  = 77
	CodeDown   = 80

	// CodeNone is reported for input that maps to no code (unknown escape sequences)
	CodeNone = -1
)

// keyNames lets keymap configs refer to codes by name
var keyNames = map[string]int{
	"enter":     CodeEnter,
	"return":    CodeEnter,
	"escape":    CodeEscape,
	"esc":       CodeEscape,
	"up":        CodeUp,
	"down":      CodeDown,
	"left":      CodeLeft,
	"right":     CodeRight,
	"space":     ' ',
	"tab":       '\t',
	"backspace": 127,
}

// CodeByName resolves a key name such as "enter" or "left"
func CodeByName(name string) (int, bool) {
	code, ok := keyNames[name]
	return code, ok
}
