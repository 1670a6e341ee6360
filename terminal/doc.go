// Package terminal connects the game to a real terminal.
//
// Two backends implement the same contract (read one raw key code, paint
// one frame):
//   - Screen wraps a tcell screen; arrow keys are reported as the classic
//     getch scan codes so key tables stay backend independent
//   - Raw puts stdin in raw mode through x/term, decodes escape sequences
//     itself and paints with ANSI styles rendered by lipgloss
//
// Both restore the terminal on Fini; EmergencyReset is the last resort
// used by the crash handler.
package terminal
