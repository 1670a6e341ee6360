package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/lixenwraith/vi-checkers/board"
)

// Raw drives the terminal directly: raw-mode stdin and ANSI output
type Raw struct {
	in      *os.File
	out     *os.File
	inFd    int
	oldTerm *term.State

	keys    *keyDecoder
	painter *ANSIPainter

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewRaw creates a raw backend; nothing touches the terminal before Init
func NewRaw(in, out *os.File) *Raw {
	return &Raw{
		in:      in,
		out:     out,
		inFd:    int(in.Fd()),
		keys:    newKeyDecoder(in, pollReady(int(in.Fd()))),
		painter: NewANSIPainter(out),
	}
}

// Init enters raw mode and the alternate screen, hides the cursor
func (r *Raw) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return nil
	}

	if !term.IsTerminal(r.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(r.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	r.oldTerm = old

	r.out.Write(csiAltScreenEnter)
	r.out.Write(csiCursorHide)
	r.out.Write(csiClear)

	r.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (r *Raw) Fini() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized || r.finalized {
		return
	}

	r.out.Write(csiSGR0)
	r.out.Write(csiCursorShow)
	r.out.Write(csiAltScreenExit)

	if r.oldTerm != nil {
		term.Restore(r.inFd, r.oldTerm)
	}
	r.finalized = true
}

// ReadKey blocks on stdin for the next key code
func (r *Raw) ReadKey() (int, error) {
	return r.keys.Next()
}

// Paint clears the screen and prints the board
func (r *Raw) Paint(s board.Snapshot) error {
	return r.painter.Paint(s)
}
