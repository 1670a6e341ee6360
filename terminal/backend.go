package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/lixenwraith/vi-checkers/board"
)

// Backend names accepted by Open
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// ErrClosed is returned by ReadKey once the input source is gone
var ErrClosed = errors.New("terminal closed")

// Backend abstracts a terminal that reads raw key codes and paints boards
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// ReadKey blocks until one key code is available
	ReadKey() (int, error)

	// Paint clears the surface and draws one frame
	Paint(s board.Snapshot) error
}

// Open constructs, but does not initialize, the named backend on stdin/stdout
func Open(name string) (Backend, error) {
	switch name {
	case BackendTcell, "":
		s, err := NewScreen()
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendANSI:
		return NewRaw(os.Stdin, os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown terminal backend: %q", name)
	}
}
