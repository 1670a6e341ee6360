package terminal

import (
	"errors"
	"io"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/vi-checkers/input"
)

// escapeTimeout is the duration to wait after ESC to distinguish
// standalone ESC from escape sequence start
const escapeTimeout = 50 * time.Millisecond

// Arrow final bytes shared by CSI (ESC [) and SS3 (ESC O) sequences
var arrowCodes = map[byte]int{
	'A': input.CodeUp,
	'B': input.CodeDown,
	'C': input.CodeRight,
	'D': input.CodeLeft,
}

// readyFunc reports whether input arrives within timeout
type readyFunc func(timeout time.Duration) (bool, error)

// keyDecoder turns a raw byte stream into key codes
// One read may carry several keys (paste, key repeat); extras are queued.
// An incomplete sequence at the end of a read is held until more bytes
// arrive or ready reports nothing within escapeTimeout.
type keyDecoder struct {
	r       io.Reader
	ready   readyFunc
	chunk   []byte
	buf     []byte
	pending []int
}

// newKeyDecoder creates a decoder; a nil ready flushes held bytes at once
func newKeyDecoder(r io.Reader, ready readyFunc) *keyDecoder {
	return &keyDecoder{
		r:     r,
		ready: ready,
		chunk: make([]byte, 256),
		buf:   make([]byte, 0, 256),
	}
}

// Next blocks until a key code is available
// io.EOF from the reader is reported as ErrClosed
func (d *keyDecoder) Next() (int, error) {
	for len(d.pending) == 0 {
		if len(d.buf) > 0 {
			more, err := d.waitMore()
			if err != nil {
				return 0, err
			}
			if !more {
				d.flush()
				continue
			}
		}

		n, err := d.r.Read(d.chunk)
		if n > 0 {
			d.buf = append(d.buf, d.chunk[:n]...)
			d.decode()
		}
		if err != nil {
			d.flush()
			if len(d.pending) > 0 {
				break
			}
			if errors.Is(err, io.EOF) {
				return 0, ErrClosed
			}
			return 0, err
		}
	}

	code := d.pending[0]
	d.pending = d.pending[1:]
	return code, nil
}

func (d *keyDecoder) waitMore() (bool, error) {
	if d.ready == nil {
		return false, nil
	}
	return d.ready(escapeTimeout)
}

// decode queues every complete key in buf and keeps the incomplete tail
func (d *keyDecoder) decode() {
	codes, consumed := decodeKeys(d.buf)
	d.pending = append(d.pending, codes...)
	d.buf = append(d.buf[:0], d.buf[consumed:]...)
}

// flush gives up waiting on a held tail
func (d *keyDecoder) flush() {
	if len(d.buf) == 0 {
		return
	}
	d.pending = append(d.pending, flushPartial(d.buf))
	d.buf = d.buf[:0]
}

// decodeKeys parses complete keys from b and returns how many bytes they used.
// ESC not starting a sequence is the escape key; arrow sequences become scan
// codes; unknown sequences become CodeNone. Parsing stops at a trailing ESC,
// an unterminated sequence or a partial UTF-8 rune.
func decodeKeys(b []byte) ([]int, int) {
	codes := make([]int, 0, len(b))

	i := 0
	for i < len(b) {
		c := b[i]

		if c == 0x1b {
			// Need at least 2 bytes to determine sequence type
			if i+1 >= len(b) {
				return codes, i
			}
			if b[i+1] != '[' && b[i+1] != 'O' {
				codes = append(codes, input.CodeEscape)
				i++
				continue
			}

			// Scan to the final byte (0x40-0x7E) of the sequence
			j := i + 2
			for j < len(b) && (b[j] < 0x40 || b[j] > 0x7e) {
				j++
			}
			if j >= len(b) {
				return codes, i
			}

			codes = append(codes, lookupSequence(b[i+2:j], b[j]))
			i = j + 1
			continue
		}

		if c >= utf8.RuneSelf {
			if !utf8.FullRune(b[i:]) {
				return codes, i
			}
			r, size := utf8.DecodeRune(b[i:])
			codes = append(codes, int(r))
			i += size
			continue
		}

		codes = append(codes, int(c))
		i++
	}

	return codes, i
}

// flushPartial resolves a tail that never completed
func flushPartial(b []byte) int {
	if len(b) == 1 && b[0] == 0x1b {
		return input.CodeEscape
	}
	return input.CodeNone
}

// lookupSequence maps sequence parameters and final byte to a code
// Modified arrows (xterm "1;<mod>") resolve to the plain arrow
func lookupSequence(params []byte, final byte) int {
	code, ok := arrowCodes[final]
	if !ok {
		return input.CodeNone
	}

	switch {
	case len(params) == 0:
		return code
	case len(params) == 3 && params[0] == '1' && params[1] == ';' && params[2] >= '2' && params[2] <= '9':
		return code
	default:
		return input.CodeNone
	}
}
