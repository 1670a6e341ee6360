//go:build !unix

package terminal

// pollReady has no poll(2); held escape bytes are flushed immediately
func pollReady(fd int) readyFunc {
	return nil
}
