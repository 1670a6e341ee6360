//go:build unix

package terminal

import (
	"time"

	"golang.org/x/sys/unix"
)

// pollReady waits up to timeout for fd to become readable
func pollReady(fd int) readyFunc {
	return func(timeout time.Duration) (bool, error) {
		fds := []unix.PollFd{
			{Fd: int32(fd), Events: unix.POLLIN},
		}
		for {
			n, err := unix.Poll(fds, int(timeout/time.Millisecond))
			if err != nil {
				if err == unix.EINTR {
					continue
				}
				return false, err
			}
			return n > 0, nil
		}
	}
}
