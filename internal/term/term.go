//go:build linux || darwin || freebsd

// Package term switches the controlling terminal into raw mode and back, and
// answers the one-time window size query.
package term

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

var (
	ErrNotTerminal = errors.New("not a terminal")
	ErrUnsupported = errors.New("terminal control is not supported on this platform")
)

// State holds the attributes a terminal had before EnableRaw changed them.
type State struct {
	fd   int
	orig unix.Termios

	once sync.Once
	err  error
}

// EnableRaw disables echo, canonical input, signal keys, output processing
// and flow control on fd. Reads return after at most 100ms with zero bytes
// when nothing was typed.
func EnableRaw(fd int) (*State, error) {
	if !xterm.IsTerminal(fd) {
		return nil, fmt.Errorf("enable raw mode: %w", ErrNotTerminal)
	}

	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}
	return &State{fd: fd, orig: *orig}, nil
}

// Restore puts the original attributes back. Only the first call touches the
// terminal; later calls return the first result.
func (s *State) Restore() error {
	s.once.Do(func() {
		if err := unix.IoctlSetTermios(s.fd, ioctlWriteTermios, &s.orig); err != nil {
			s.err = fmt.Errorf("tcsetattr: %w", err)
		}
	})
	return s.err
}

// Size returns the window size of the terminal behind fd.
func Size(fd int) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	if ws.Col == 0 {
		return 0, 0, errors.New("get window size: terminal reports zero columns")
	}
	return int(ws.Row), int(ws.Col), nil
}

// Reader reads straight from a raw file descriptor. Interrupted and
// would-block reads, and VTIME timeouts, come back as (0, nil) so a Decoder
// retries them. An empty read on a hung up descriptor is io.EOF.
type Reader struct {
	fd int
}

func NewReader(fd int) *Reader {
	return &Reader{fd: fd}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := unix.Read(r.fd, p)
	switch {
	case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EINTR):
		return 0, nil
	case err != nil:
		return 0, err
	}
	if n == 0 && len(p) > 0 && hungUp(r.fd) {
		return 0, io.EOF
	}
	return n, nil
}

// hungUp reports whether the other end of fd is gone.
func hungUp(fd int) bool {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 {
		return false
	}
	return fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0
}
