//go:build !linux && !darwin && !freebsd

// Package term switches the controlling terminal into raw mode and back, and
// answers the one-time window size query.
package term

import "errors"

var (
	ErrNotTerminal = errors.New("not a terminal")
	ErrUnsupported = errors.New("terminal control is not supported on this platform")
)

type State struct{}

func EnableRaw(fd int) (*State, error) { return nil, ErrUnsupported }

func (s *State) Restore() error { return nil }

func Size(fd int) (rows, cols int, err error) { return 0, 0, ErrUnsupported }

type Reader struct{}

func NewReader(fd int) *Reader { return &Reader{} }

func (r *Reader) Read(p []byte) (int, error) { return 0, ErrUnsupported }
