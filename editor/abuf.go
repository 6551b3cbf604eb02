package editor

import "io"

// AppendBuffer accumulates one frame. The zero value is ready to use.
type AppendBuffer struct {
	b []byte
}

func (ab *AppendBuffer) Write(p []byte) (int, error) {
	ab.b = append(ab.b, p...)
	return len(p), nil
}

func (ab *AppendBuffer) WriteString(s string) (int, error) {
	ab.b = append(ab.b, s...)
	return len(s), nil
}

func (ab *AppendBuffer) WriteByte(c byte) error {
	ab.b = append(ab.b, c)
	return nil
}

func (ab *AppendBuffer) Len() int { return len(ab.b) }

// Bytes returns the accumulated frame. The slice aliases the buffer.
func (ab *AppendBuffer) Bytes() []byte { return ab.b }

// Flush hands the whole frame to w in exactly one Write call and resets the
// buffer.
func (ab *AppendBuffer) Flush(w io.Writer) error {
	if len(ab.b) == 0 {
		return nil
	}
	n, err := w.Write(ab.b)
	want := len(ab.b)
	ab.b = ab.b[:0]
	if err != nil {
		return err
	}
	if n != want {
		return io.ErrShortWrite
	}
	return nil
}
