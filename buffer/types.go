package buffer

// Row is one line of the document. Its length is always len(Bytes()).
type Row struct {
	chars []byte
}

// Len returns the number of bytes in the row.
func (r Row) Len() int { return len(r.chars) }

// Bytes returns the row content. Callers must not modify it.
func (r Row) Bytes() []byte { return r.chars }

func (r Row) String() string { return string(r.chars) }

func newRow(content []byte) Row {
	return Row{chars: append([]byte(nil), content...)}
}

func (r *Row) insertByte(at int, c byte) {
	at = clampInt(at, 0, len(r.chars))
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
}

func (r *Row) deleteByte(at int) bool {
	if at < 0 || at >= len(r.chars) {
		return false
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	return true
}

func (r *Row) appendBytes(p []byte) {
	r.chars = append(r.chars, p...)
}

// cut truncates the row to n bytes and returns a copy of the removed tail.
func (r *Row) cut(n int) []byte {
	n = clampInt(n, 0, len(r.chars))
	tail := append([]byte(nil), r.chars[n:]...)
	r.chars = r.chars[:n]
	return tail
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
