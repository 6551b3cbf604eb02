package buffer

// InsertRow inserts a new row holding a copy of content at index at, shifting
// later rows down. at must be in [0, NumRows()]; anything else is a no-op.
func (s *Store) InsertRow(at int, content []byte) bool {
	if at < 0 || at > len(s.rows) {
		return false
	}
	s.rows = append(s.rows, Row{})
	copy(s.rows[at+1:], s.rows[at:])
	s.rows[at] = newRow(content)
	s.touch()
	return true
}

// DeleteRow removes row at, shifting later rows up.
func (s *Store) DeleteRow(at int) bool {
	if at < 0 || at >= len(s.rows) {
		return false
	}
	s.removeRow(at)
	s.touch()
	return true
}

func (s *Store) removeRow(at int) {
	copy(s.rows[at:], s.rows[at+1:])
	s.rows[len(s.rows)-1] = Row{}
	s.rows = s.rows[:len(s.rows)-1]
}

// InsertChar inserts c into row at col. A col outside [0, len] appends.
func (s *Store) InsertChar(row, col int, c byte) bool {
	if row < 0 || row >= len(s.rows) {
		return false
	}
	r := &s.rows[row]
	if col < 0 || col > r.Len() {
		col = r.Len()
	}
	r.insertByte(col, c)
	s.touch()
	return true
}

// DeleteChar removes the byte at col. col must be in [0, len).
func (s *Store) DeleteChar(row, col int) bool {
	if row < 0 || row >= len(s.rows) {
		return false
	}
	if !s.rows[row].deleteByte(col) {
		return false
	}
	s.touch()
	return true
}

// AppendString appends p to the end of row.
func (s *Store) AppendString(row int, p []byte) bool {
	if row < 0 || row >= len(s.rows) {
		return false
	}
	if len(p) == 0 {
		return true
	}
	s.rows[row].appendBytes(p)
	s.touch()
	return true
}

// SplitAt breaks row at col: the row keeps [0, col) and the remainder becomes
// a new row right after it.
//
// At col 0 an empty row is inserted at index row instead, so the existing
// content moves down to row+1 unchanged. Splitting the row one past the end
// appends an empty row. col is clamped to the row length.
func (s *Store) SplitAt(row, col int) bool {
	if row == len(s.rows) {
		return s.InsertRow(row, nil)
	}
	if row < 0 || row >= len(s.rows) {
		return false
	}
	if col <= 0 {
		return s.InsertRow(row, nil)
	}
	tail := s.rows[row].cut(col)
	return s.InsertRow(row+1, tail)
}

// MergeIntoPrevious appends row onto row-1 and deletes row as one edit. It
// returns the junction column (the previous row's length before the merge).
func (s *Store) MergeIntoPrevious(row int) (col int, ok bool) {
	if row <= 0 || row >= len(s.rows) {
		return 0, false
	}
	col = s.rows[row-1].Len()
	s.rows[row-1].appendBytes(s.rows[row].Bytes())
	s.removeRow(row)
	s.touch()
	return col, true
}
