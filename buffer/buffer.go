package buffer

import (
	"iter"
	"strings"
)

// Store is the ordered row list of one document. Row order is document line
// order and indices are always contiguous in [0, NumRows()).
type Store struct {
	rows    []Row
	version uint64
	dirty   bool
}

// New returns a store holding one row per line. New() is the empty document
// with zero rows.
func New(lines ...string) *Store {
	s := &Store{rows: make([]Row, 0, len(lines))}
	for _, line := range lines {
		s.rows = append(s.rows, newRow([]byte(line)))
	}
	return s
}

func (s *Store) NumRows() int { return len(s.rows) }

// Row returns the content of row i. ok is false when i is out of range.
// The returned slice aliases the store and must not be modified.
func (s *Store) Row(i int) (content []byte, ok bool) {
	if i < 0 || i >= len(s.rows) {
		return nil, false
	}
	return s.rows[i].Bytes(), true
}

// RowLen returns the byte length of row i, or 0 when i is out of range.
func (s *Store) RowLen(i int) int {
	if i < 0 || i >= len(s.rows) {
		return 0
	}
	return s.rows[i].Len()
}

// Lines returns a copy of every row as a string.
func (s *Store) Lines() []string {
	out := make([]string, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r.String())
	}
	return out
}

// Text joins the rows with '\n' without a trailing terminator.
func (s *Store) Text() string {
	return strings.Join(s.Lines(), "\n")
}

// Version increases on every effective mutation.
func (s *Store) Version() uint64 { return s.version }

// Dirty reports whether the store changed since it was created, loaded or
// last marked clean.
func (s *Store) Dirty() bool { return s.dirty }

func (s *Store) MarkClean() { s.dirty = false }

// Serialize yields every row followed by exactly one '\n', in store order.
//
// The sequence is computed from the current rows each time it is ranged over,
// so it can be restarted; each yielded slice is a fresh copy.
func (s *Store) Serialize() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for i := 0; i < len(s.rows); i++ {
			row := s.rows[i].Bytes()
			line := make([]byte, len(row)+1)
			copy(line, row)
			line[len(row)] = '\n'
			if !yield(line) {
				return
			}
		}
	}
}

func (s *Store) touch() {
	s.version++
	s.dirty = true
}
