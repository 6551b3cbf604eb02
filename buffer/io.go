package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Load reads r line by line into a new store. Trailing '\n' and '\r' bytes
// are stripped from every line; a final line without a terminator still
// becomes a row.
func Load(r io.Reader) (*Store, error) {
	s := New()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			s.rows = append(s.rows, newRow(trimEOL(line)))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func trimEOL(line []byte) []byte {
	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	return line[:n]
}

// LoadFile opens path and loads it. The returned store is clean.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load file: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load file %s: %w", path, err)
	}
	return s, nil
}

// WriteTo writes the serialized document to w.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for line := range s.Serialize() {
		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// SaveFile truncates path and writes the whole document into it. The write is
// not atomic: a failure part way leaves a partially written file. On success
// the store is marked clean.
func SaveFile(path string, s *Store) (int64, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("save file: %w", err)
	}

	bw := bufio.NewWriter(f)
	n, err := s.WriteTo(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("save file %s: %w", path, err)
	}
	s.MarkClean()
	return n, nil
}
