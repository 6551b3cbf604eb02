package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const (
	seqHideCursor = termenv.CSI + termenv.HideCursorSeq
	seqShowCursor = termenv.CSI + termenv.ShowCursorSeq
	seqHome       = termenv.CSI + "H"
	seqEraseEOL   = termenv.CSI + termenv.EraseLineRightSeq
	seqCursorPos  = termenv.CSI + termenv.CursorPositionSeq
	seqReverse    = termenv.CSI + termenv.ReverseSeq + "m"
	seqResetAttrs = termenv.CSI + termenv.ResetSeq + "m"

	noName = "[No Name]"
)

// RowSource is what the renderer reads from the document.
type RowSource interface {
	NumRows() int
	Row(i int) ([]byte, bool)
}

// Frame is the state one screen is drawn from.
type Frame struct {
	Rows     RowSource
	Cursor   Cursor
	Viewport Viewport

	Filename string
	Modified bool
	// Message replaces the left half of the status bar when set.
	Message string
	// Overlay is drawn centered over the text area when set.
	Overlay string
}

type Renderer struct {
	TabWidth int
	Style    Style
	Banner   string
}

// Render appends one complete frame to ab: hide cursor, home, text rows,
// status bar, cursor placement, show cursor.
func (r Renderer) Render(ab *AppendBuffer, f Frame) {
	ab.WriteString(seqHideCursor)
	ab.WriteString(seqHome)

	lines := r.textLines(f)
	if f.Overlay != "" {
		lines = r.composite(lines, f)
	}
	for _, line := range lines {
		ab.WriteString(line)
		ab.WriteString(seqEraseEOL)
		ab.WriteString("\r\n")
	}

	// Reverse video is written raw so the bar shows under any color profile.
	ab.WriteString(seqReverse)
	ab.WriteString(r.Style.StatusBar.Render(statusLine(f)))
	ab.WriteString(seqResetAttrs)

	row, col := f.Cursor.ScreenPos()
	fmt.Fprintf(ab, seqCursorPos, row, col)
	ab.WriteString(seqShowCursor)
}

func (r Renderer) textLines(f Frame) []string {
	vp := f.Viewport
	numRows := f.Rows.NumRows()
	lines := make([]string, 0, vp.Rows)

	var sb strings.Builder
	for y := 0; y < vp.Rows; y++ {
		sb.Reset()
		fileRow := y + f.Cursor.RowOffset
		switch {
		case fileRow < numRows:
			row, _ := f.Rows.Row(fileRow)
			r.drawRow(&sb, row, f.Cursor.ColOffset, vp.Cols)
		case numRows == 0 && y == 2:
			r.drawBanner(&sb, vp.Cols)
		default:
			sb.WriteByte('~')
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// drawRow writes row from column off, expanding tabs and replacing control
// bytes with a one column glyph, and stops at cols screen columns.
func (r Renderer) drawRow(sb *strings.Builder, row []byte, off, cols int) {
	tab := r.TabWidth
	if tab <= 0 {
		tab = DefaultTabWidth
	}

	col := 0
	put := func(s string) {
		if col >= off && col-off < cols {
			sb.WriteString(s)
		}
		col++
	}
	for _, c := range row {
		if col-off >= cols {
			return
		}
		switch {
		case c == '\t':
			for range tab {
				put(" ")
			}
		case c < 0x20 || c == 0x7f:
			glyph := byte('?')
			if c != 0x7f {
				glyph = '@' + c
			}
			put(r.Style.Control.Render(string(glyph)))
		default:
			put(string(c))
		}
	}
}

func (r Renderer) drawBanner(sb *strings.Builder, cols int) {
	banner := r.Banner
	if len(banner) > cols {
		banner = banner[:cols]
	}
	padding := (cols - len(banner)) / 2
	if padding > 0 {
		sb.WriteByte('~')
		padding--
	}
	sb.WriteString(strings.Repeat(" ", padding))
	sb.WriteString(banner)
}

func (r Renderer) composite(lines []string, f Frame) []string {
	cols := f.Viewport.Cols
	padded := make([]string, len(lines))
	for i, line := range lines {
		if w := ansi.StringWidth(line); w < cols {
			line += strings.Repeat(" ", cols-w)
		}
		padded[i] = line
	}

	out := overlay.Composite(f.Overlay, strings.Join(padded, "\n"), overlay.Center, overlay.Center, 0, 0)
	merged := strings.Split(out, "\n")
	if len(merged) > len(lines) {
		merged = merged[:len(lines)]
	}
	for i, line := range merged {
		merged[i] = ansi.Truncate(line, cols, "")
	}
	return merged
}

// statusLine lays out the status bar text: file name and line count on the
// left, current/total line on the right, padded to exactly the screen width.
// The right part is dropped when both do not fit.
func statusLine(f Frame) string {
	cols := f.Viewport.Cols
	numRows := f.Rows.NumRows()

	left := f.Message
	if left == "" {
		name := f.Filename
		if name == "" {
			name = noName
		}
		left = fmt.Sprintf("%.20s - %d lines", name, numRows)
		if f.Modified {
			left += " (modified)"
		}
	}
	right := fmt.Sprintf("%d/%d", f.Cursor.FileRow()+1, numRows)

	if len(left) > cols {
		left = left[:cols]
	}
	var sb strings.Builder
	sb.WriteString(left)
	for n := len(left); n < cols; n++ {
		if cols-n == len(right) {
			sb.WriteString(right)
			break
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}
