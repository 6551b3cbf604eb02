package editor

// Viewport is the fixed text area of the screen. Rows counts content rows
// only; the status bar row is not part of it.
type Viewport struct {
	Rows int
	Cols int
}

// NewViewport reserves the last screen row for the status bar.
func NewViewport(screenRows, screenCols int) Viewport {
	return Viewport{
		Rows: max(screenRows-1, 1),
		Cols: max(screenCols, 1),
	}
}

// RowBounds is the part of a row store the cursor needs. *buffer.Store
// satisfies it.
type RowBounds interface {
	NumRows() int
	RowLen(i int) int
}

type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirPageUp
	DirPageDown
	DirHome
	DirEnd
)

// Cursor is the screen-relative cursor plus scroll offsets. The document
// row under the cursor is Y+RowOffset. ColOffset is kept for horizontal
// scrolling and is always 0.
type Cursor struct {
	X, Y      int
	RowOffset int
	ColOffset int
}

// FileRow returns the document row the cursor addresses. It may equal or
// exceed rows.NumRows() when the cursor sits below the last line.
func (c Cursor) FileRow() int { return c.Y + c.RowOffset }

// ScreenPos returns the 1-based terminal row and column of the cursor.
func (c Cursor) ScreenPos() (row, col int) { return c.Y + 1, c.X + 1 }

// Move applies one movement and then snaps X to the addressed row.
func (c *Cursor) Move(dir Direction, vp Viewport, rows RowBounds) {
	switch dir {
	case DirUp:
		if c.Y > 0 {
			c.Y--
		} else if c.RowOffset > 0 {
			c.RowOffset--
		}
	case DirDown:
		if c.Y < vp.Rows-1 {
			c.Y++
		} else if c.RowOffset < rows.NumRows()-vp.Rows {
			c.RowOffset++
		}
	case DirLeft:
		if c.X > 0 {
			c.X--
		}
	case DirRight:
		if c.X < vp.Cols-1 {
			c.X++
		}
	case DirPageUp:
		c.Y = 0
	case DirPageDown:
		c.Y = vp.Rows - 1
	case DirHome:
		c.X = 0
	case DirEnd:
		c.X = min(rows.RowLen(c.FileRow()), vp.Cols-1)
	}
	c.Snap(rows)
}

// Snap clamps X to the length of the addressed row. Nothing changes when the
// cursor is below the last row.
func (c *Cursor) Snap(rows RowBounds) {
	r := c.FileRow()
	if r < 0 || r >= rows.NumRows() {
		return
	}
	if n := rows.RowLen(r); c.X > n {
		c.X = n
	}
}
