package editor

import (
	"fmt"
	"io"
	"log"
	"reflect"

	rpgeditor "github.com/Graph3x/RPGEditor"
	"github.com/Graph3x/RPGEditor/buffer"
	"github.com/Graph3x/RPGEditor/input"
)

// Editor is one editing session: the document, the cursor over it and the
// terminal it draws to.
type Editor struct {
	cfg Config
	out io.Writer
	log *log.Logger

	rows     *buffer.Store
	filename string

	vp  Viewport
	cur Cursor

	mode    mode
	inv     *Inventory
	message string

	renderer Renderer
}

// New returns an editor on an empty document that draws frames to out.
func New(cfg Config, out io.Writer) *Editor {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = DefaultTabWidth
	}
	if cfg.KeyMap.Quit.Keys() == nil {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.InventoryKeyMap.Close.Keys() == nil {
		cfg.InventoryKeyMap = DefaultInventoryKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	if cfg.Items == nil {
		cfg.Items = DefaultItems()
	}
	if cfg.Banner == "" {
		cfg.Banner = rpgeditor.Banner()
	}
	if reflect.DeepEqual(cfg.Style, Style{}) {
		cfg.Style = DefaultStyle()
	}

	e := &Editor{
		cfg:  cfg,
		out:  out,
		log:  cfg.Logger,
		rows: buffer.New(),
		vp:   NewViewport(cfg.ScreenRows, cfg.ScreenCols),
		mode: editingMode{},
		inv:  NewInventory(cfg.Items),
	}
	e.renderer = Renderer{
		TabWidth: cfg.TabWidth,
		Style:    cfg.Style,
		Banner:   cfg.Banner,
	}
	return e
}

// Open replaces the document with the contents of path.
func (e *Editor) Open(path string) error {
	rows, err := buffer.LoadFile(path)
	if err != nil {
		return err
	}
	e.rows = rows
	e.filename = path
	e.cur = Cursor{}
	e.logf("opened %s: %d lines", path, rows.NumRows())
	return nil
}

// Save writes the document back to the file it was opened from. The outcome
// is reported in the status bar; a failed save leaves the session running.
func (e *Editor) Save() {
	if e.filename == "" {
		e.message = "No file name, nothing saved"
		e.logf("save skipped: no file name")
		return
	}
	n, err := buffer.SaveFile(e.filename, e.rows)
	if err != nil {
		e.message = fmt.Sprintf("Save failed: %v", err)
		e.logf("save %s: %v", e.filename, err)
		return
	}
	e.message = fmt.Sprintf("%d bytes written to %s", n, e.filename)
	e.logf("saved %s: %d bytes", e.filename, n)
}

func (e *Editor) Rows() *buffer.Store { return e.rows }

func (e *Editor) Cursor() Cursor { return e.cur }

func (e *Editor) Viewport() Viewport { return e.vp }

func (e *Editor) Mode() Mode { return e.mode.kind() }

func (e *Editor) Filename() string { return e.filename }

// Message returns the transient status message set by the last key.
func (e *Editor) Message() string { return e.message }

func (e *Editor) Inventory() *Inventory { return e.inv }

// HandleKey applies one key and reports whether the session should end.
func (e *Editor) HandleKey(k input.Key) (quit bool) {
	e.message = ""
	return e.mode.handleKey(e, k)
}

// Refresh draws the current state with a single write to the output.
func (e *Editor) Refresh() error {
	var ab AppendBuffer
	e.renderer.Render(&ab, e.frame())
	if err := ab.Flush(e.out); err != nil {
		return fmt.Errorf("refresh screen: %w", err)
	}
	return nil
}

// Run draws, reads and applies keys until the quit key is pressed. Read and
// write failures end the loop with an error.
func (e *Editor) Run(dec *input.Decoder) error {
	for {
		if err := e.Refresh(); err != nil {
			return err
		}
		k, err := dec.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if e.HandleKey(k) {
			return nil
		}
	}
}

func (e *Editor) frame() Frame {
	f := Frame{
		Rows:     e.rows,
		Cursor:   e.cur,
		Viewport: e.vp,
		Filename: e.filename,
		Modified: e.rows.Dirty(),
		Message:  e.message,
	}
	if e.mode.kind() == ModeInventory {
		f.Overlay = e.inv.View(e.cfg.Style)
	}
	return f
}

func (e *Editor) setMode(m mode) {
	e.logf("mode %s -> %s", e.mode.kind(), m.kind())
	e.mode = m
}

func (e *Editor) move(dir Direction) {
	e.cur.Move(dir, e.vp, e.rows)
}

func (e *Editor) insertChar(c byte) {
	row := e.cur.FileRow()
	if row == e.rows.NumRows() {
		e.rows.InsertRow(row, nil)
	}
	if !e.rows.InsertChar(row, e.cur.X, c) {
		return
	}
	e.move(DirRight)
}

func (e *Editor) insertNewline() {
	if !e.rows.SplitAt(e.cur.FileRow(), e.cur.X) {
		return
	}
	e.move(DirDown)
	e.cur.X = 0
}

func (e *Editor) deleteBackward() {
	row := e.cur.FileRow()
	if row >= e.rows.NumRows() {
		return
	}
	if e.cur.X > 0 {
		if e.rows.DeleteChar(row, e.cur.X-1) {
			e.move(DirLeft)
		}
		return
	}

	junction, ok := e.rows.MergeIntoPrevious(row)
	if !ok {
		return
	}
	e.move(DirUp)
	e.cur.X = min(junction, e.vp.Cols-1)
}

func (e *Editor) deleteForward() {
	row := e.cur.FileRow()
	if row >= e.rows.NumRows() {
		return
	}
	if e.cur.X < e.rows.RowLen(row) {
		e.rows.DeleteChar(row, e.cur.X)
		return
	}
	e.rows.MergeIntoPrevious(row + 1)
}

func (e *Editor) logf(format string, args ...any) {
	e.log.Printf(format, args...)
}
