package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/Graph3x/RPGEditor/buffer"
)

const testBanner = "RPGEditor version 0.0.1"

func testStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return RendererStyle(r)
}

func renderFrame(r Renderer, f Frame) string {
	var ab AppendBuffer
	r.Render(&ab, f)
	return string(ab.Bytes())
}

func TestRender_EmptyDocumentFrame(t *testing.T) {
	st := testStyle()
	r := Renderer{TabWidth: 4, Style: st, Banner: testBanner}

	got := renderFrame(r, Frame{
		Rows:     buffer.New(),
		Viewport: Viewport{Rows: 4, Cols: 30},
	})

	want := "\x1b[?25l\x1b[H" +
		"~\x1b[0K\r\n" +
		"~\x1b[0K\r\n" +
		"~  " + testBanner + "\x1b[0K\r\n" +
		"~\x1b[0K\r\n" +
		"\x1b[7m[No Name] - 0 lines        1/0\x1b[0m" +
		"\x1b[1;1H\x1b[?25h"
	if got != want {
		t.Fatalf("frame:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_BannerOnlyOnEmptyDocument(t *testing.T) {
	r := Renderer{Style: testStyle(), Banner: testBanner}
	got := renderFrame(r, Frame{
		Rows:     buffer.New("x"),
		Viewport: Viewport{Rows: 5, Cols: 40},
	})
	if strings.Contains(got, testBanner) {
		t.Fatalf("banner drawn on non-empty document: %q", got)
	}
}

func TestRender_BannerClippedToWidth(t *testing.T) {
	var sb strings.Builder
	Renderer{Banner: testBanner}.drawBanner(&sb, 9)
	if got := sb.String(); got != "RPGEditor" {
		t.Fatalf("banner: got %q, want %q", got, "RPGEditor")
	}
}

func TestRender_RowsExpandTabsAndClip(t *testing.T) {
	r := Renderer{TabWidth: 4, Style: testStyle()}
	got := r.textLines(Frame{
		Rows:     buffer.New("a\tb", "0123456789"),
		Viewport: Viewport{Rows: 3, Cols: 5},
	})

	want := []string{"a    ", "01234", "~"}
	if len(got) != len(want) {
		t.Fatalf("lines: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRender_DefaultTabWidth(t *testing.T) {
	r := Renderer{Style: testStyle()}
	got := r.textLines(Frame{
		Rows:     buffer.New("\tx"),
		Viewport: Viewport{Rows: 1, Cols: 20},
	})
	if got[0] != "    x" {
		t.Fatalf("line: got %q, want %q", got[0], "    x")
	}
}

func TestRender_ControlBytesUseGlyphs(t *testing.T) {
	st := testStyle()
	r := Renderer{TabWidth: 4, Style: st}
	got := r.textLines(Frame{
		Rows:     buffer.New("a\x01b\x7f"),
		Viewport: Viewport{Rows: 1, Cols: 20},
	})

	want := "a" + st.Control.Render("A") + "b" + st.Control.Render("?")
	if got[0] != want {
		t.Fatalf("line: got %q, want %q", got[0], want)
	}
	if w := ansi.StringWidth(got[0]); w != 4 {
		t.Fatalf("visible width: got %d, want 4", w)
	}
}

func TestRender_RowOffsetScrollsContent(t *testing.T) {
	st := testStyle()
	r := Renderer{Style: st}
	f := Frame{
		Rows:     buffer.New("one", "two", "three"),
		Cursor:   Cursor{X: 1, Y: 0, RowOffset: 1},
		Viewport: Viewport{Rows: 2, Cols: 20},
		Filename: "f.txt",
	}
	got := renderFrame(r, f)

	if !strings.Contains(got, "\x1b[H"+"two\x1b[0K\r\nthree\x1b[0K\r\n") {
		t.Fatalf("scrolled content missing: %q", got)
	}
	if !strings.Contains(got, "\x1b[7mf.txt - 3 lines  2/3\x1b[0m") {
		t.Fatalf("status bar missing: %q", got)
	}
	if !strings.HasSuffix(got, "\x1b[1;2H\x1b[?25h") {
		t.Fatalf("cursor placement: %q", got)
	}
}

func TestRender_StatusBarReversedWithoutColor(t *testing.T) {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.Ascii)
	r := Renderer{Style: RendererStyle(lr)}

	got := renderFrame(r, Frame{
		Rows:     buffer.New("x"),
		Viewport: Viewport{Rows: 1, Cols: 20},
		Filename: "a.txt",
	})
	if !strings.Contains(got, "\r\n\x1b[7ma.txt - 1 lines  1/1\x1b[0m\x1b[1;1H") {
		t.Fatalf("status bar not reversed under ascii profile: %q", got)
	}
}

func TestStatusLine(t *testing.T) {
	cases := []struct {
		name string
		f    Frame
		want string
	}{
		{
			name: "no name",
			f:    Frame{Rows: buffer.New("a", "b"), Viewport: Viewport{Cols: 25}},
			want: "[No Name] - 2 lines   1/2",
		},
		{
			name: "long name truncated",
			f: Frame{
				Rows:     buffer.New("a"),
				Viewport: Viewport{Cols: 40},
				Filename: "averyveryverylongfilename.txt",
			},
			want: "averyveryverylongfil - 1 lines       1/1",
		},
		{
			name: "modified",
			f: Frame{
				Rows:     buffer.New("a"),
				Viewport: Viewport{Cols: 30},
				Filename: "x",
				Modified: true,
			},
			want: "x - 1 lines (modified)     1/1",
		},
		{
			name: "message",
			f: Frame{
				Rows:     buffer.New("a"),
				Cursor:   Cursor{Y: 3, RowOffset: 2},
				Viewport: Viewport{Cols: 20},
				Message:  "Saved",
			},
			want: "Saved            6/1",
		},
		{
			name: "too narrow for right part",
			f:    Frame{Rows: buffer.New(), Viewport: Viewport{Cols: 10}},
			want: "[No Name] ",
		},
		{
			name: "no room left for right part",
			f:    Frame{Rows: buffer.New(), Viewport: Viewport{Cols: 21}},
			want: "[No Name] - 0 lines  ",
		},
	}

	for _, tc := range cases {
		if got := statusLine(tc.f); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
		if len(tc.want) != tc.f.Viewport.Cols {
			t.Fatalf("%s: bad test case width %d", tc.name, len(tc.want))
		}
	}
}

func TestRender_OverlayComposited(t *testing.T) {
	st := testStyle()
	r := Renderer{TabWidth: 4, Style: st, Banner: testBanner}
	inv := NewInventory(DefaultItems())

	vp := Viewport{Rows: 10, Cols: 80}
	got := renderFrame(r, Frame{
		Rows:     buffer.New("hello world"),
		Viewport: vp,
		Overlay:  inv.View(st),
	})

	if n := strings.Count(got, "\r\n"); n != vp.Rows {
		t.Fatalf("content rows: got %d, want %d", n, vp.Rows)
	}
	plain := ansi.Strip(got)
	for _, want := range []string{"Inventory", "Sword", "Lantern", "╭"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("overlay frame missing %q:\n%s", want, plain)
		}
	}
	if !strings.Contains(plain, "hello world") {
		t.Fatalf("text under overlay lost:\n%s", plain)
	}
	for _, line := range strings.Split(got, "\r\n")[:vp.Rows] {
		line = strings.TrimPrefix(line, "\x1b[?25l\x1b[H")
		line = strings.TrimSuffix(line, "\x1b[0K")
		if w := ansi.StringWidth(line); w > vp.Cols {
			t.Fatalf("line wider than screen (%d): %q", w, line)
		}
	}
}
