package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	rpgeditor "github.com/Graph3x/RPGEditor"
	"github.com/Graph3x/RPGEditor/editor"
	"github.com/Graph3x/RPGEditor/input"
	"github.com/Graph3x/RPGEditor/internal/term"
)

var clearScreen = termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 2) + termenv.CSI + "H"

var errUsage = errors.New("usage: rpgeditor [flags] [path]")

// restorer puts the terminal back the way run found it.
type restorer interface {
	Restore() error
}

// Swapped out by tests.
var (
	enableRaw  = enableRawMode
	windowSize = term.Size
)

func enableRawMode(fd int) (restorer, error) {
	st, err := term.EnableRaw(fd)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "rpgeditor: %v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal for the whole session. Every return path, panics
// included, goes through the deferred Restore before main prints an error.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("rpgeditor", flag.ContinueOnError)
	fs.SetOutput(stdout)
	tabWidth := fs.Int("tabwidth", editor.DefaultTabWidth, "spaces shown for a tab byte")
	logPath := fs.String("log", "", "append debug log to this file")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, rpgeditor.VersionLine())
		return nil
	}
	if fs.NArg() > 1 {
		return errUsage
	}
	if *tabWidth < 1 {
		return fmt.Errorf("-tabwidth must be at least 1, got %d", *tabWidth)
	}

	logger, closeLog, err := openLog(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	inFd, outFd := int(os.Stdin.Fd()), int(os.Stdout.Fd())

	st, err := enableRaw(inFd)
	if err != nil {
		return err
	}
	defer st.Restore()

	stop := restoreOnSignal(st, logger)
	defer stop()

	rows, cols, err := windowSize(outFd)
	if err != nil {
		return err
	}
	logger.Printf("terminal %dx%d", cols, rows)

	ed := editor.New(editor.Config{
		ScreenRows: rows,
		ScreenCols: cols,
		TabWidth:   *tabWidth,
		Style:      editor.RendererStyle(newStyleRenderer(os.Stdout)),
		Logger:     logger,
	}, os.Stdout)

	if fs.NArg() == 1 {
		if err := ed.Open(fs.Arg(0)); err != nil {
			return err
		}
	}

	err = ed.Run(input.NewDecoder(term.NewReader(inFd)))
	io.WriteString(os.Stdout, clearScreen)
	if err != nil {
		logger.Printf("session ended: %v", err)
	}
	return err
}

// newStyleRenderer binds styles to w. Attributes such as reverse video are
// kept even when the environment asks for no color.
func newStyleRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.ANSI)
	}
	return r
}

func openLog(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "rpgeditor ", log.LstdFlags|log.Lmicroseconds), f.Close, nil
}

// restoreOnSignal puts the terminal back and exits 1 on SIGTERM or SIGHUP.
// The returned func stops listening.
func restoreOnSignal(st restorer, logger *log.Logger) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigs:
			io.WriteString(os.Stdout, clearScreen)
			st.Restore()
			logger.Printf("caught %s", sig)
			fmt.Fprintf(os.Stderr, "rpgeditor: %s\n", sig)
			os.Exit(1)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
