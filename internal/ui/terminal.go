package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type terminalUI struct {
	out    io.Writer
	errOut io.Writer

	info *color.Color
	fail *color.Color
}

// NewTerminal construit l'UI terminal. Les couleurs ne sont activées que si
// errOut est un terminal (et que NO_COLOR n'est pas défini).
func NewTerminal(out, errOut io.Writer) Interface {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	t := &terminalUI{
		out:    out,
		errOut: errOut,
		info:   color.New(color.FgCyan),
		fail:   color.New(color.FgRed, color.Bold),
	}
	if !IsTerminal(errOut) || os.Getenv("NO_COLOR") != "" {
		t.info.DisableColor()
		t.fail.DisableColor()
	} else {
		t.info.EnableColor()
		t.fail.EnableColor()
	}
	return t
}

// IsTerminal indique si w est un terminal (y compris Cygwin/MSYS).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Les messages vont sur errOut pour ne jamais se mêler au rendu écrit sur out.
func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	t.info.Fprintln(t.errOut, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	t.fail.Fprintln(t.errOut, s)
}

func (t *terminalUI) WriteOutput(ctx context.Context, s string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(t.out, s); err != nil {
		return fmt.Errorf("écriture de la sortie : %w", err)
	}
	return nil
}
