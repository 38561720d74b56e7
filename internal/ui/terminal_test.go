package ui

import (
	"bytes"
	"context"
	"testing"
)

func TestTerminalSeparatesOutputAndMessages(t *testing.T) {
	var out, errOut bytes.Buffer
	term := NewTerminal(&out, &errOut)
	ctx := context.Background()

	term.PrintInfo(ctx, "info")
	term.PrintError(ctx, "boom")
	if err := term.WriteOutput(ctx, "WEBVTT\n\n\n"); err != nil {
		t.Fatalf("WriteOutput: %v", err)
	}

	if out.String() != "WEBVTT\n\n\n" {
		t.Fatalf("out = %q", out.String())
	}
	// pas de TTY : aucune séquence ANSI
	if errOut.String() != "info\nboom\n" {
		t.Fatalf("errOut = %q", errOut.String())
	}
}

func TestWriteOutputCancelled(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := term.WriteOutput(ctx, "x"); err == nil {
		t.Fatalf("WriteOutput should fail on a cancelled context")
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be written, got %q", out.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatalf("a buffer is not a terminal")
	}
}
