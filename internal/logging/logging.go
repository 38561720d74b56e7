// Package logging construit le logger structuré (hclog) partagé par l'application.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const loggerName = "subformat"

// New crée un logger nommé au niveau demandé ("trace", "debug", "info", "warn", "error", "off").
// Un niveau inconnu retombe sur "warn". w nil -> stderr.
func New(level string, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   loggerName,
		Level:  ParseLevel(level),
		Output: w,
	})
}

// NewNop retourne un logger qui ignore tout (tests, mode silencieux).
func NewNop() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   loggerName,
		Level:  hclog.Off,
		Output: io.Discard,
	})
}

// ParseLevel convertit un niveau texte en hclog.Level.
func ParseLevel(level string) hclog.Level {
	l := hclog.LevelFromString(strings.ToLower(strings.TrimSpace(level)))
	if l == hclog.NoLevel {
		return hclog.Warn
	}
	return l
}

// IsValidLevel indique si level est reconnu par hclog.
func IsValidLevel(level string) bool {
	return hclog.LevelFromString(strings.ToLower(strings.TrimSpace(level))) != hclog.NoLevel
}
