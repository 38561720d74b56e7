package ui

import "context"

// Interface regroupe les sorties destinées à l'utilisateur.
// Les messages passent par PrintInfo/PrintError ; le rendu lui-même par WriteOutput.
type Interface interface {
	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// WriteOutput écrit un rendu tel quel sur la sortie standard.
	WriteOutput(ctx context.Context, s string) error
}
