package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

var (
	// ErrEmptyText : rien à copier.
	ErrEmptyText = errors.New("le texte à copier ne peut pas être vide")
	// ErrUnsupported : aucun outil de presse-papier (xclip, xsel, wl-copy...) trouvé.
	ErrUnsupported = errors.New("presse-papier indisponible sur ce système")
)

// Writer copie un rendu dans le presse-papier.
type Writer interface {
	WriteAll(text string) error
}

// System est le presse-papier du système.
type System struct{}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
func (System) WriteAll(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
