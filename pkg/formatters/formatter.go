// Package formatters convertit un ou plusieurs FetchedTranscript en texte :
// SRT, WebVTT, JSON, texte brut ou forme structurelle indentée.
//
// Les formatters sont des valeurs sans état : ils ne modifient jamais leur
// entrée et peuvent être utilisés en parallèle sur des entrées distinctes.
package formatters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/patrickprogramme/subformat/pkg/model"
)

// TranscriptSeparator sépare deux documents rendus indépendamment (deux lignes vides).
const TranscriptSeparator = "\n\n\n"

// ErrNotImplemented est retournée par la capacité abstraite Base.
var ErrNotImplemented = errors.New("formatter: operation not implemented")

// Formatter définit le contrat commun à tous les formats de sortie.
type Formatter interface {
	// FormatTranscript rend exactement un transcript.
	FormatTranscript(t model.FetchedTranscript) (string, error)
	// FormatTranscripts rend un lot de transcripts, dans l'ordre fourni.
	FormatTranscripts(ts []model.FetchedTranscript) (string, error)
}

// Base définit seulement la capacité : ses deux opérations échouent toujours.
// Elle n'est jamais enregistrée dans le Loader.
type Base struct{}

func (Base) FormatTranscript(model.FetchedTranscript) (string, error) {
	return "", fmt.Errorf("FormatTranscript: %w", ErrNotImplemented)
}

func (Base) FormatTranscripts([]model.FetchedTranscript) (string, error) {
	return "", fmt.Errorf("FormatTranscripts: %w", ErrNotImplemented)
}

// joinTranscripts rend chaque transcript avec one puis concatène avec TranscriptSeparator.
// C'est le comportement par défaut des formats orientés lignes (SRT, WebVTT, texte).
func joinTranscripts(ts []model.FetchedTranscript, one func(model.FetchedTranscript) (string, error)) (string, error) {
	parts := make([]string, 0, len(ts))
	for i, t := range ts {
		s, err := one(t)
		if err != nil {
			return "", fmt.Errorf("transcript %d: %w", i, err)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, TranscriptSeparator), nil
}

// validateAll vérifie les transcripts avant un rendu structuré.
func validateAll(ts []model.FetchedTranscript) error {
	for i, t := range ts {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transcript %d: %w", i, err)
		}
	}
	return nil
}
