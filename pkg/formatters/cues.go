package formatters

import (
	"strconv"
	"strings"

	"github.com/patrickprogramme/subformat/pkg/model"
)

// cueLayout décrit les différences entre SRT et WebVTT.
type cueLayout struct {
	header    string // écrit avant le premier cue ("" pour SRT)
	msSep     byte   // séparateur des millisecondes
	withIndex bool   // numérotation 1-based des cues
}

// renderCues écrit les cues séparés par une ligne vide ; le document se
// termine par un saut de ligne après le texte du dernier cue et sa ligne vide.
func renderCues(t model.FetchedTranscript, layout cueLayout) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(layout.header)
	for i, s := range t.Snippets {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if layout.withIndex {
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteByte('\n')
		}
		b.WriteString(secondsToTimestamp(s.Start, layout.msSep))
		b.WriteString(" --> ")
		b.WriteString(secondsToTimestamp(cueEnd(t.Snippets, i), layout.msSep))
		b.WriteByte('\n')
		b.WriteString(s.Text)
	}
	b.WriteByte('\n')
	return b.String(), nil
}

// cueEnd : fin du snippet i, ramenée au début du suivant s'il commence avant.
// Deux cues consécutifs ne se chevauchent donc jamais à l'affichage.
func cueEnd(snippets []model.Snippet, i int) float64 {
	end := snippets[i].End()
	if i+1 < len(snippets) && snippets[i+1].Start < end {
		end = snippets[i+1].Start
	}
	return end
}
