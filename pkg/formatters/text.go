package formatters

import (
	"strings"

	"github.com/patrickprogramme/subformat/pkg/model"
)

// TextFormatter rend le texte seul : une ligne par snippet, sans ligne vide finale.
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (f *TextFormatter) FormatTranscript(t model.FetchedTranscript) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	lines := make([]string, 0, len(t.Snippets))
	for _, s := range t.Snippets {
		lines = append(lines, s.Text)
	}
	return strings.Join(lines, "\n"), nil
}

func (f *TextFormatter) FormatTranscripts(ts []model.FetchedTranscript) (string, error) {
	return joinTranscripts(ts, f.FormatTranscript)
}
