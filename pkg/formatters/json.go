package formatters

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/patrickprogramme/subformat/pkg/model"
)

// JSONFormatterOption configure un JSONFormatter.
type JSONFormatterOption func(*JSONFormatter)

// JSONFormatter sérialise la forme structurelle (raw data) des transcripts.
// Un lot devient un tableau de tableaux, pas une concaténation de documents.
type JSONFormatter struct {
	Prefix string
	Indent string
}

func NewJSONFormatter(options ...JSONFormatterOption) *JSONFormatter {
	f := &JSONFormatter{}
	for _, opt := range options {
		opt(f)
	}
	return f
}

// WithIndent active l'indentation (voir json.MarshalIndent).
func WithIndent(prefix, indent string) JSONFormatterOption {
	return func(f *JSONFormatter) {
		f.Prefix = prefix
		f.Indent = indent
	}
}

func (f *JSONFormatter) FormatTranscript(t model.FetchedTranscript) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return f.encode(t.ToRawData())
}

func (f *JSONFormatter) FormatTranscripts(ts []model.FetchedTranscript) (string, error) {
	if err := validateAll(ts); err != nil {
		return "", err
	}
	raws := make([]model.RawData, 0, len(ts))
	for _, t := range ts {
		raws = append(raws, t.ToRawData())
	}
	return f.encode(raws)
}

// encode : clés triées par encoding/json, flottants au plus court sans perte.
// Le texte des sous-titres n'est pas échappé pour le HTML.
func (f *JSONFormatter) encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if f.Prefix != "" || f.Indent != "" {
		enc.SetIndent(f.Prefix, f.Indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("json formatter: encode: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
