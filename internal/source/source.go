// Package source lit les transcripts produits par l'outil de récupération
// (fichier, stdin ou URL) et les convertit en model.FetchedTranscript.
//
// Formats acceptés :
//   - un document transcript {"video_id", "language", "language_code", "is_generated", "snippets"}
//   - un tableau de documents transcript
//   - une piste YouTube json3 brute ({"events": [...]}), métadonnées fournies par Hint
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/patrickprogramme/subformat/internal/fetch"
	"github.com/patrickprogramme/subformat/pkg/model"
)

var (
	ErrEmptyDocument   = errors.New("empty transcript document")
	ErrUnknownDocument = errors.New("unrecognized transcript document")
)

// Hint complète les métadonnées absentes du document (json3 notamment).
type Hint struct {
	VideoID      string
	Language     string
	LanguageCode string
	IsGenerated  bool
}

// document est la forme d'échange d'un FetchedTranscript.
type document struct {
	VideoID      string          `json:"video_id"`
	Language     string          `json:"language"`
	LanguageCode string          `json:"language_code"`
	IsGenerated  bool            `json:"is_generated"`
	Snippets     []model.Snippet `json:"snippets"`
}

// probe sert à reconnaître le type de document sans tout décoder deux fois.
type probe struct {
	Snippets json.RawMessage `json:"snippets"`
	Events   json.RawMessage `json:"events"`
}

// Reader décode les documents et journalise les anomalies non bloquantes.
type Reader struct {
	log  hclog.Logger
	hint Hint
}

func NewReader(log hclog.Logger, hint Hint) *Reader {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Reader{log: log.Named("source"), hint: hint}
}

// Decode reconnaît le format de b et retourne les transcripts dans l'ordre du document.
func (r *Reader) Decode(b []byte) ([]model.FetchedTranscript, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, ErrEmptyDocument
	}

	switch b[0] {
	case '[':
		var docs []document
		if err := json.Unmarshal(b, &docs); err != nil {
			return nil, fmt.Errorf("decode transcript list: %w", err)
		}
		out := make([]model.FetchedTranscript, 0, len(docs))
		for _, d := range docs {
			out = append(out, r.fromDocument(d))
		}
		return out, nil
	case '{':
		var p probe
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, fmt.Errorf("decode transcript: %w", err)
		}
		switch {
		case p.Snippets != nil:
			var d document
			if err := json.Unmarshal(b, &d); err != nil {
				return nil, fmt.Errorf("decode transcript: %w", err)
			}
			return []model.FetchedTranscript{r.fromDocument(d)}, nil
		case p.Events != nil:
			var raw rawJSON3
			if err := json.Unmarshal(b, &raw); err != nil {
				return nil, fmt.Errorf("decode json3: %w", err)
			}
			return []model.FetchedTranscript{r.fromJSON3(raw)}, nil
		}
	}
	return nil, ErrUnknownDocument
}

// Read décode tout le contenu de rd (stdin par exemple).
func (r *Reader) Read(rd io.Reader) ([]model.FetchedTranscript, error) {
	b, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return r.Decode(b)
}

func (r *Reader) ReadFile(path string) ([]model.FetchedTranscript, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", path, err)
	}
	ts, err := r.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}

// FetchURL télécharge un document transcript déjà produit (pas de scraping).
func (r *Reader) FetchURL(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64) ([]model.FetchedTranscript, error) {
	start := time.Now()
	b, err := fetch.FetchBytesWithTimeout(ctx, rawURL, timeout, maxBytes)
	if err != nil {
		return nil, err
	}
	r.log.Debug("document téléchargé", "url", rawURL, "bytes", len(b), "elapsed", time.Since(start))
	ts, err := r.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rawURL, err)
	}
	return ts, nil
}

func (r *Reader) fromDocument(d document) model.FetchedTranscript {
	videoID := firstNonEmpty(d.VideoID, r.hint.VideoID)
	code, name := r.language(firstNonEmpty(d.LanguageCode, r.hint.LanguageCode), firstNonEmpty(d.Language, r.hint.Language))
	return model.NewFetchedTranscript(videoID, name, code, d.IsGenerated, d.Snippets)
}

func (r *Reader) fromJSON3(raw rawJSON3) model.FetchedTranscript {
	snippets := json3ToSnippets(raw)
	r.log.Debug("piste json3 convertie", "events", len(raw.Events), "snippets", len(snippets))
	code, name := r.language(r.hint.LanguageCode, r.hint.Language)
	return model.NewFetchedTranscript(r.hint.VideoID, name, code, r.hint.IsGenerated, snippets)
}

func (r *Reader) language(code, name string) (string, string) {
	c, n, ok := normalizeLanguage(code, name)
	if !ok {
		r.log.Warn("code langue invalide, conservé tel quel", "language_code", code)
	}
	return c, n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
