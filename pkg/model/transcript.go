package model

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrInvalidSnippet signale un snippet inutilisable (start/duration négatif ou non fini).
var ErrInvalidSnippet = errors.New("invalid transcript snippet")

// SubSource représente la provenance d'une piste de sous-titres.
// generated = générée automatiquement par la plateforme
// manual = fournie par l'auteur de la vidéo
type SubSource string

const (
	SubSourceGenerated SubSource = "generated"
	SubSourceManual    SubSource = "manual"
)

func (s SubSource) String() string {
	switch s {
	case SubSourceGenerated:
		return "auto captions"
	case SubSourceManual:
		return "manual subtitles"
	default:
		return "unknown subtitles"
	}
}

// Snippet représente une unité de sous-titre : texte, début et durée en secondes.
type Snippet struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// FetchedTranscriptSnippet est la vue d'un Snippet stocké dans un FetchedTranscript.
type FetchedTranscriptSnippet = Snippet

// End retourne l'instant de fin du snippet (Start + Duration).
func (s Snippet) End() float64 {
	return s.Start + s.Duration
}

// MaxSeconds borne la fin d'un snippet : au-delà, le nombre de millisecondes
// n'est plus représentable exactement en float64 (2^53 ms).
const MaxSeconds = (1 << 53) / 1000.0

// Validate vérifie que start et duration sont finis, positifs, et que la fin
// ne dépasse pas MaxSeconds.
func (s Snippet) Validate() error {
	switch {
	case math.IsNaN(s.Start) || math.IsInf(s.Start, 0):
		return fmt.Errorf("%w: start is not finite (%v)", ErrInvalidSnippet, s.Start)
	case math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0):
		return fmt.Errorf("%w: duration is not finite (%v)", ErrInvalidSnippet, s.Duration)
	case s.Start < 0:
		return fmt.Errorf("%w: negative start %v", ErrInvalidSnippet, s.Start)
	case s.Duration < 0:
		return fmt.Errorf("%w: negative duration %v", ErrInvalidSnippet, s.Duration)
	case s.End() > MaxSeconds:
		return fmt.Errorf("%w: end %v exceeds %v seconds", ErrInvalidSnippet, s.End(), MaxSeconds)
	}
	return nil
}

// RawData est la forme structurelle canonique d'un transcript :
// une séquence ordonnée de maps {text, start, duration}.
type RawData []map[string]any

// FetchedTranscript regroupe les snippets d'une vidéo dans une langue,
// dans l'ordre de lecture, avec leur provenance.
type FetchedTranscript struct {
	Snippets     []Snippet
	Language     string // ex: "English"
	LanguageCode string // ex: "en"
	IsGenerated  bool
	VideoID      string
}

// NewFetchedTranscript construit un transcript à partir de données déjà prêtes.
// Les snippets sont copiés : le transcript possède sa propre séquence.
func NewFetchedTranscript(videoID, language, languageCode string, isGenerated bool, snippets []Snippet) FetchedTranscript {
	return FetchedTranscript{
		Snippets:     append([]Snippet(nil), snippets...),
		Language:     language,
		LanguageCode: languageCode,
		IsGenerated:  isGenerated,
		VideoID:      videoID,
	}
}

func (t FetchedTranscript) Len() int {
	return len(t.Snippets)
}

func (t FetchedTranscript) Snippet(i int) Snippet {
	return t.Snippets[i]
}

// All itère sur les snippets dans l'ordre de lecture.
func (t FetchedTranscript) All() iter.Seq2[int, Snippet] {
	return func(yield func(int, Snippet) bool) {
		for i, s := range t.Snippets {
			if !yield(i, s) {
				return
			}
		}
	}
}

func (t FetchedTranscript) Source() SubSource {
	if t.IsGenerated {
		return SubSourceGenerated
	}
	return SubSourceManual
}

// Duration retourne la fin du dernier cue (max des End), 0 si vide.
func (t FetchedTranscript) Duration() float64 {
	var end float64
	for _, s := range t.Snippets {
		end = max(end, s.End())
	}
	return end
}

// ToRawData convertit le transcript en forme structurelle, sans perte.
func (t FetchedTranscript) ToRawData() RawData {
	out := make(RawData, 0, len(t.Snippets))
	for _, s := range t.Snippets {
		out = append(out, map[string]any{
			"text":     s.Text,
			"start":    s.Start,
			"duration": s.Duration,
		})
	}
	return out
}

// Validate vérifie chaque snippet ; l'erreur indique l'index fautif.
func (t FetchedTranscript) Validate() error {
	for i, s := range t.Snippets {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("video %q snippet %d: %w", t.VideoID, i, err)
		}
	}
	return nil
}

func (t FetchedTranscript) String() string {
	return fmt.Sprintf("FetchedTranscript(video=%s, lang=%s, source=%s, snippets=%d)",
		t.VideoID, t.LanguageCode, t.Source(), len(t.Snippets))
}
