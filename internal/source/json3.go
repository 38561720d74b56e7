package source

import (
	"strings"

	"github.com/patrickprogramme/subformat/pkg/model"
)

// rawJSON3 représente la structure "brute" d'une piste YouTube json3.
type rawJSON3 struct {
	WireMagic string     `json:"wireMagic,omitempty"`
	Events    []rawEvent `json:"events"`
}

type rawEvent struct {
	TStartMs    *int64   `json:"tStartMs,omitempty"`
	DDurationMs *int64   `json:"dDurationMs,omitempty"`
	AAppend     *int     `json:"aAppend,omitempty"`
	Segs        []rawSeg `json:"segs,omitempty"`
	// On ignore volontairement d'autres champs (wpWinPosId, wWinId, etc.)
}

type rawSeg struct {
	Utf8      string `json:"utf8"`
	TOffsetMs *int64 `json:"tOffsetMs,omitempty"`
}

// IsNewlineOnly indique si l'event est uniquement un retour à la ligne.
func (e rawEvent) IsNewlineOnly() bool {
	if len(e.Segs) == 0 {
		return false
	}
	for _, s := range e.Segs {
		t := strings.TrimSpace(s.Utf8)
		if t == "" || t == "\\n" {
			continue
		}
		return false
	}
	return true
}

// text concatène les segs de l'event (les espaces sont déjà dans utf8).
func (e rawEvent) text() string {
	var b strings.Builder
	for _, s := range e.Segs {
		b.WriteString(s.Utf8)
	}
	return normalizeWhitespace(b.String())
}

// json3ToSnippets : un event avec texte = un snippet. Les events de fenêtre
// (sans segs), les retours à la ligne et les events sans tStartMs sont ignorés.
func json3ToSnippets(raw rawJSON3) []model.Snippet {
	out := make([]model.Snippet, 0, len(raw.Events))
	for _, ev := range raw.Events {
		if ev.TStartMs == nil || len(ev.Segs) == 0 || ev.IsNewlineOnly() {
			continue
		}
		txt := ev.text()
		if txt == "" {
			continue
		}
		var dur int64
		if ev.DDurationMs != nil {
			dur = *ev.DDurationMs
		}
		out = append(out, model.Snippet{
			Text:     txt,
			Start:    msToSeconds(*ev.TStartMs),
			Duration: msToSeconds(dur),
		})
	}
	return out
}

func msToSeconds(ms int64) float64 {
	return float64(ms) / 1000
}

// normalizeWhitespace nettoie les espace : un seul espace entre mots, aucun en début/fin
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
