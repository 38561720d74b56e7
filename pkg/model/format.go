package model

import (
	"fmt"
	"strings"
)

// Format identifie un format de sortie. Les valeurs sont exposées en CLI et en config.
type Format string

const (
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
	FormatText   Format = "text"
	FormatSRT    Format = "srt"
	FormatWebVTT Format = "webvtt"
)

// DefaultFormat est utilisé quand aucun nom n'est fourni.
const DefaultFormat = FormatPretty

// ParseFormat : du format en chaine à la constante de type Format, erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "pretty":
		return FormatPretty, nil
	case "text":
		return FormatText, nil
	case "srt":
		return FormatSRT, nil
	case "webvtt":
		return FormatWebVTT, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

// IsSubtitle indique un format de sous-titres minuté (cues).
func (f Format) IsSubtitle() bool {
	return f == FormatSRT || f == FormatWebVTT
}

// IsStructured indique un format qui imbrique les documents au lieu de les concaténer.
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatPretty
}

func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatSRT:
		return ".srt"
	case FormatWebVTT:
		return ".vtt"
	default:
		return ".txt"
	}
}

func (f Format) String() string {
	return string(f)
}
