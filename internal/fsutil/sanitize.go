package fsutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// limite de longueur de la chaine
const max = 200

// invalidFileRunes définit les caractères interdits dans les noms de fichiers
// \x00-\x1F sont les caractères de contrôle
var invalidFileRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

// multiSpace détecte les séquences de plusieurs espaces pour les réduire à un seul.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename nettoie une chaîne de caractères pour en faire un nom de fichier valide.
// ":" devient "-", les autres caractères interdits deviennent des espaces,
// les espaces multiples et les points terminaux sont supprimés.
// Une chaîne vide donne "untitled".
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", "-")
	clean := invalidFileRunes.ReplaceAllString(name, " ")
	clean = multiSpace.ReplaceAllString(strings.TrimSpace(clean), " ")
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return "untitled"
	}

	return truncate(clean, max)
}

// truncate coupe s à n octets au plus sans casser une rune UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}

// OutputBaseName construit le nom de base "<video_id> (<langue>)" d'un rendu.
// Sans langue, seul l'identifiant est gardé ; sans identifiant, "transcript".
func OutputBaseName(videoID, languageCode string) string {
	id := strings.TrimSpace(videoID)
	if id == "" {
		id = "transcript"
	}
	if lang := strings.TrimSpace(languageCode); lang != "" {
		id += " (" + lang + ")"
	}
	return SanitizeFilename(id)
}
