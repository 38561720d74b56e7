package source

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// normalizeLanguage canonise le code BCP 47 et complète le nom de langue
// s'il est absent. Un code invalide est conservé tel quel (ok == false).
func normalizeLanguage(code, name string) (string, string, bool) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return code, name, true
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code, name, false
	}
	if name == "" {
		name = display.English.Tags().Name(tag)
	}
	return tag.String(), name, true
}
