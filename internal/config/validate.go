package config

import (
	"fmt"
	"os"

	"github.com/patrickprogramme/subformat/internal/logging"
	"github.com/patrickprogramme/subformat/pkg/formatters"
)

// Validate vérifie la config. Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) Validate() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	if !formatters.IsKnown(c.DefaultFormat) {
		return warnings, fmt.Errorf("default_format %q inconnu (formats : %v)", c.DefaultFormat, formatters.Names())
	}

	if !logging.IsValidLevel(c.LogLevel) {
		warnings = append(warnings, fmt.Sprintf("log_level %q inconnu, utilisation de \"warn\"", c.LogLevel))
	}

	// le dossier de sortie sera créé au besoin ; seul un fichier au même chemin est bloquant
	if st, serr := os.Stat(c.OutputDir); serr != nil {
		if os.IsNotExist(serr) {
			if c.SaveToFile {
				warnings = append(warnings, fmt.Sprintf("le dossier de sortie n'existe pas et sera créé : %s", c.OutputDir))
			}
		} else {
			return warnings, fmt.Errorf("impossible d'accéder au dossier de sortie %s : %w", c.OutputDir, serr)
		}
	} else if !st.IsDir() {
		return warnings, fmt.Errorf("output_dir n'est pas un répertoire : %s", c.OutputDir)
	}

	return warnings, nil
}
