package bootstrap

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/subformat/internal/fsutil"
)

// Statuts retournés par ExportConfig.
const (
	StatusWritten     = "written"
	StatusUnchanged   = "unchanged"
	StatusSkipped     = "skipped (different)"
	StatusOverwritten = "overwritten"
)

// EnsureConfigPresent copie un fichier embarqué (assetPath dans fsys) vers dstPath
// si dstPath n'existe pas encore. Retourne true si le fichier a été créé.
// Ne remplace jamais un fichier existant.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) (bool, error) {
	if err := ensureParent(dstPath); err != nil {
		return false, err
	}

	// si le fichier existe déjà -> ne rien faire
	if _, err := os.Stat(dstPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}

	data, err := fs.ReadFile(fsys, filepath.ToSlash(assetPath))
	if err != nil {
		return false, fmt.Errorf("lecture asset embarqué %s: %w", assetPath, err)
	}
	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return false, fmt.Errorf("échec écriture config %s: %w", dstPath, err)
	}
	return true, nil
}

// ExportConfig écrit l'asset embarqué vers dstPath.
// - fichier absent : écrit ("written")
// - fichier identique : rien ("unchanged")
// - fichier différent et force=false : rien ("skipped (different)")
// - fichier différent et force=true : sauvegarde .bak.<horodatage> puis écrase ("overwritten")
func ExportConfig(dstPath string, fsys fs.FS, assetPath string, force bool) (string, error) {
	data, err := fs.ReadFile(fsys, filepath.ToSlash(assetPath))
	if err != nil {
		return "", fmt.Errorf("lecture asset embarqué %s: %w", assetPath, err)
	}

	existing, err := os.ReadFile(dstPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("lecture %s: %w", dstPath, err)
		}
		if err := ensureParent(dstPath); err != nil {
			return "", err
		}
		if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
			return "", err
		}
		return StatusWritten, nil
	}

	if bytes.Equal(existing, data) {
		return StatusUnchanged, nil
	}
	if !force {
		return StatusSkipped, nil
	}

	backup := dstPath + ".bak." + time.Now().Format("20060102T150405")
	if err := fsutil.WriteFileAtomic(backup, existing, 0o644); err != nil {
		return "", fmt.Errorf("backup failed for %s: %w", dstPath, err)
	}
	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return "", err
	}
	return StatusOverwritten, nil
}

func ensureParent(dstPath string) error {
	parent := filepath.Dir(dstPath)
	if parent == "" {
		parent = "."
	}
	st, err := os.Stat(parent)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("échec création répertoire parent %s: %w", parent, err)
			}
			return nil
		}
		return fmt.Errorf("échec test parent %s: %w", parent, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}
	return nil
}
