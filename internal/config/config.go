package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/patrickprogramme/subformat/internal/assets"
	"github.com/patrickprogramme/subformat/internal/fsutil"
)

const (
	CurrentConfigVersion = 2
	DefaultConfigName    = "subformat.yaml"

	defaultFormat       = "pretty"
	defaultLogLevel     = "warn"
	defaultFetchTimeout = 15
	defaultFetchMax     = 10_000_000
)

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir" toml:"output_dir"`

	// Rendu
	DefaultFormat string `yaml:"default_format" toml:"default_format"`

	// Sorties
	SaveToFile      bool `yaml:"save_to_file" toml:"save_to_file"`
	SaveInSubdir    bool `yaml:"save_in_subdir" toml:"save_in_subdir"`
	Overwrite       bool `yaml:"overwrite" toml:"overwrite"`
	CopyToClipboard bool `yaml:"copy_to_clipboard" toml:"copy_to_clipboard"`

	// Journalisation
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// Lecture des transcripts servis par URL
	Fetch struct {
		TimeoutSec int   `yaml:"timeout_sec" toml:"timeout_sec"`
		MaxBytes   int64 `yaml:"max_bytes" toml:"max_bytes"`
	} `yaml:"fetch" toml:"fetch"`

	// Ancienne clé (version 1), reprise par la migration
	TranscriptFormat string `yaml:"transcript_format,omitempty" toml:"transcript_format,omitempty"`

	ConfigVersion int `yaml:"config_version" toml:"config_version"`

	configFilePath string
}

// Default retourne la configuration par défaut (fallback si l'asset embarqué est manquant)
func Default() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "."

	// Rendu
	c.DefaultFormat = defaultFormat

	// Sorties
	c.SaveToFile = false
	c.SaveInSubdir = false
	c.Overwrite = false
	c.CopyToClipboard = false

	// Journalisation
	c.LogLevel = defaultLogLevel

	// Lecture par URL
	c.Fetch.TimeoutSec = defaultFetchTimeout
	c.Fetch.MaxBytes = defaultFetchMax

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Path retourne le chemin du fichier chargé ("" si config par défaut).
func (c *Config) Path() string {
	return c.configFilePath
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets.
// Le format (YAML ou TOML) est choisi d'après l'extension.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigName
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	cfg, err := Parse(data, isTOML(path))
	if err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
	}

	return cfg, nil
}

// Parse déserialise data par-dessus les valeurs par défaut (les champs absents
// conservent leur valeur par défaut) puis normalise.
func Parse(data []byte, asTOML bool) (*Config, error) {
	cfg := Default()
	// un fichier sans config_version est considéré comme version 1
	cfg.ConfigVersion = 1

	if asTOML {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else {
		// corriger les chemins Windows avec des backslashes
		data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.normalizeConfig()
	return cfg, nil
}

// Marshal sérialise la config dans le format correspondant à son fichier.
func (c *Config) Marshal() ([]byte, error) {
	if isTOML(c.configFilePath) {
		return toml.Marshal(c)
	}
	return yaml.Marshal(c)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	asset := assets.DefaultConfigAsset
	if isTOML(dstPath) {
		asset = assets.DefaultTOMLConfigAsset
	}
	b, err := assets.Embedded.ReadFile(asset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.OutputDir = filepath.Clean(c.OutputDir)

	// Trim and normalize strings
	c.DefaultFormat = strings.TrimSpace(strings.ToLower(c.DefaultFormat))
	if c.DefaultFormat == "" {
		c.DefaultFormat = defaultFormat
	}
	c.LogLevel = strings.TrimSpace(strings.ToLower(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.Fetch.TimeoutSec <= 0 {
		c.Fetch.TimeoutSec = defaultFetchTimeout
	}
	if c.Fetch.MaxBytes <= 0 {
		c.Fetch.MaxBytes = defaultFetchMax
	}
}

// Variables d'environnement prises en compte par ApplyEnv.
const (
	EnvFormat    = "SUBFORMAT_FORMAT"
	EnvOutputDir = "SUBFORMAT_OUTPUT_DIR"
	EnvLogLevel  = "SUBFORMAT_LOG_LEVEL"
)

// ApplyEnv applique les surcharges d'environnement (éventuellement chargées
// depuis un .env par l'appelant), puis re-normalise.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvFormat); ok && strings.TrimSpace(v) != "" {
		c.DefaultFormat = v
	}
	if v, ok := lookup(EnvOutputDir); ok && strings.TrimSpace(v) != "" {
		c.OutputDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		c.LogLevel = v
	}
	c.normalizeConfig()
}
