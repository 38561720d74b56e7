package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/subformat/internal/assets"
	"github.com/patrickprogramme/subformat/internal/bootstrap"
	"github.com/patrickprogramme/subformat/internal/config"
	"github.com/patrickprogramme/subformat/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	logger     hclog.Logger
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

// ensureConfig charge la config une seule fois : création depuis l'asset
// embarqué si absente, surcharges d'environnement, puis flag --log-level.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		path := c.configPath()

		asset := assets.DefaultConfigAsset
		if strings.EqualFold(filepath.Ext(path), ".toml") {
			asset = assets.DefaultTOMLConfigAsset
		}
		created, err := bootstrap.EnsureConfigPresent(path, assets.Embedded, asset)
		if err != nil {
			c.configErr = err
			return
		}

		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("config load: %w", err)
			return
		}
		cfg.ApplyEnv(os.LookupEnv)
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.LogLevel = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
		}

		c.logger = logging.New(cfg.LogLevel, cmd.ErrOrStderr())
		if created {
			c.logger.Info("configuration par défaut créée", "path", path)
		}

		warnings, err := cfg.Validate()
		for _, w := range warnings {
			c.logger.Warn(w)
		}
		if err != nil {
			c.configErr = fmt.Errorf("config invalide (%s) : %w", path, err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// configPath : flag --config, sinon subformat.yaml à côté de l'exécutable.
func (c *commandContext) configPath() string {
	if c.configFlag != nil {
		if p := strings.TrimSpace(*c.configFlag); p != "" {
			return p
		}
	}
	exePath, err := os.Executable()
	if err != nil {
		return config.DefaultConfigName
	}
	return filepath.Join(filepath.Dir(exePath), config.DefaultConfigName)
}

func (c *commandContext) log() hclog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
