package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/patrickprogramme/subformat/internal/assets"
	"github.com/patrickprogramme/subformat/internal/bootstrap"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Outils de configuration",
	}

	configCmd.AddCommand(newConfigInitCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Écrit le fichier de configuration d'exemple",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = ctx.configPath()
			}

			asset := assets.DefaultConfigAsset
			if strings.EqualFold(filepath.Ext(target), ".toml") {
				asset = assets.DefaultTOMLConfigAsset
			}
			status, err := bootstrap.ExportConfig(target, assets.Embedded, asset, force)
			if err != nil {
				return fmt.Errorf("écriture de la configuration d'exemple : %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", target, status)
			if status == bootstrap.StatusSkipped {
				fmt.Fprintln(out, "Le fichier existant diffère de l'exemple (utiliser --force pour le remplacer, une sauvegarde est conservée).")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination du fichier (défaut : --config ou à côté de l'exécutable)")
	cmd.Flags().BoolVar(&force, "force", false, "Remplacer un fichier existant différent")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Affiche la configuration effective (fichier + environnement + flags)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			b, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("encodage de la configuration : %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", cfg.Path())
			_, err = out.Write(b)
			return err
		},
	}
}
