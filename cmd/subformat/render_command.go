package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/patrickprogramme/subformat/internal/app"
	"github.com/patrickprogramme/subformat/internal/source"
	"github.com/patrickprogramme/subformat/internal/ui"
	"github.com/patrickprogramme/subformat/pkg/formatters"
)

// hintFlags complètent les métadonnées des pistes json3 brutes.
type hintFlags struct {
	videoID      string
	language     string
	languageCode string
	generated    bool
}

func (h *hintFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&h.videoID, "video-id", "", "Identifiant vidéo pour les pistes json3 brutes")
	cmd.Flags().StringVar(&h.language, "language", "", "Nom de la langue pour les pistes json3 brutes")
	cmd.Flags().StringVar(&h.languageCode, "language-code", "", "Code langue (BCP 47) pour les pistes json3 brutes")
	cmd.Flags().BoolVar(&h.generated, "generated", false, "Marque les pistes json3 brutes comme générées automatiquement")
}

func (h *hintFlags) hint() source.Hint {
	return source.Hint{
		VideoID:      h.videoID,
		Language:     h.language,
		LanguageCode: h.languageCode,
		IsGenerated:  h.generated,
	}
}

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var opts app.RenderOptions
	var hints hintFlags

	cmd := &cobra.Command{
		Use:   "render [fichier|url|-]...",
		Short: "Formate un ou plusieurs transcripts",
		Long: fmt.Sprintf(`Lit des transcripts (fichier, URL ou "-" pour stdin) et les formate.

Formats disponibles : %s.`, strings.Join(formatters.Names(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			opts.Inputs = args
			opts.Hint = hints.hint()

			tui := ui.NewTerminal(cmd.OutOrStdout(), cmd.ErrOrStderr())
			a := app.New(cfg, tui, ctx.log(), app.WithStdin(cmd.InOrStdin()))
			return a.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Format de sortie (défaut : default_format de la config)")
	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "", "Fichier de sortie (un seul rendu)")
	cmd.Flags().BoolVar(&opts.Batch, "batch", false, "Rendre toutes les entrées dans un seul document")
	cmd.Flags().BoolVar(&opts.Clipboard, "clipboard", false, "Copier le rendu dans le presse-papier")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Écrire sur stdout même si save_to_file est actif")
	hints.register(cmd)

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return formatters.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
