package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/patrickprogramme/subformat/internal/app"
	"github.com/patrickprogramme/subformat/internal/ui"
	"github.com/patrickprogramme/subformat/pkg/model"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var snippets bool
	var hints hintFlags

	cmd := &cobra.Command{
		Use:   "inspect [fichier|url|-]...",
		Short: "Résume le contenu des transcripts sans les formater",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			tui := ui.NewTerminal(cmd.OutOrStdout(), cmd.ErrOrStderr())
			a := app.New(cfg, tui, ctx.log(), app.WithStdin(cmd.InOrStdin()))

			ts, err := a.LoadInputs(cmd.Context(), args, hints.hint())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if snippets {
				for _, t := range ts {
					for _, s := range t.All() {
						fmt.Fprintf(out, "%.2f\t%.2f\t%s\n", s.Start, s.Duration, s.Text)
					}
				}
				return nil
			}

			rows := make([][]string, 0, len(ts))
			for _, t := range ts {
				rows = append(rows, inspectRow(t))
			}
			return writeTable(out, inspectColumns, rows)
		},
	}

	cmd.Flags().BoolVar(&snippets, "snippets", false, "Afficher chaque extrait (début, durée, texte)")
	hints.register(cmd)
	return cmd
}

func inspectRow(t model.FetchedTranscript) []string {
	return []string{
		t.VideoID,
		t.Language,
		canonicalTag(t.LanguageCode),
		string(t.Source()),
		strconv.Itoa(t.Len()),
		fmt.Sprintf("%.2fs", t.Duration()),
	}
}

// canonicalTag retourne la forme BCP 47 canonique du code, "?" si invalide.
func canonicalTag(code string) string {
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "?"
	}
	return tag.String()
}
