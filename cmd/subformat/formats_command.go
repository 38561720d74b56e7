package main

import (
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/subformat/pkg/formatters"
	"github.com/patrickprogramme/subformat/pkg/model"
)

func newFormatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "Liste les formats disponibles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}

			rows := make([][]string, 0)
			for _, name := range formatters.Names() {
				f := model.Format(name)
				rows = append(rows, []string{
					name,
					f.Extension(),
					formatKind(f),
					yesNo(name == cfg.DefaultFormat),
				})
			}
			return writeTable(cmd.OutOrStdout(), formatsColumns, rows)
		},
	}
}

func formatKind(f model.Format) string {
	switch {
	case f.IsSubtitle():
		return "subtitle"
	case f.IsStructured():
		return "structured"
	default:
		return "plain"
	}
}
