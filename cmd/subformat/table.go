package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/patrickprogramme/subformat/internal/ui"
)

// column décrit une colonne de tableau ; les colonnes numériques sont alignées à droite.
type column struct {
	title   string
	numeric bool
}

var (
	formatsColumns = []column{{title: "Format"}, {title: "Extension"}, {title: "Kind"}, {title: "Default"}}
	inspectColumns = []column{
		{title: "Video"}, {title: "Language"}, {title: "Tag"}, {title: "Source"},
		{title: "Snippets", numeric: true}, {title: "Span", numeric: true},
	}
)

// writeTable écrit rows sous forme de tableau. Cadre arrondi sur un terminal,
// ASCII simple quand la sortie est redirigée (fichier, pipe).
func writeTable(w io.Writer, cols []column, rows [][]string) error {
	if len(cols) == 0 {
		return nil
	}

	tw := table.NewWriter()
	if ui.IsTerminal(w) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, len(cols))
	configs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		header[i] = c.title
		align := text.AlignLeft
		if c.numeric {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		// lignes courtes complétées par des cellules vides
		r := make(table.Row, len(cols))
		for i := range r {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}
