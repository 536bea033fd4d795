// cmd_utils.go - Gemeinsame Hilfsfunktionen
// Hauptfunktionen: newTable, maskRatio
package cmd

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// newTable - Tabelle ohne Rahmen im Stil von "ollama list"
func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoFormatHeaders(false)
	return table
}

// maskRatio - Anteil maskierter an gueltigen Positionen
func maskRatio(masked, valid int) float64 {
	if valid == 0 {
		return 0
	}
	return float64(masked) / float64(valid)
}
