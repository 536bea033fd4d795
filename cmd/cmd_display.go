// cmd_display.go - Display und Output-Funktionen
// Hauptfunktionen: renderTable, renderJSON, renderGrid
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"gonum.org/v1/gonum/stat"

	"github.com/ollama/spanmask/mask"
)

// renderTable - Zusammenfassung pro Zeile
func renderTable(w io.Writer, res *mask.Result) error {
	var data [][]string
	ratios := make([]float64, 0, len(res.Valid))

	for i, valid := range res.Valid {
		masked := res.Mask.RowCount(i)
		ratio := maskRatio(masked, valid)
		ratios = append(ratios, ratio)

		data = append(data, []string{
			strconv.Itoa(i),
			strconv.Itoa(valid),
			strconv.Itoa(len(res.Spans[i])),
			strconv.Itoa(masked),
			strconv.FormatFloat(ratio, 'f', 3, 64),
		})
	}

	table := newTable(w, []string{"ROW", "VALID", "SPANS", "MASKED", "RATIO"})
	table.AppendBulk(data)
	table.Render()

	mean, std := stat.MeanStdDev(ratios, nil)
	if len(ratios) < 2 {
		std = 0
	}
	_, err := fmt.Fprintf(w, "\nmasked %d positions, mean ratio %.3f (std %.3f)\n", res.Mask.Count(), mean, std)
	return err
}

// rowJSON - JSON-Darstellung einer Zeile
type rowJSON struct {
	Valid  int         `json:"valid"`
	Spans  []mask.Span `json:"spans"`
	Masked []int       `json:"masked"`
}

// resultJSON - JSON-Darstellung eines Ergebnisses
type resultJSON struct {
	Batch  int         `json:"batch"`
	Length int         `json:"length"`
	Seed   uint64      `json:"seed"`
	Config mask.Config `json:"config"`
	Rows   []rowJSON   `json:"rows"`
}

// renderJSON - Vollstaendiges Ergebnis als JSON
func renderJSON(w io.Writer, shape mask.Shape, seed uint64, cfg mask.Config, res *mask.Result) error {
	out := resultJSON{
		Batch:  shape.Batch,
		Length: shape.Length,
		Seed:   seed,
		Config: cfg,
		Rows:   make([]rowJSON, len(res.Valid)),
	}

	for i, valid := range res.Valid {
		spans := res.Spans[i]
		if spans == nil {
			spans = []mask.Span{}
		}
		masked := res.Mask.Indices(i)
		if masked == nil {
			masked = []int{}
		}
		out.Rows[i] = rowJSON{Valid: valid, Spans: spans, Masked: masked}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// renderGrid - Maske als Zeichenraster: '#' maskiert, '.' gueltig, ' ' Padding
// Im Terminal wird auf die Fensterbreite gekuerzt.
func renderGrid(w io.Writer, res *mask.Result) error {
	_, cols := res.Mask.Dims()

	width := cols
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if termWidth, _, err := term.GetSize(int(f.Fd())); err == nil && termWidth > 8 {
			width = min(cols, termWidth-6)
		}
	}

	var sb strings.Builder
	for i, valid := range res.Valid {
		sb.Reset()
		fmt.Fprintf(&sb, "%4d ", i)
		for j := range width {
			switch {
			case res.Mask.At(i, j):
				sb.WriteByte('#')
			case j < valid:
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
		if width < cols {
			sb.WriteString("…")
		}
		sb.WriteByte('\n')

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
