// cmd_list.go - Auflistung von Verteilungen und Umgebungsvariablen
// Hauptfunktionen: KindsHandler, EnvHandler
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ollama/spanmask/envconfig"
	"github.com/ollama/spanmask/mask"
)

// kindDescriptions - Kurzbeschreibung der Standard-Verteilungen
var kindDescriptions = map[mask.Kind]string{
	mask.KindStatic:  "every span has span-length",
	mask.KindUniform: "integer uniform in [other, 2*span-length]",
	mask.KindNormal:  "round(N(span-length, other)), at least 1",
	mask.KindPoisson: "round(Poisson(span-length))",
}

// KindsHandler - Listet alle registrierten Laengen-Verteilungen auf
func KindsHandler(cmd *cobra.Command, args []string) error {
	var data [][]string
	for _, kind := range mask.DefaultRegistry().List() {
		data = append(data, []string{string(kind), kindDescriptions[kind]})
	}

	table := newTable(cmd.OutOrStdout(), []string{"KIND", "LENGTHS"})
	table.AppendBulk(data)
	table.Render()

	return nil
}

// EnvHandler - Zeigt die aktuelle Umgebungskonfiguration an
func EnvHandler(cmd *cobra.Command, args []string) error {
	vars := envconfig.AsMap()

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var data [][]string
	for _, name := range names {
		v := vars[name]
		data = append(data, []string{v.Name, fmt.Sprintf("%v", v.Value), v.Description})
	}

	table := newTable(cmd.OutOrStdout(), []string{"NAME", "VALUE", "DESCRIPTION"})
	table.AppendBulk(data)
	table.Render()

	return nil
}
