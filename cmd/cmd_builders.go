// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newGenerateCmd, newKindsCmd, newEnvCmd
package cmd

import (
	"github.com/spf13/cobra"
)

// newGenerateCmd - Erstellt den generate Command
func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a span mask for a batch",
		Args:  cobra.NoArgs,
		RunE:  GenerateHandler,
	}

	generateCmd.Flags().Int("batch", 4, "Number of sequences in the batch")
	generateCmd.Flags().Int("length", 500, "Sequence length")
	generateCmd.Flags().IntSlice("valid", nil, "Valid (non-padding) length per row, comma separated")
	generateCmd.Flags().Float64Slice("prob", nil, "Mask probability, one value or one per row")
	generateCmd.Flags().Int("span-length", 10, "Target span length")
	generateCmd.Flags().String("kind", "static", "Span length distribution (static, uniform, normal, poisson)")
	generateCmd.Flags().Float64("other", 0, "Secondary distribution parameter (uniform: lower bound, normal: stddev)")
	generateCmd.Flags().Int("min-spans", 1, "Minimum number of spans per row")
	generateCmd.Flags().Bool("no-overlap", false, "Place spans without overlap")
	generateCmd.Flags().Int("min-space", 0, "Minimum gap between spans (with --no-overlap)")
	generateCmd.Flags().String("config", "", "YAML mask configuration file")
	generateCmd.Flags().Uint64("seed", 0, "Seed for the random source")
	generateCmd.Flags().Bool("parallel", false, "Generate rows in parallel with one random stream per row")
	generateCmd.Flags().Int("workers", 0, "Number of parallel workers (default SPANMASK_NUM_PARALLEL or number of CPUs)")
	generateCmd.Flags().StringP("format", "f", "table", "Output format (table, json, grid)")

	return generateCmd
}

// newKindsCmd - Erstellt den kinds Command
func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List span length distributions",
		Args:  cobra.NoArgs,
		RunE:  KindsHandler,
	}
}

// newEnvCmd - Erstellt den env Command
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show environment configuration",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}
}
