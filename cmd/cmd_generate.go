// cmd_generate.go - Generate Command
// Hauptfunktionen: GenerateHandler, loadMaskConfig, resolveSeed
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ollama/spanmask/envconfig"
	"github.com/ollama/spanmask/mask"
)

// errUnknownFormat - Unbekanntes Ausgabeformat
var errUnknownFormat = errors.New("unknown output format")

// GenerateHandler - Berechnet eine Span-Maske und gibt sie aus
func GenerateHandler(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "json", "grid":
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	batch, _ := cmd.Flags().GetInt("batch")
	length, _ := cmd.Flags().GetInt("length")
	shape := mask.Shape{Batch: batch, Length: length}
	if err := shape.Validate(); err != nil {
		return err
	}

	cfg, err := loadMaskConfig(cmd)
	if err != nil {
		return err
	}

	var padding *mask.Matrix
	if valid, _ := cmd.Flags().GetIntSlice("valid"); len(valid) > 0 {
		padding, err = mask.PaddingFromLengths(shape, valid)
		if err != nil {
			return err
		}
	}

	seed := resolveSeed(cmd)
	slog.Debug("generating span mask", "shape", shape, "kind", cfg.Kind, "seed", seed)

	var res *mask.Result
	if parallel, _ := cmd.Flags().GetBool("parallel"); parallel {
		workers, _ := cmd.Flags().GetInt("workers")
		if !cmd.Flags().Changed("workers") {
			workers = int(envconfig.NumParallel())
		}
		res, err = mask.GenerateParallel(cmd.Context(), seed, workers, shape, padding, cfg)
	} else {
		var g *mask.Generator
		g, err = mask.NewGenerator(cfg, mask.WithSeed(seed), mask.WithLogger(slog.Default()))
		if err != nil {
			return err
		}
		res, err = g.Generate(shape, padding)
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		return renderJSON(w, shape, seed, cfg, res)
	case "grid":
		return renderGrid(w, res)
	default:
		return renderTable(w, res)
	}
}

// loadMaskConfig - Baut die Config aus Datei, Umgebung und Flags
// Reihenfolge: Defaults < --config/SPANMASK_CONFIG < SPANMASK_* < explizite Flags
func loadMaskConfig(cmd *cobra.Command) (mask.Config, error) {
	cfg := mask.DefaultConfig()

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = envconfig.ConfigFile()
	}
	if path != "" {
		loaded, err := mask.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if kind := envconfig.Kind(); kind != "" {
		cfg.Kind = mask.Kind(kind)
	}
	if envconfig.NoOverlap() {
		cfg.NoOverlap = true
	}

	flags := cmd.Flags()
	if flags.Changed("prob") {
		prob, _ := flags.GetFloat64Slice("prob")
		cfg.Prob = prob
	}
	if flags.Changed("span-length") {
		cfg.SpanLength, _ = flags.GetInt("span-length")
	}
	if flags.Changed("kind") {
		kind, _ := flags.GetString("kind")
		cfg.Kind = mask.Kind(kind)
	}
	if flags.Changed("other") {
		cfg.Other, _ = flags.GetFloat64("other")
	}
	if flags.Changed("min-spans") {
		cfg.MinSpans, _ = flags.GetInt("min-spans")
	}
	if flags.Changed("no-overlap") {
		cfg.NoOverlap, _ = flags.GetBool("no-overlap")
	}
	if flags.Changed("min-space") {
		cfg.MinSpace, _ = flags.GetInt("min-space")
	}

	return cfg, nil
}

// resolveSeed - --seed, sonst SPANMASK_SEED, sonst zufaellig
func resolveSeed(cmd *cobra.Command) uint64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return seed
	}
	if seed, ok := envconfig.Seed(); ok {
		return seed
	}
	return rand.Uint64()
}
