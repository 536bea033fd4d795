// MODUL: parallel
// ZWECK: Parallele Maskierung mit einer unabhaengigen Zufallsquelle pro Zeile
// INPUT: Context, Seed, Worker-Anzahl, Shape, Padding-Maske, Config
// OUTPUT: Result, identisch fuer gleichen Seed unabhaengig von der Worker-Anzahl
// NEBENEFFEKTE: Startet bis zu workers Goroutinen
// ABHAENGIGKEITEN: golang.org/x/sync/errgroup, math/rand/v2
// HINWEISE: Zeile i nutzt rand.NewPCG(seed, i); Goroutinen schreiben nur in ihre eigene Zeile

package mask

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// GenerateParallel berechnet eine Span-Maske mit der Default-Registry.
// workers <= 0 bedeutet runtime.NumCPU().
func GenerateParallel(ctx context.Context, seed uint64, workers int, shape Shape, padding *Matrix, cfg Config) (*Result, error) {
	return generateParallel(ctx, seed, workers, shape, padding, cfg, defaultRegistry, slog.Default())
}

// RowSource gibt die Zufallsquelle zurueck, die GenerateParallel fuer Zeile row verwendet.
func RowSource(seed uint64, row int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(row)))
}

func generateParallel(ctx context.Context, seed uint64, workers int, shape Shape, padding *Matrix, cfg Config, reg *Registry, logger *slog.Logger) (*Result, error) {
	res, sampler, err := prepare(shape, padding, cfg, reg)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, valid := range res.Valid {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res.Spans[i] = computeRow(RowSource(seed, i), logger, i, valid, cfg.probAt(i), cfg, sampler)
			res.apply(i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("span mask generated", "shape", shape, "kind", cfg.Kind, "workers", workers, "masked", res.Mask.Count())
	return res, nil
}
