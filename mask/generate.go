// MODUL: generate
// ZWECK: SpanMaskGenerator - berechnet zufaellige Span-Masken fuer einen Batch
// INPUT: *rand.Rand, Shape, optionale Padding-Maske, Config
// OUTPUT: Result (Masken-Matrix, platzierte Spans, gueltige Laengen)
// NEBENEFFEKTE: Verbraucht Zufallszahlen aus der uebergebenen Quelle
// ABHAENGIGKEITEN: math/rand/v2, log/slog, logutil
// HINWEISE: Zeilen sind unabhaengig; true nur an Positionen < gueltige Laenge

package mask

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/ollama/spanmask/logutil"
)

// Result ist das Ergebnis einer Maskierung.
type Result struct {
	// Mask ist die Ausgabe-Maske, true = maskiert
	Mask *Matrix

	// Spans enthaelt pro Zeile die platzierten Spans vor dem Abschneiden
	Spans [][]Span

	// Valid enthaelt die gueltige Laenge pro Zeile
	Valid []int
}

// ============================================================================
// Generate - Einstiegspunkt
// ============================================================================

// Generate berechnet eine Span-Maske mit der Default-Registry.
// Eine unbekannte Verteilung liefert ErrInvalidConfiguration, bevor
// Zufallszahlen verbraucht werden.
func Generate(rng *rand.Rand, shape Shape, padding *Matrix, cfg Config) (*Result, error) {
	return generate(rng, shape, padding, cfg, defaultRegistry, slog.Default())
}

func generate(rng *rand.Rand, shape Shape, padding *Matrix, cfg Config, reg *Registry, logger *slog.Logger) (*Result, error) {
	res, sampler, err := prepare(shape, padding, cfg, reg)
	if err != nil {
		return nil, err
	}

	for i, valid := range res.Valid {
		res.Spans[i] = computeRow(rng, logger, i, valid, cfg.probAt(i), cfg, sampler)
		res.apply(i)
	}

	logger.Debug("span mask generated", "shape", shape, "kind", cfg.Kind, "masked", res.Mask.Count())
	return res, nil
}

// prepare validiert die Eingaben und legt das leere Ergebnis an.
func prepare(shape Shape, padding *Matrix, cfg Config, reg *Registry) (*Result, LengthSampler, error) {
	if err := cfg.validate(shape); err != nil {
		return nil, nil, err
	}

	sampler, err := reg.Create(cfg)
	if err != nil {
		return nil, nil, err
	}

	valid, err := validLengths(shape, padding)
	if err != nil {
		return nil, nil, err
	}

	return &Result{
		Mask:  NewMatrix(shape),
		Spans: make([][]Span, shape.Batch),
		Valid: valid,
	}, sampler, nil
}

// apply schreibt die Spans von Zeile i in die Maske und verwirft Positionen >= Valid[i].
func (r *Result) apply(i int) {
	row := r.Mask.Row(i)
	valid := r.Valid[i]
	for _, span := range r.Spans[i] {
		for j := max(span.Start, 0); j < min(span.End(), valid); j++ {
			row[j] = true
		}
	}
}

// ============================================================================
// Zeilen-Algorithmus
// ============================================================================

// numSpans berechnet floor(prob*valid/spanLength + U) mit U in [0,1),
// mindestens minSpans und nie negativ.
func numSpans(rng *rand.Rand, prob float64, valid int, cfg Config) int {
	n := int(math.Floor(prob*float64(valid)/float64(cfg.SpanLength) + rng.Float64()))
	return max(n, cfg.MinSpans, 0)
}

// computeRow zieht die Span-Laengen einer Zeile und platziert sie.
func computeRow(rng *rand.Rand, logger *slog.Logger, row, valid int, prob float64, cfg Config, sampler LengthSampler) []Span {
	if valid < 1 {
		return nil
	}

	n := numSpans(rng, prob, valid, cfg)
	if n == 0 {
		return nil
	}

	lengths := sampler.Sample(rng, n)

	sum := 0
	for _, l := range lengths {
		sum += l
	}
	if sum == 0 {
		lengths[0] = min(cfg.SpanLength, valid-1)
	}

	if !cfg.NoOverlap {
		spans := placeOverlapping(rng, valid, lengths)
		logger.Log(context.TODO(), logutil.LevelTrace, "spans placed", "row", row, "valid", valid, "spans", len(spans))
		return spans
	}

	spans, dropped := placeNonOverlapping(rng, valid, lengths, cfg.MinSpace)
	if dropped > 0 {
		logger.Debug("not enough room for all spans", "row", row, "valid", valid, "placed", len(spans), "dropped", dropped, "min_space", cfg.MinSpace)
	}
	logger.Log(context.TODO(), logutil.LevelTrace, "spans placed", "row", row, "valid", valid, "spans", len(spans))
	return spans
}

// ============================================================================
// Generator - Config, Quelle und Registry gebuendelt
// ============================================================================

// Generator buendelt eine Config mit einer Zufallsquelle.
// Aufrufe von Generate sind durch einen Mutex serialisiert.
type Generator struct {
	cfg      Config
	rng      *rand.Rand
	registry *Registry
	logger   *slog.Logger
	mu       sync.Mutex
}

// GeneratorOption ist eine funktionale Option fuer Generator.
type GeneratorOption func(*Generator)

// WithSeed setzt eine deterministische PCG-Quelle.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithSource setzt eine beliebige Zufallsquelle.
func WithSource(src rand.Source) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(src)
	}
}

// WithRegistry setzt die Registry fuer Laengen-Verteilungen.
func WithRegistry(r *Registry) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.registry = r
		}
	}
}

// WithLogger setzt den Logger.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator erstellt einen Generator. Ohne WithSeed/WithSource wird
// eine zufaellig geseedete PCG-Quelle verwendet.
func NewGenerator(cfg Config, opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		cfg:      cfg,
		registry: defaultRegistry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if _, err := g.registry.Create(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// Config gibt die Konfiguration des Generators zurueck.
func (g *Generator) Config() Config { return g.cfg }

// Generate berechnet eine Maske mit der Quelle des Generators.
func (g *Generator) Generate(shape Shape, padding *Matrix) (*Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return generate(g.rng, shape, padding, g.cfg, g.registry, g.logger)
}

// GenerateParallel verteilt die Zeilen auf workers Goroutinen, jede Zeile mit eigener Quelle aus seed.
func (g *Generator) GenerateParallel(ctx context.Context, seed uint64, workers int, shape Shape, padding *Matrix) (*Result, error) {
	return generateParallel(ctx, seed, workers, shape, padding, g.cfg, g.registry, g.logger)
}
