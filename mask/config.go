// MODUL: config
// ZWECK: Sampling-Konfiguration fuer Span-Masken (Wahrscheinlichkeit, Span-Laenge, Verteilung)
// INPUT: Functional Options oder YAML-Datei
// OUTPUT: Config Struct mit Validierung
// NEBENEFFEKTE: LoadConfig liest eine Datei
// ABHAENGIGKEITEN: gopkg.in/yaml.v3
// HINWEISE: Prob mit einem Wert wird auf alle Zeilen gebroadcastet

package mask

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Kind - Verteilung der Span-Laengen
// ============================================================================

// Kind benennt eine registrierte Laengen-Verteilung.
type Kind string

const (
	KindStatic  Kind = "static"
	KindUniform Kind = "uniform"
	KindNormal  Kind = "normal"
	KindPoisson Kind = "poisson"
)

// ============================================================================
// Probs - Skalar oder ein Wert pro Zeile
// ============================================================================

// Probs enthaelt eine Wahrscheinlichkeit fuer alle Zeilen oder eine pro Zeile.
type Probs []float64

// UnmarshalYAML akzeptiert einen Skalar (prob: 0.5) oder eine Liste.
func (p *Probs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		*p = Probs{v}
		return nil
	}

	var vs []float64
	if err := node.Decode(&vs); err != nil {
		return err
	}
	*p = vs
	return nil
}

// ============================================================================
// Config
// ============================================================================

// Config enthaelt die Parameter fuer eine Maskierung.
type Config struct {
	// Prob ist die Masken-Wahrscheinlichkeit, ein Wert oder einer pro Zeile
	Prob Probs `yaml:"prob" json:"prob"`

	// SpanLength ist die Ziel-Laenge eines Spans
	SpanLength int `yaml:"span_length" json:"span_length"`

	// Kind bestimmt wie Span-Laengen gezogen werden
	Kind Kind `yaml:"kind" json:"kind"`

	// Other ist der zweite Verteilungsparameter (uniform: Untergrenze, normal: Standardabweichung)
	Other float64 `yaml:"other" json:"other"`

	// MinSpans ist die minimale Anzahl Spans pro Zeile
	MinSpans int `yaml:"min_spans" json:"min_spans"`

	// NoOverlap verhindert ueberlappende Spans
	NoOverlap bool `yaml:"no_overlap" json:"no_overlap"`

	// MinSpace ist der Mindestabstand zwischen Spans (nur mit NoOverlap)
	MinSpace int `yaml:"min_space" json:"min_space"`
}

// Option ist eine funktionale Option fuer Config.
type Option func(*Config)

// DefaultConfig gibt die Standard-Konfiguration zurueck.
// - Prob: 0.65
// - SpanLength: 10
// - Kind: static
// - MinSpans: 1
func DefaultConfig() Config {
	return Config{
		Prob:       Probs{0.65},
		SpanLength: 10,
		Kind:       KindStatic,
		MinSpans:   1,
	}
}

// NewConfig erstellt eine Config aus DefaultConfig und den Optionen.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithProb setzt die Wahrscheinlichkeit(en).
func WithProb(p ...float64) Option {
	return func(c *Config) {
		c.Prob = append(Probs(nil), p...)
	}
}

// WithSpanLength setzt die Ziel-Span-Laenge.
func WithSpanLength(n int) Option {
	return func(c *Config) {
		c.SpanLength = n
	}
}

// WithKind setzt die Laengen-Verteilung.
func WithKind(k Kind) Option {
	return func(c *Config) {
		c.Kind = k
	}
}

// WithOther setzt den zweiten Verteilungsparameter.
func WithOther(v float64) Option {
	return func(c *Config) {
		c.Other = v
	}
}

// WithMinSpans setzt die minimale Span-Anzahl.
func WithMinSpans(n int) Option {
	return func(c *Config) {
		c.MinSpans = n
	}
}

// WithNoOverlap aktiviert nicht-ueberlappende Platzierung mit Mindestabstand.
func WithNoOverlap(minSpace int) Option {
	return func(c *Config) {
		c.NoOverlap = true
		c.MinSpace = minSpace
	}
}

// ============================================================================
// Validierung
// ============================================================================

// Validate prueft die Konfiguration gegen einen Shape und die Default-Registry.
func (c Config) Validate(shape Shape) error {
	if err := c.validate(shape); err != nil {
		return err
	}
	if !defaultRegistry.Has(c.Kind) {
		return invalidConfig("kind", c.Kind)
	}
	return nil
}

// validate prueft alles ausser der Verteilung; die prueft Registry.Create.
func (c Config) validate(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if c.SpanLength < 1 {
		return invalidConfig("span_length", c.SpanLength)
	}
	if len(c.Prob) != 1 && len(c.Prob) != shape.Batch {
		return invalidConfig("prob", fmt.Sprintf("%d values for batch %d", len(c.Prob), shape.Batch))
	}
	if c.MinSpans < 0 {
		return invalidConfig("min_spans", c.MinSpans)
	}
	if c.MinSpace < 0 {
		return invalidConfig("min_space", c.MinSpace)
	}
	return nil
}

// probAt gibt die Wahrscheinlichkeit fuer Zeile i zurueck.
func (c Config) probAt(i int) float64 {
	if len(c.Prob) == 1 {
		return c.Prob[0]
	}
	return c.Prob[i]
}

// ============================================================================
// Laden aus Datei
// ============================================================================

// LoadConfig liest eine YAML-Datei und legt sie ueber DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read mask config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse mask config %s: %w", path, err)
	}

	return cfg, nil
}

// Save schreibt die Konfiguration als YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
