// MODUL: registry
// ZWECK: Registry fuer Span-Laengen-Verteilungen (static, uniform, normal, poisson, eigene)
// INPUT: Kind-Name, SamplerFactory-Funktionen
// OUTPUT: LengthSampler-Instanzen
// NEBENEFFEKTE: Keine (rein speicherbasiert)
// ABHAENGIGKEITEN: sync, sort (stdlib), lengths.go
// HINWEISE: Thread-sicher durch RWMutex; DefaultRegistry enthaelt die vier Standard-Verteilungen

package mask

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
)

// LengthSampler zieht n Span-Laengen aus einer Verteilung.
type LengthSampler interface {
	Sample(rng *rand.Rand, n int) []int
}

// SamplerFactory erstellt einen LengthSampler fuer eine Config.
// Ungueltige Verteilungsparameter werden als ErrInvalidConfiguration gemeldet.
type SamplerFactory func(cfg Config) (LengthSampler, error)

// ============================================================================
// Registry - Zentrale Verteilungs-Verwaltung
// ============================================================================

// Registry verwaltet registrierte Laengen-Verteilungen.
type Registry struct {
	samplers map[Kind]SamplerFactory
	mu       sync.RWMutex
}

// NewRegistry erstellt eine neue leere Registry.
func NewRegistry() *Registry {
	return &Registry{
		samplers: make(map[Kind]SamplerFactory),
	}
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindStatic, newStaticSampler)
	r.Register(KindUniform, newUniformSampler)
	r.Register(KindNormal, newNormalSampler)
	r.Register(KindPoisson, newPoissonSampler)
	return r
}

// DefaultRegistry gibt die globale Registry zurueck.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register registriert eine Factory unter dem Namen.
// Ueberschreibt existierende Eintraege ohne Warnung.
func (r *Registry) Register(kind Kind, factory SamplerFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.samplers[kind] = factory
}

// Unregister entfernt eine Verteilung. Gibt true zurueck wenn sie existierte.
func (r *Registry) Unregister(kind Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.samplers[kind]
	delete(r.samplers, kind)
	return exists
}

// Get gibt die Factory fuer den Namen zurueck.
func (r *Registry) Get(kind Kind) (SamplerFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.samplers[kind]
	return factory, exists
}

// Has prueft ob eine Verteilung registriert ist.
func (r *Registry) Has(kind Kind) bool {
	_, exists := r.Get(kind)
	return exists
}

// List gibt alle registrierten Namen sortiert zurueck.
func (r *Registry) List() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.samplers))
	for k := range r.samplers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Create erstellt den Sampler fuer cfg.Kind.
// Unbekannte Namen liefern einen RegistryError, der sowohl ErrInvalidConfiguration
// als auch ErrKindNotRegistered erfuellt.
func (r *Registry) Create(cfg Config) (LengthSampler, error) {
	factory, exists := r.Get(cfg.Kind)
	if !exists {
		return nil, &RegistryError{
			Op:   "create",
			Name: string(cfg.Kind),
			Err:  fmt.Errorf("%w: %w", ErrInvalidConfiguration, ErrKindNotRegistered),
		}
	}
	return factory(cfg)
}
