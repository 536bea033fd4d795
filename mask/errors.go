// MODUL: errors
// ZWECK: Fehler-Definitionen fuer die Span-Maskierung
// INPUT: Keine
// OUTPUT: Sentinel-Fehler und typisierte Fehler (ConfigError, RegistryError)
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: errors, fmt (stdlib)
// HINWEISE: Alle typisierten Fehler unterstuetzen errors.Is via Unwrap

package mask

import (
	"errors"
	"fmt"
)

// ============================================================================
// Sentinel-Fehler
// ============================================================================

var (
	// ErrInvalidConfiguration wird bei unbekannter Verteilung oder ungueltigen Parametern zurueckgegeben
	ErrInvalidConfiguration = errors.New("mask: invalid configuration")

	// ErrInvalidShape wird zurueckgegeben wenn Batch oder Laenge < 1 ist
	ErrInvalidShape = errors.New("mask: invalid shape")

	// ErrShapeMismatch wird zurueckgegeben wenn Padding-Maske und Shape nicht passen
	ErrShapeMismatch = errors.New("mask: padding mask does not match shape")

	// ErrKindNotRegistered wird zurueckgegeben wenn keine Verteilung unter dem Namen existiert
	ErrKindNotRegistered = errors.New("mask: length distribution not registered")
)

// ============================================================================
// ConfigError
// ============================================================================

// ConfigError beschreibt ein ungueltiges Konfigurationsfeld.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s=%v", e.Err, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// invalidConfig erzeugt einen ConfigError mit ErrInvalidConfiguration
func invalidConfig(field string, value any) error {
	return &ConfigError{Field: field, Value: value, Err: ErrInvalidConfiguration}
}

// ============================================================================
// RegistryError
// ============================================================================

// RegistryError beschreibt einen fehlgeschlagenen Registry-Zugriff.
type RegistryError struct {
	Op   string
	Name string
	Err  error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("mask registry %s %q: %v", e.Op, e.Name, e.Err)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}
