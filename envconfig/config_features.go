// config_features.go - Defaults fuer Maskierung und Parallelitaet
//
// Dieses Modul enthaelt:
// - Standard-Verteilung und Config-Datei
// - Parallelitaets-Einstellungen
package envconfig

// =============================================================================
// Maskierungs-Defaults
// =============================================================================

var (
	// ConfigFile ist der Pfad zu einer YAML-Maskenkonfiguration
	ConfigFile = String("SPANMASK_CONFIG")

	// Kind ueberschreibt die Standard-Verteilung der Span-Laengen
	Kind = String("SPANMASK_KIND")

	// NoOverlap aktiviert standardmaessig nicht-ueberlappende Platzierung
	NoOverlap = Bool("SPANMASK_NO_OVERLAP")
)

// =============================================================================
// Parallelitaets-Einstellungen
// =============================================================================

var (
	// NumParallel setzt die Anzahl paralleler Worker
	// Konfigurierbar via SPANMASK_NUM_PARALLEL
	// 0 = Anzahl CPU-Kerne
	NumParallel = Uint("SPANMASK_NUM_PARALLEL", 0)
)
