// config.go - Haupt-Konfigurationsfunktionen fuer spanmask
//
// Dieses Modul enthaelt:
// - LogLevel: Gibt Log-Level zurueck (SPANMASK_DEBUG)
// - Seed: Gibt den Zufalls-Seed zurueck (SPANMASK_SEED)
// - Var: Liest eine Environment-Variable
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Defaults fuer Maskierung und Parallelitaet
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via SPANMASK_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("SPANMASK_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Seed gibt den Seed fuer die Zufallsquelle zurueck
// Konfigurierbar via SPANMASK_SEED
// ok ist false wenn die Variable fehlt oder ungueltig ist (dann zufaellig seeden)
func Seed() (seed uint64, ok bool) {
	s := Var("SPANMASK_SEED")
	if s == "" {
		return 0, false
	}

	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		slog.Warn("invalid environment variable, ignoring", "key", "SPANMASK_SEED", "value", s)
		return 0, false
	}
	return seed, true
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
