package mask

import (
	"slices"
	"testing"
)

// ============================================================================
// Ueberlappender Pfad
// ============================================================================

func TestSampleWithoutReplacement(t *testing.T) {
	rng := newTestRand(21)

	for _, tc := range []struct{ n, k int }{{10, 10}, {10, 3}, {1, 1}, {1000, 50}, {5, 0}} {
		got := sampleWithoutReplacement(rng, tc.n, tc.k)
		if len(got) != tc.k {
			t.Fatalf("n=%d k=%d: %d Werte", tc.n, tc.k, len(got))
		}

		seen := make(map[int]bool)
		for _, v := range got {
			if v < 0 || v >= tc.n {
				t.Fatalf("n=%d: Wert %d ausserhalb", tc.n, v)
			}
			if seen[v] {
				t.Fatalf("n=%d: Wert %d doppelt", tc.n, v)
			}
			seen[v] = true
		}
	}
}

func TestPlaceOverlapping(t *testing.T) {
	rng := newTestRand(22)
	lengths := []int{4, 4, 4}

	spans := placeOverlapping(rng, 50, lengths)
	if len(spans) != 3 {
		t.Fatalf("%d Spans, erwartet 3", len(spans))
	}
	for _, s := range spans {
		if s.Length != 4 {
			t.Errorf("Span-Laenge %d, erwartet 4", s.Length)
		}
		// Starts liegen in [0, valid-minLen)
		if s.Start < 0 || s.Start >= 46 {
			t.Errorf("Start %d ausserhalb [0, 46)", s.Start)
		}
	}
}

func TestPlaceOverlappingShrinksMinLen(t *testing.T) {
	// valid - minLen = 2 <= numSpans, minLen wird auf 10-5-1 = 4 gesenkt
	for seed := range uint64(50) {
		spans := placeOverlapping(newTestRand(seed), 10, []int{8, 8, 8, 8, 8})
		if len(spans) != 5 {
			t.Fatalf("%d Spans, erwartet 5", len(spans))
		}
		for _, s := range spans {
			if s.Start < 0 || s.Start >= 6 {
				t.Fatalf("Start %d ausserhalb [0, 6)", s.Start)
			}
		}
	}

	// negatives minLen: Bereich reicht ueber valid hinaus, kein Absturz
	for seed := range uint64(50) {
		spans := placeOverlapping(newTestRand(seed), 2, []int{5, 5, 5})
		for _, s := range spans {
			if s.Start < 0 || s.Start >= 4 {
				t.Fatalf("Start %d ausserhalb [0, 4)", s.Start)
			}
		}
	}
}

// ============================================================================
// Nicht-ueberlappender Pfad
// ============================================================================

// checkGaps prueft dass sortierte Spans mindestens minSpace auseinander liegen
func checkGaps(t *testing.T, spans []Span, valid, minSpace int) {
	t.Helper()

	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b Span) int { return a.Start - b.Start })

	for i, s := range sorted {
		if s.Start < 0 || s.End() > valid {
			t.Fatalf("Span %+v ausserhalb [0, %d)", s, valid)
		}
		if i > 0 {
			prev := sorted[i-1]
			if gap := s.Start - prev.End(); gap < minSpace {
				t.Fatalf("Abstand %d zwischen %+v und %+v < %d", gap, prev, s, minSpace)
			}
		}
	}
}

func TestPlaceNonOverlappingGaps(t *testing.T) {
	tests := []struct {
		name     string
		valid    int
		lengths  []int
		minSpace int
	}{
		{"ohne Abstand", 200, []int{10, 10, 10, 10, 10, 10}, 0},
		{"Abstand 3", 200, []int{10, 10, 10, 10, 10, 10}, 3},
		{"gemischte Laengen", 300, []int{3, 17, 8, 1, 12, 5, 9}, 2},
		{"eng", 40, []int{5, 5, 5, 5, 5, 5, 5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := range uint64(100) {
				spans, dropped := placeNonOverlapping(newTestRand(seed), tt.valid, tt.lengths, tt.minSpace)
				if len(spans)+dropped != len(tt.lengths) {
					t.Fatalf("seed %d: %d platziert + %d verworfen != %d", seed, len(spans), dropped, len(tt.lengths))
				}
				checkGaps(t, spans, tt.valid, tt.minSpace)
			}
		})
	}
}

func TestPlaceNonOverlappingLargestFirst(t *testing.T) {
	spans, dropped := placeNonOverlapping(newTestRand(31), 100, []int{2, 9, 5}, 0)
	if dropped != 0 {
		t.Fatalf("%d Spans verworfen", dropped)
	}

	got := make([]int, len(spans))
	for i, s := range spans {
		got[i] = s.Length
	}
	if !slices.Equal(got, []int{9, 5, 2}) {
		t.Errorf("Reihenfolge = %v, erwartet [9 5 2]", got)
	}
}

func TestPlaceNonOverlappingInfeasible(t *testing.T) {
	// 4 Spans mit je 10+5 Platz passen nicht in 30 Positionen
	spans, dropped := placeNonOverlapping(newTestRand(32), 30, []int{10, 10, 10, 10}, 5)
	if dropped == 0 {
		t.Fatal("erwartet verworfene Spans")
	}
	if len(spans) == 0 {
		t.Fatal("mindestens ein Span sollte passen")
	}
	checkGaps(t, spans, 30, 5)

	// nichts passt: Intervall genau so gross wie der Span
	spans, dropped = placeNonOverlapping(newTestRand(33), 10, []int{10}, 0)
	if len(spans) != 0 || dropped != 1 {
		t.Errorf("spans=%v dropped=%d, erwartet keine Spans", spans, dropped)
	}
}

func TestSplitInterval(t *testing.T) {
	iv := interval{start: 0, end: 100}
	for seed := range uint64(100) {
		span, parts := splitInterval(newTestRand(seed), iv, 10, 4, 2)
		if span.Start < 0 || span.Start >= 90 {
			t.Fatalf("Start %d ausserhalb [0, 90)", span.Start)
		}
		for _, p := range parts {
			if p.size() <= 0 {
				t.Fatalf("leeres Teilintervall %+v", p)
			}
			// Teilintervalle duerfen den Span samt Abstand nicht beruehren
			if p.start < span.Start && p.end-1 > span.Start-2 {
				t.Fatalf("linkes Teilintervall %+v zu nah an %+v", p, span)
			}
			if p.start > span.Start && p.start < span.End()+2 {
				t.Fatalf("rechtes Teilintervall %+v zu nah an %+v", p, span)
			}
		}
	}
}
