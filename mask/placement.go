// MODUL: placement
// ZWECK: Platzierung von Spans innerhalb einer Zeile (ueberlappend / nicht-ueberlappend)
// INPUT: *rand.Rand, gueltige Laenge, gezogene Span-Laengen, Mindestabstand
// OUTPUT: []Span (Start, Laenge) vor dem Abschneiden auf die gueltige Laenge
// NEBENEFFEKTE: Verbraucht Zufallszahlen aus der uebergebenen Quelle
// ABHAENGIGKEITEN: gonum.org/v1/gonum/stat/distuv (Categorical), math/rand/v2
// HINWEISE: Nicht-ueberlappender Pfad arbeitet mit expliziter Worklist freier Intervalle

package mask

import (
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"
)

// Span ist ein platzierter Span. Positionen ab der gueltigen Laenge
// werden beim Schreiben der Maske verworfen.
type Span struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// End gibt die exklusive Endposition zurueck.
func (s Span) End() int { return s.Start + s.Length }

// interval ist ein freier Bereich [start, end).
type interval struct {
	start, end int
}

func (iv interval) size() int { return iv.end - iv.start }

// ============================================================================
// Ueberlappender Pfad
// ============================================================================

// placeOverlapping waehlt len(lengths) verschiedene Startpositionen
// aus [0, valid-minLen) und ordnet sie den Laengen der Reihe nach zu.
//
// Wenn valid-minLen <= numSpans, wird minLen auf valid-numSpans-1 gesenkt.
// Das kann negativ werden; der Bereich ist dann numSpans+1 breit und reicht
// ueber valid hinaus. Solche Positionen fallen beim Abschneiden weg.
func placeOverlapping(rng *rand.Rand, valid int, lengths []int) []Span {
	numSpans := len(lengths)
	minLen := slices.Min(lengths)
	if valid-minLen <= numSpans {
		minLen = valid - numSpans - 1
	}

	starts := sampleWithoutReplacement(rng, valid-minLen, numSpans)

	spans := make([]Span, numSpans)
	for j, start := range starts {
		spans[j] = Span{Start: start, Length: lengths[j]}
	}
	return spans
}

// sampleWithoutReplacement zieht k verschiedene Werte aus [0, n) per
// partiellem Fisher-Yates. Vertauschungen liegen in einer Map, damit n
// nicht materialisiert werden muss. Erfordert k <= n.
func sampleWithoutReplacement(rng *rand.Rand, n, k int) []int {
	swapped := make(map[int]int, k)
	lookup := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	out := make([]int, k)
	for i := range k {
		j := i + rng.IntN(n-i)
		out[i] = lookup(j)
		swapped[j] = lookup(i)
	}
	return out
}

// ============================================================================
// Nicht-ueberlappender Pfad
// ============================================================================

// placeNonOverlapping platziert die Laengen absteigend in freie Intervalle.
// Ein Intervall wird mit Gewicht proportional zu seiner Groesse gewaehlt,
// sofern es length+minSpace aufnehmen kann. Passt ein Span nirgends mehr,
// werden er und alle kleineren verworfen; dropped zaehlt sie.
func placeNonOverlapping(rng *rand.Rand, valid int, lengths []int, minSpace int) (spans []Span, dropped int) {
	minLength := slices.Min(lengths)

	sorted := slices.Clone(lengths)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	free := []interval{{start: 0, end: valid}}
	for i, length := range sorted {
		weights := make([]float64, len(free))
		var total float64
		for j, iv := range free {
			if fits(iv, length, minSpace) {
				weights[j] = float64(iv.size())
				total += weights[j]
			}
		}
		if total == 0 {
			return spans, len(sorted) - i
		}

		c := int(distuv.NewCategorical(weights, rng).Rand())
		chosen := free[c]
		free = slices.Delete(free, c, c+1)

		span, parts := splitInterval(rng, chosen, length, minLength, minSpace)
		spans = append(spans, span)
		free = append(free, parts...)
	}
	return spans, 0
}

// fits prueft ob iv einen Span der Laenge length mit Abstand minSpace aufnimmt.
// Der Startbereich [start, end-length) darf nicht leer sein, daher ist bei
// minSpace == 0 ein Intervall genau der Span-Laenge zu klein.
func fits(iv interval, length, minSpace int) bool {
	return iv.size() >= length+minSpace && iv.size() > length
}

// splitInterval legt einen Span zufaellig in iv und gibt die verbleibenden
// Teilintervalle zurueck, die noch einen Span der Laenge keep aufnehmen koennen.
// Der Start liegt in [iv.start, iv.end-length), iv muss fits erfuellen.
func splitInterval(rng *rand.Rand, iv interval, length, keep, minSpace int) (Span, []interval) {
	s, e := iv.start, iv.end
	start := s + rng.IntN(e-length-s)

	var parts []interval
	if start-s-minSpace >= keep {
		parts = append(parts, interval{start: s, end: start - minSpace + 1})
	}
	if e-start-keep-minSpace > keep {
		parts = append(parts, interval{start: start + length + minSpace, end: e})
	}

	// leere Intervalle koennen nie gewaehlt werden
	parts = slices.DeleteFunc(parts, func(iv interval) bool { return iv.size() <= 0 })

	return Span{Start: start, Length: length}, parts
}
