// Package mask - Zufaellige Span-Masken fuer Masked-Pretraining.
//
// MODUL: matrix
// ZWECK: Shape und boolesche Matrix fuer Padding- und Ausgabe-Masken
// INPUT: Batch-Groesse, Sequenzlaenge, optionale gonum-Matrizen
// OUTPUT: Matrix (row-major []bool), Export nach *mat.Dense
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: gonum.org/v1/gonum/mat
// HINWEISE: true in einer Padding-Maske markiert gueltige (nicht gepaddete) Positionen
package mask

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ============================================================================
// Shape
// ============================================================================

// Shape beschreibt die Dimensionen (Batch, Length) einer Maske.
type Shape struct {
	Batch  int
	Length int
}

// Validate prueft dass beide Dimensionen >= 1 sind.
func (s Shape) Validate() error {
	if s.Batch < 1 || s.Length < 1 {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidShape, s.Batch, s.Length)
	}
	return nil
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Batch, s.Length)
}

// ============================================================================
// Matrix
// ============================================================================

// Matrix ist eine boolesche Matrix im Row-Major Layout.
type Matrix struct {
	rows, cols int
	data       []bool
}

// NewMatrix erstellt eine Matrix mit allen Werten false.
func NewMatrix(shape Shape) *Matrix {
	return &Matrix{
		rows: shape.Batch,
		cols: shape.Length,
		data: make([]bool, shape.Batch*shape.Length),
	}
}

// Ones erstellt eine Matrix mit allen Werten true.
func Ones(shape Shape) *Matrix {
	m := NewMatrix(shape)
	for i := range m.data {
		m.data[i] = true
	}
	return m
}

// PaddingFromLengths erstellt eine Padding-Maske, deren Zeile i auf [0, lengths[i]) true ist.
// Laengen ausserhalb [0, shape.Length] werden abgeschnitten.
func PaddingFromLengths(shape Shape, lengths []int) (*Matrix, error) {
	if len(lengths) != shape.Batch {
		return nil, fmt.Errorf("%w: %d lengths for batch %d", ErrShapeMismatch, len(lengths), shape.Batch)
	}

	m := NewMatrix(shape)
	for i, n := range lengths {
		n = max(0, min(n, shape.Length))
		row := m.Row(i)
		for j := range n {
			row[j] = true
		}
	}
	return m, nil
}

// MatrixFromDense konvertiert eine gonum-Matrix; Werte != 0 werden true.
func MatrixFromDense(d mat.Matrix) *Matrix {
	r, c := d.Dims()
	m := NewMatrix(Shape{Batch: r, Length: c})
	for i := range r {
		for j := range c {
			m.data[i*c+j] = d.At(i, j) != 0
		}
	}
	return m
}

// Dims gibt (rows, cols) zurueck.
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// Shape gibt die Dimensionen als Shape zurueck.
func (m *Matrix) Shape() Shape { return Shape{Batch: m.rows, Length: m.cols} }

// At gibt den Wert an Position (i, j) zurueck.
func (m *Matrix) At(i, j int) bool { return m.data[i*m.cols+j] }

// Set setzt den Wert an Position (i, j).
func (m *Matrix) Set(i, j int, v bool) { m.data[i*m.cols+j] = v }

// Row gibt Zeile i als Slice zurueck (teilt Speicher mit der Matrix).
func (m *Matrix) Row(i int) []bool {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// RowCount zaehlt die true-Werte in Zeile i.
func (m *Matrix) RowCount(i int) int {
	n := 0
	for _, v := range m.Row(i) {
		if v {
			n++
		}
	}
	return n
}

// Count zaehlt alle true-Werte.
func (m *Matrix) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

// Indices gibt die true-Spalten von Zeile i aufsteigend zurueck.
func (m *Matrix) Indices(i int) []int {
	var idx []int
	for j, v := range m.Row(i) {
		if v {
			idx = append(idx, j)
		}
	}
	return idx
}

// Dense exportiert die Matrix als 0/1 *mat.Dense.
func (m *Matrix) Dense() *mat.Dense {
	vals := make([]float64, len(m.data))
	for i, v := range m.data {
		if v {
			vals[i] = 1
		}
	}
	return mat.NewDense(m.rows, m.cols, vals)
}

// validLengths ermittelt die gueltige Laenge pro Zeile.
// Ohne Padding-Maske ist jede Zeile shape.Length lang.
func validLengths(shape Shape, padding *Matrix) ([]int, error) {
	lengths := make([]int, shape.Batch)
	if padding == nil {
		for i := range lengths {
			lengths[i] = shape.Length
		}
		return lengths, nil
	}

	if padding.rows != shape.Batch || padding.cols != shape.Length {
		return nil, fmt.Errorf("%w: padding %v, shape %v", ErrShapeMismatch, padding.Shape(), shape)
	}

	for i := range lengths {
		lengths[i] = padding.RowCount(i)
	}
	return lengths, nil
}
