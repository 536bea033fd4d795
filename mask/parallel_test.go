package mask

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGenerateParallelDeterministicAcrossWorkers(t *testing.T) {
	cfg := NewConfig(WithKind(KindNormal), WithOther(2), WithProb(0.4, 0.5, 0.6, 0.7, 0.3, 0.2))
	shape := Shape{Batch: 6, Length: 300}
	padding, err := PaddingFromLengths(shape, []int{300, 250, 200, 150, 100, 1})
	if err != nil {
		t.Fatal(err)
	}

	base, err := GenerateParallel(t.Context(), 1234, 1, shape, padding, cfg)
	if err != nil {
		t.Fatalf("GenerateParallel: %v", err)
	}

	for _, workers := range []int{2, 3, 8, 0} {
		res, err := GenerateParallel(t.Context(), 1234, workers, shape, padding, cfg)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if diff := cmp.Diff(base.Spans, res.Spans); diff != "" {
			t.Errorf("workers=%d: Spans unterscheiden sich (-1 +%d):\n%s", workers, workers, diff)
		}
		for i := range shape.Batch {
			if diff := cmp.Diff(base.Mask.Indices(i), res.Mask.Indices(i)); diff != "" {
				t.Errorf("workers=%d Zeile %d (-want +got):\n%s", workers, i, diff)
			}
		}
	}
}

func TestGenerateParallelMatchesRowSource(t *testing.T) {
	cfg := NewConfig(WithNoOverlap(2))
	shape := Shape{Batch: 3, Length: 120}

	res, err := GenerateParallel(t.Context(), 77, 2, shape, nil, cfg)
	if err != nil {
		t.Fatal(err)
	}

	// jede Zeile entspricht einem sequentiellen Lauf mit RowSource(seed, i)
	for i := range shape.Batch {
		single, err := Generate(RowSource(77, i), Shape{Batch: 1, Length: 120}, nil, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(single.Spans[0], res.Spans[i]); diff != "" {
			t.Errorf("Zeile %d (-sequentiell +parallel):\n%s", i, diff)
		}
	}
}

func TestGenerateParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := GenerateParallel(ctx, 1, 2, Shape{Batch: 16, Length: 64}, nil, NewConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("erwartet context.Canceled, bekommen %v", err)
	}
}

func TestGenerateParallelInvalidConfig(t *testing.T) {
	_, err := GenerateParallel(t.Context(), 1, 2, Shape{Batch: 2, Length: 8}, nil, NewConfig(WithKind("zipf")))
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("erwartet ErrInvalidConfiguration, bekommen %v", err)
	}
}

func TestGeneratorGenerateParallel(t *testing.T) {
	g, err := NewGenerator(NewConfig(WithKind(KindPoisson)))
	if err != nil {
		t.Fatal(err)
	}

	shape := Shape{Batch: 4, Length: 64}
	a, err := g.GenerateParallel(t.Context(), 5, 4, shape, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateParallel(t.Context(), 5, 1, shape, nil, g.Config())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Spans, b.Spans); diff != "" {
		t.Errorf("Generator und Paket-Funktion unterscheiden sich:\n%s", diff)
	}
}
