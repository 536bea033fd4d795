package mask

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================================
// Registry Tests
// ============================================================================

func TestDefaultRegistryKinds(t *testing.T) {
	got := DefaultRegistry().List()
	want := []Kind{KindNormal, KindPoisson, KindStatic, KindUniform}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() (-want +got):\n%s", diff)
	}
}

// fixedSampler liefert immer dieselben Laengen
type fixedSampler []int

func (f fixedSampler) Sample(_ *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = f[i%len(f)]
	}
	return out
}

func TestRegistryRegisterUnregister(t *testing.T) {
	r := NewRegistry()
	if r.Has("fixed") {
		t.Fatal("leere Registry sollte keine Eintraege haben")
	}

	r.Register("fixed", func(Config) (LengthSampler, error) { return fixedSampler{3}, nil })
	if !r.Has("fixed") {
		t.Fatal("Register hat keinen Eintrag angelegt")
	}

	s, err := r.Create(Config{Kind: "fixed"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if diff := cmp.Diff([]int{3, 3}, s.Sample(nil, 2)); diff != "" {
		t.Errorf("Sample (-want +got):\n%s", diff)
	}

	if !r.Unregister("fixed") {
		t.Error("Unregister sollte true liefern")
	}
	if r.Unregister("fixed") {
		t.Error("zweites Unregister sollte false liefern")
	}
}

func TestRegistryCreateUnknown(t *testing.T) {
	_, err := DefaultRegistry().Create(Config{Kind: "laplace", SpanLength: 3})
	if err == nil {
		t.Fatal("erwartet Fehler fuer unbekannte Verteilung")
	}

	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Fehler %v ist kein ErrInvalidConfiguration", err)
	}
	if !errors.Is(err, ErrKindNotRegistered) {
		t.Errorf("Fehler %v ist kein ErrKindNotRegistered", err)
	}

	var rerr *RegistryError
	if !errors.As(err, &rerr) || rerr.Name != "laplace" || rerr.Op != "create" {
		t.Errorf("erwartet RegistryError fuer laplace, bekommen %#v", err)
	}
}

func TestGeneratorCustomKind(t *testing.T) {
	r := NewRegistry()
	r.Register("fixed", func(Config) (LengthSampler, error) { return fixedSampler{2}, nil })

	cfg := NewConfig(WithKind("fixed"), WithProb(0.5), WithSpanLength(2))
	g, err := NewGenerator(cfg, WithRegistry(r), WithSeed(11))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	res, err := g.Generate(Shape{Batch: 2, Length: 40}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, spans := range res.Spans {
		for _, s := range spans {
			if s.Length != 2 {
				t.Errorf("Zeile %d: Span-Laenge %d, erwartet 2", i, s.Length)
			}
		}
	}

	// die Default-Registry kennt "fixed" nicht
	if _, err := NewGenerator(cfg); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("erwartet ErrInvalidConfiguration, bekommen %v", err)
	}
}
