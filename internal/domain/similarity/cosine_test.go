package similarity

import (
	"errors"
	"math"
	"testing"

	"github.com/lookbook-io/lookbook/internal/domain"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "zero norm a", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
		{name: "zero norm b", a: []float32{1, 1}, b: []float32{0, 0}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineScaleInvariant(t *testing.T) {
	a := []float32{0.3, -0.7, 0.2}
	b := []float32{0.1, 0.5, -0.9}
	scaled := []float32{0.6, -1.4, 0.4}

	if math.Abs(Cosine(a, b)-Cosine(scaled, b)) > 1e-6 {
		t.Error("cosine should be invariant under scaling")
	}
}

func TestRankAllOrdering(t *testing.T) {
	target := []float32{1, 0}
	candidates := []Candidate{
		{ID: "far", Vector: []float32{0, 1}},
		{ID: "near", Vector: []float32{1, 0.1}},
		{ID: "mid", Vector: []float32{1, 1}},
	}

	matches, err := RankAll(target, candidates, 0)
	if err != nil {
		t.Fatalf("RankAll() error = %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	wantOrder := []string{"near", "mid", "far"}
	for i, id := range wantOrder {
		if matches[i].ID != id {
			t.Errorf("rank %d = %s, want %s", i, matches[i].ID, id)
		}
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("scores not descending at %d", i)
		}
	}
}

func TestRankAllStableTies(t *testing.T) {
	target := []float32{1, 0}
	candidates := []Candidate{
		{ID: "first", Vector: []float32{2, 0}},
		{ID: "second", Vector: []float32{3, 0}},
	}

	matches, err := RankAll(target, candidates, 0)
	if err != nil {
		t.Fatalf("RankAll() error = %v", err)
	}
	if matches[0].ID != "first" || matches[1].ID != "second" {
		t.Errorf("tie order not stable: %s, %s", matches[0].ID, matches[1].ID)
	}
}

func TestRankAllTopNPlusOne(t *testing.T) {
	target := []float32{1, 0}
	candidates := make([]Candidate, 10)
	for i := range candidates {
		candidates[i] = Candidate{ID: string(rune('a' + i)), Vector: []float32{1, float32(i)}}
	}

	matches, err := RankAll(target, candidates, 3)
	if err != nil {
		t.Fatalf("RankAll() error = %v", err)
	}
	// One extra slot so the caller can drop a self-match.
	if len(matches) != 4 {
		t.Errorf("got %d matches, want 4", len(matches))
	}
}

func TestRankAllDimMismatch(t *testing.T) {
	target := []float32{1, 0, 0}
	candidates := []Candidate{
		{ID: "ok", Vector: []float32{1, 0, 0}},
		{ID: "bad", Vector: []float32{1, 0}},
	}

	_, err := RankAll(target, candidates, 0)
	if !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Errorf("error = %v, want ErrVectorDimMismatch", err)
	}
}

func TestRankAllEmpty(t *testing.T) {
	matches, err := RankAll([]float32{1}, nil, 5)
	if err != nil {
		t.Fatalf("RankAll() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}
