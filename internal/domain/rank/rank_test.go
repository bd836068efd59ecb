package rank

import (
	"testing"

	"github.com/lookbook-io/lookbook/internal/domain/catalog"
	"github.com/lookbook-io/lookbook/internal/domain/query"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		keywords query.KeywordSet
		want     Mode
	}{
		{name: "empty set", keywords: query.KeywordSet{}, want: ModeVectorOnly},
		{name: "nil set", keywords: nil, want: ModeVectorOnly},
		{name: "single pure category", keywords: query.KeywordSet{"패딩": {}}, want: ModeCategory},
		{name: "single non-category", keywords: query.KeywordSet{"데이트": {}}, want: ModeComposite},
		{name: "category plus modifier", keywords: query.KeywordSet{"패딩": {}, "겨울": {}}, want: ModeComposite},
		{name: "two categories", keywords: query.KeywordSet{"패딩": {}, "자켓": {}}, want: ModeComposite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.keywords); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThresholdByMode(t *testing.T) {
	w := DefaultWeights()

	if got := w.Threshold(ModeCategory); got != 0.30 {
		t.Errorf("category threshold = %v, want 0.30", got)
	}
	if got := w.Threshold(ModeComposite); got != 0.35 {
		t.Errorf("composite threshold = %v, want 0.35", got)
	}
	if got := w.Threshold(ModeVectorOnly); got != 0.55 {
		t.Errorf("vector-only threshold = %v, want 0.55", got)
	}
}

func TestFusionProfiles(t *testing.T) {
	ref := ReferenceFusion()
	if got := ref.Blend(1, 0); got != 0.3 {
		t.Errorf("reference vector share = %v, want 0.3", got)
	}
	if got := ref.Blend(0, 1); got != 0.7 {
		t.Errorf("reference keyword share = %v, want 0.7", got)
	}

	txt := TextFusion()
	if got := txt.Blend(1, 0); got != 0.6 {
		t.Errorf("text vector share = %v, want 0.6", got)
	}
	if got := txt.Blend(0, 1); got != 0.4 {
		t.Errorf("text keyword share = %v, want 0.4", got)
	}
}

func TestReorder(t *testing.T) {
	items := []catalog.Item{
		catalog.New("a", "A", "", "상의", "", "", "", "", 0),
		catalog.New("b", "B", "", "상의", "", "", "", "", 0),
		catalog.New("c", "C", "", "상의", "", "", "", "", 0),
	}

	got := Reorder(items, []string{"c", "missing", "a"})
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].ID() != "c" || got[1].ID() != "a" {
		t.Errorf("order = [%s %s], want [c a]", got[0].ID(), got[1].ID())
	}
}

func TestReorderEmpty(t *testing.T) {
	if got := Reorder(nil, []string{"a"}); len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
	if got := Reorder([]catalog.Item{catalog.New("a", "A", "", "", "", "", "", "", 0)}, nil); len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
}
