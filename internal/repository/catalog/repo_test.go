package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
)

func testItem(id string) domcat.Item {
	item := domcat.New(id, "울 코트", "따뜻한 겨울 코트", "아우터", "블랙", "겨울", "룩북", "https://img.example/"+id, 129000)
	return item.WithVectors([]float32{0.1, 0.2}, []float32{0.3, 0.4})
}

func TestUpsert_CreateThenUpdate(t *testing.T) {
	fs := newFakeStore()
	repo := New(fs)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, testItem("p1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected created=true on first upsert")
	}

	created, err = repo.Upsert(ctx, testItem("p1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("expected created=false on second upsert")
	}
}

func TestUpsertAll_BatchRoundTrip(t *testing.T) {
	fs := newFakeStore()
	repo := New(fs)
	ctx := context.Background()

	err := repo.UpsertAll(ctx, []domcat.Item{testItem("p1"), testItem("p2"), testItem("p3")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	got, err := repo.Get(ctx, "p2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name() != "울 코트" {
		t.Errorf("Name() = %q after batch upsert", got.Name())
	}
}

func TestUpsertAll_Empty(t *testing.T) {
	fs := newFakeStore()
	repo := New(fs)

	if err := repo.UpsertAll(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fs.hashes) != 0 {
		t.Fatal("empty batch must not write")
	}
}

func TestGet_RoundTrip(t *testing.T) {
	fs := newFakeStore()
	repo := New(fs)
	ctx := context.Background()

	if _, err := repo.Upsert(ctx, testItem("p1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name() != "울 코트" || got.Price() != 129000 {
		t.Errorf("unexpected item: name=%q price=%d", got.Name(), got.Price())
	}
	if len(got.TextVector()) != 2 || got.TextVector()[0] != 0.1 {
		t.Errorf("text vector not preserved: %v", got.TextVector())
	}
	if len(got.ImageVector()) != 2 || got.ImageVector()[1] != 0.4 {
		t.Errorf("image vector not preserved: %v", got.ImageVector())
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := New(newFakeStore())

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("error = %v, want ErrProductNotFound", err)
	}
}

func TestList(t *testing.T) {
	fs := newFakeStore()
	repo := New(fs)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		if _, err := repo.Upsert(ctx, testItem(id)); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
}

func TestList_Empty(t *testing.T) {
	items, err := New(newFakeStore()).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestDelete(t *testing.T) {
	fs := newFakeStore()
	repo := New(fs)
	ctx := context.Background()

	if _, err := repo.Upsert(ctx, testItem("p1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.Get(ctx, "p1"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("after delete: error = %v, want ErrProductNotFound", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("id set not cleaned up: %d items", len(items))
	}
}

func TestDelete_NotFound(t *testing.T) {
	err := New(newFakeStore()).Delete(context.Background(), "missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("error = %v, want ErrProductNotFound", err)
	}
}

func TestItemWithoutVectors(t *testing.T) {
	fs := newFakeStore()
	repo := New(fs)
	ctx := context.Background()

	item := domcat.New("bare", "티셔츠", "", "상의", "화이트", "여름", "", "", 15000)
	if _, err := repo.Upsert(ctx, item); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, "bare")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TextVector() != nil || got.ImageVector() != nil {
		t.Error("expected nil vectors for item stored without them")
	}
}
