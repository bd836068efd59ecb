// Package catalog persists products as Redis hashes plus an id membership set.
package catalog

import (
	"context"
	"fmt"

	"github.com/lookbook-io/lookbook/internal/db"
	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
)

var (
	productKeyPrefix = domain.KeyPrefix + "product:"
	productIDSetKey  = domain.KeyPrefix + "products"
)

// store is the consumer interface for the catalog (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo implements the product repository over db.Store.
type Repo struct {
	store store
}

// New creates a catalog repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert creates or updates a product. Returns true if created.
func (r *Repo) Upsert(ctx context.Context, item domcat.Item) (bool, error) {
	key := productKey(item.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.HSet(ctx, key, toFields(item)); err != nil {
		return false, fmt.Errorf("hset %s: %w", key, err)
	}
	if err := r.store.SAdd(ctx, productIDSetKey, item.ID()); err != nil {
		return false, fmt.Errorf("sadd %s: %w", item.ID(), err)
	}

	return !exists, nil
}

// UpsertAll writes a batch of products: hashes go out in one pipelined
// round-trip, followed by a single membership update. Used by bulk loads
// where per-product created/updated reporting does not matter.
func (r *Repo) UpsertAll(ctx context.Context, items []domcat.Item) error {
	if len(items) == 0 {
		return nil
	}

	batch := make([]db.HashSetItem, len(items))
	ids := make([]string, len(items))
	for i, item := range items {
		batch[i] = db.HashSetItem{Key: productKey(item.ID()), Fields: toFields(item)}
		ids[i] = item.ID()
	}

	if err := r.store.HSetMulti(ctx, batch); err != nil {
		return fmt.Errorf("hset multi: %w", err)
	}
	if err := r.store.SAdd(ctx, productIDSetKey, ids...); err != nil {
		return fmt.Errorf("sadd batch: %w", err)
	}
	return nil
}

// Get returns a product by id.
func (r *Repo) Get(ctx context.Context, id string) (domcat.Item, error) {
	key := productKey(id)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domcat.Item{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(fields) == 0 {
		return domcat.Item{}, domain.ErrProductNotFound
	}
	return fromFields(id, fields), nil
}

// List returns every product in the catalog. IDs come from the membership
// set; hashes are fetched in one pipelined round-trip. Products whose hash
// disappeared mid-flight are skipped.
func (r *Repo) List(ctx context.Context) ([]domcat.Item, error) {
	ids, err := r.store.SMembers(ctx, productIDSetKey)
	if err != nil {
		return nil, fmt.Errorf("smembers: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi: %w", err)
	}

	items := make([]domcat.Item, 0, len(ids))
	for i, fields := range hashes {
		if len(fields) == 0 {
			continue
		}
		items = append(items, fromFields(ids[i], fields))
	}
	return items, nil
}

// Delete removes a product.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := productKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := r.store.SRem(ctx, productIDSetKey, id); err != nil {
		return fmt.Errorf("srem %s: %w", id, err)
	}
	return nil
}

func productKey(id string) string {
	return productKeyPrefix + id
}
