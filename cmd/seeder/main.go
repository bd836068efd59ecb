// Command seeder loads a JSON product catalog, computes text and image
// vectors, and writes everything to the store. Image downloads that fail are
// logged and skipped; the product is stored with its text vector only.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lookbook-io/lookbook/internal/config"
	dbRedis "github.com/lookbook-io/lookbook/internal/db/redis"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
	logpkg "github.com/lookbook-io/lookbook/internal/logger"
	"github.com/lookbook-io/lookbook/internal/metrics"
	catalogrepo "github.com/lookbook-io/lookbook/internal/repository/catalog"
	openaiEmb "github.com/lookbook-io/lookbook/internal/transport/openai"
)

// seedProduct is one entry of the seed file.
type seedProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Season      string `json:"season"`
	Brand       string `json:"brand"`
	ImageURL    string `json:"image_url"`
	Price       int    `json:"price"`
}

func main() {
	file := flag.String("file", "data/products.json", "path to the seed JSON file")
	skipImages := flag.Bool("skip-images", false, "store text vectors only")
	flag.Parse()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, *file, *skipImages); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger, file string, skipImages bool) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var products []seedProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	logger.Info("Seed file loaded", zap.String("file", file), zap.Int("products", len(products)))

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		return fmt.Errorf("create database store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	metrics.RegisterEmbeddingMetrics()

	textEmbedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.Provider.APIKey,
		BaseURL:    cfg.Embedding.Provider.BaseURL,
		Model:      cfg.Embedding.Text.Model,
		Dimensions: cfg.Embedding.Text.Dimensions,
		Provider:   cfg.Embedding.Provider.Name,
		Logger:     logger,
	})
	imageEmbedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.Provider.APIKey,
		BaseURL:    cfg.Embedding.Provider.BaseURL,
		Model:      cfg.Embedding.Image.Model,
		Dimensions: cfg.Embedding.Image.Dimensions,
		Provider:   cfg.Embedding.Provider.Name,
		Logger:     logger,
	})

	repo := catalogrepo.New(store)
	httpClient := &http.Client{Timeout: 10 * time.Second}

	// Vectorize first, then write the whole batch in one pipelined pass.
	items := make([]domcat.Item, 0, len(products))
	failed := 0
	for _, p := range products {
		item, err := buildSeedItem(ctx, textEmbedder, imageEmbedder, httpClient, logger, p, skipImages)
		if err != nil {
			logger.Error("Product skipped", zap.String("id", p.ID), zap.Error(err))
			failed++
			continue
		}
		items = append(items, item)
	}

	if err := repo.UpsertAll(ctx, items); err != nil {
		return fmt.Errorf("store products: %w", err)
	}

	logger.Info("Seeding finished", zap.Int("seeded", len(items)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d products failed", failed, len(products))
	}
	return nil
}

func buildSeedItem(
	ctx context.Context,
	textEmbedder, imageEmbedder *openaiEmb.Embedder,
	httpClient *http.Client,
	logger *zap.Logger,
	p seedProduct,
	skipImages bool,
) (domcat.Item, error) {
	if p.ID == "" || p.Name == "" {
		return domcat.Item{}, fmt.Errorf("id and name are required")
	}

	item := domcat.New(
		p.ID, p.Name, p.Description, p.Category,
		p.Color, p.Season, p.Brand, p.ImageURL, p.Price,
	)

	textRes, err := textEmbedder.Embed(ctx, item.SearchText())
	if err != nil {
		return domcat.Item{}, fmt.Errorf("embed text: %w", err)
	}

	var imageVec []float32
	if !skipImages && p.ImageURL != "" {
		image, err := fetchImage(ctx, httpClient, p.ImageURL)
		if err != nil {
			logger.Warn("Image download failed, storing text vector only",
				zap.String("id", p.ID),
				zap.String("url", p.ImageURL),
				zap.Error(err),
			)
		} else {
			imageRes, err := imageEmbedder.EmbedImage(ctx, image)
			if err != nil {
				logger.Warn("Image embedding failed, storing text vector only",
					zap.String("id", p.ID),
					zap.Error(err),
				)
			} else {
				imageVec = imageRes.Embedding
			}
		}
	}

	item = item.WithVectors(textRes.Embedding, imageVec)

	logger.Info("Product vectorized",
		zap.String("id", p.ID),
		zap.String("name", p.Name),
		zap.Bool("has_image_vector", len(imageVec) > 0),
	)
	return item, nil
}

func fetchImage(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image body")
	}
	return data, nil
}
