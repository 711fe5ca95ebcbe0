package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"cafehub/internal/catalog"
	"cafehub/internal/upstream"
	"cafehub/pkg/models"

	"github.com/rs/zerolog/log"
)

// catalogSource is one independently loaded catalog: the full product list or
// the top-10 best sellers. Reloads are guarded by a generation counter so that
// two in-flight fetches racing each other (rapid category switches) cannot
// apply an outdated payload over a newer one. loaded records that a fetch has
// completed, so an empty catalog is a valid loaded state and does not refetch.
type catalogSource struct {
	index  *catalog.Index
	gen    atomic.Uint64
	loaded bool
}

// CatalogService keeps the in-memory catalogs in sync with the shop API. Each
// upstream source owns its own index, so a view over one source can never be
// computed against products loaded for the other.
type CatalogService struct {
	client *upstream.Client

	mu      sync.Mutex
	sources map[string]*catalogSource
}

// sourceFor maps a category key to the upstream query that serves it: top10
// has its own best-sellers endpoint, everything else shares the full catalog
func sourceFor(category string) string {
	if category == catalog.CategoryTop10 {
		return catalog.CategoryTop10
	}
	return catalog.CategoryAll
}

// NewCatalogService creates a catalog service backed by the shop API client
func NewCatalogService(client *upstream.Client) *CatalogService {
	return &CatalogService{
		client: client,
		sources: map[string]*catalogSource{
			catalog.CategoryAll:   {index: catalog.NewIndex()},
			catalog.CategoryTop10: {index: catalog.NewIndex()},
		},
	}
}

func (s *CatalogService) source(category string) *catalogSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sources[sourceFor(category)]
}

// Reload replaces one source's catalog from the shop API. The top10 category
// is served by a dedicated best-sellers query; every other category loads the
// full catalog and filters locally. A response that arrives after a newer
// reload of the same source was issued is discarded.
func (s *CatalogService) Reload(ctx context.Context, category string) error {
	src := s.source(category)
	gen := src.gen.Add(1)

	var (
		records []models.ProductRecord
		err     error
	)
	if sourceFor(category) == catalog.CategoryTop10 {
		records, err = s.client.FetchTop10(ctx)
	} else {
		records, err = s.client.FetchProducts(ctx)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != src.gen.Load() {
		log.Debug().Str("category", category).Msg("Discarding stale catalog reload")
		return nil
	}

	src.index.Load(records, time.Now())
	src.loaded = true
	log.Info().Str("category", category).Int("products", src.index.Len()).Msg("Catalog reloaded")
	return nil
}

// EnsureLoaded reloads a source only when no fetch has completed for it yet.
// Filtering within an already loaded source never refetches, and an empty
// catalog counts as loaded.
func (s *CatalogService) EnsureLoaded(ctx context.Context, category string) error {
	src := s.source(category)

	s.mu.Lock()
	loaded := src.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Reload(ctx, category)
}

// View computes one catalog page over the source serving the requested
// category and resolves the engine's product ids to display-ready products
func (s *CatalogService) View(state models.ViewState) (models.PageView, []models.NormalizedProduct) {
	ix := s.source(state.Category).index
	page := catalog.View(ix, state)

	products := make([]models.NormalizedProduct, 0, len(page.ItemIDs))
	for _, id := range page.ItemIDs {
		if p, ok := ix.Get(id); ok {
			products = append(products, p)
		}
	}
	return page, products
}

// Get returns one product by id, preferring the full catalog over the
// best-sellers list
func (s *CatalogService) Get(id string) (models.NormalizedProduct, bool) {
	if p, ok := s.source(catalog.CategoryAll).index.Get(id); ok {
		return p, true
	}
	return s.source(catalog.CategoryTop10).index.Get(id)
}

// Reviews fetches and normalizes the reviews of one product
func (s *CatalogService) Reviews(ctx context.Context, productID string) ([]models.Review, error) {
	reviews, err := s.client.FetchReviews(ctx, productID)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		if reviews[i].CustomerName == "" {
			reviews[i].CustomerName = "Anonymous"
		}
	}
	return reviews, nil
}
