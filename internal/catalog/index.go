package catalog

import (
	"sync"
	"time"

	"cafehub/pkg/models"
)

// Index holds the normalized products of the currently loaded catalog together
// with the insertion-ordered display sequence. The sequence defines the
// "recommended" order and is only rebuilt wholesale by the next Load.
type Index struct {
	mu    sync.RWMutex
	byID  map[string]models.NormalizedProduct
	order []string
}

// NewIndex creates an empty catalog index
func NewIndex() *Index {
	return &Index{byID: make(map[string]models.NormalizedProduct)}
}

// Load replaces the entire index from a fresh upstream payload. An empty
// record list is valid and yields an empty index; callers render the
// empty-state message themselves.
//
// Each product is stamped with a listed-at time derived from its position, so
// the "newest" sort is deterministic per load. A real listed_at field from the
// shop API could replace the stamp here without touching the view engine.
func (ix *Index) Load(records []models.ProductRecord, loadedAt time.Time) {
	byID := make(map[string]models.NormalizedProduct, len(records))
	order := make([]string, 0, len(records))

	for i, rec := range records {
		p := Normalize(rec)
		p.ListedAt = loadedAt.Add(-time.Duration(i) * time.Second)
		if _, seen := byID[p.ID]; !seen {
			order = append(order, p.ID)
		}
		byID[p.ID] = p
	}

	ix.mu.Lock()
	ix.byID = byID
	ix.order = order
	ix.mu.Unlock()
}

// Get returns the normalized product for an id
func (ix *Index) Get(id string) (models.NormalizedProduct, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	p, ok := ix.byID[id]
	return p, ok
}

// Len returns the number of products currently indexed
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.order)
}

// Products returns a copy of the products in insertion (recommended) order
func (ix *Index) Products() []models.NormalizedProduct {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]models.NormalizedProduct, 0, len(ix.order))
	for _, id := range ix.order {
		out = append(out, ix.byID[id])
	}
	return out
}
