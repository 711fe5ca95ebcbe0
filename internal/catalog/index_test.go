package catalog

import (
	"testing"
	"time"

	"cafehub/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, name, category string, price float64) models.ProductRecord {
	return models.ProductRecord{
		ProductID:   id,
		ProductName: name,
		Category:    category,
		Sizes:       []models.SizeVariant{{Size: "S", SizeID: id + "-s", Price: price}},
	}
}

func TestIndexLoadPreservesInsertionOrder(t *testing.T) {
	ix := NewIndex()
	ix.Load([]models.ProductRecord{
		record("b2", "Mocha", "Coffees", 2),
		record("a1", "Latte", "Coffees", 1),
		record("c3", "Tea", "Drinks", 3),
	}, time.Now())

	products := ix.Products()
	require.Len(t, products, 3)
	assert.Equal(t, []string{"b2", "a1", "c3"}, []string{products[0].ID, products[1].ID, products[2].ID})
}

func TestIndexLoadReplacesWholesale(t *testing.T) {
	ix := NewIndex()
	ix.Load([]models.ProductRecord{record("a1", "Latte", "Coffees", 1)}, time.Now())
	ix.Load([]models.ProductRecord{record("b2", "Mocha", "Coffees", 2)}, time.Now())

	_, ok := ix.Get("a1")
	assert.False(t, ok, "previous load should be gone")

	p, ok := ix.Get("b2")
	require.True(t, ok)
	assert.Equal(t, "Mocha", p.Title)
	assert.Equal(t, 1, ix.Len())
}

func TestIndexLoadEmptyListSucceeds(t *testing.T) {
	ix := NewIndex()
	ix.Load([]models.ProductRecord{record("a1", "Latte", "Coffees", 1)}, time.Now())
	ix.Load(nil, time.Now())

	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Products())
}

func TestIndexGetAbsent(t *testing.T) {
	ix := NewIndex()
	_, ok := ix.Get("missing")
	assert.False(t, ok)
}

func TestIndexListedAtFollowsPosition(t *testing.T) {
	loadedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ix := NewIndex()
	ix.Load([]models.ProductRecord{
		record("a1", "Latte", "Coffees", 1),
		record("b2", "Mocha", "Coffees", 2),
	}, loadedAt)

	first, _ := ix.Get("a1")
	second, _ := ix.Get("b2")
	assert.True(t, first.ListedAt.After(second.ListedAt), "earlier positions are stamped newer")
}
