package catalog

import (
	"testing"

	"cafehub/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaultSizeSelection(t *testing.T) {
	tests := []struct {
		name      string
		sizes     []models.SizeVariant
		wantPrice float64
	}{
		{
			name: "label S wins over first position",
			sizes: []models.SizeVariant{
				{Size: "M", SizeID: "m1", Price: 50000},
				{Size: "S", SizeID: "s1", Price: 40000},
			},
			wantPrice: 40000,
		},
		{
			name: "first variant when no S",
			sizes: []models.SizeVariant{
				{Size: "M", SizeID: "m1", Price: 50000},
				{Size: "L", SizeID: "l1", Price: 60000},
			},
			wantPrice: 50000,
		},
		{
			name:      "zero-price placeholder when no variants",
			sizes:     nil,
			wantPrice: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(models.ProductRecord{ProductID: "cf01", Sizes: tt.sizes})
			assert.Equal(t, tt.wantPrice, p.OriginalPrice)
			assert.Equal(t, tt.wantPrice, p.CurrentPrice)
		})
	}
}

func TestNormalizeDiscountMath(t *testing.T) {
	tests := []struct {
		name     string
		discount float64
		want     float64
	}{
		{"no discount keeps price", 0, 100000},
		{"half discount halves price", 50, 50000},
		{"full discount zeroes price", 100, 0},
		{"negative discount clamps to zero", -10, 100000},
		{"excess discount clamps to full", 150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(models.ProductRecord{
				ProductID: "cf01",
				Discount:  tt.discount,
				Sizes:     []models.SizeVariant{{Size: "S", SizeID: "s1", Price: 100000}},
			})
			assert.Equal(t, tt.want, p.CurrentPrice)
			assert.LessOrEqual(t, p.CurrentPrice, p.OriginalPrice)
		})
	}
}

func TestNormalizePerSizeDiscounts(t *testing.T) {
	p := Normalize(models.ProductRecord{
		ProductID: "cf01",
		Discount:  20,
		Sizes: []models.SizeVariant{
			{Size: "S", SizeID: "s1", Price: 100},
			{Size: "M", SizeID: "m1", Price: 200},
		},
	})

	require.Len(t, p.Sizes, 2)
	assert.Equal(t, 80.0, p.Sizes[0].DiscountedPrice)
	assert.Equal(t, 160.0, p.Sizes[1].DiscountedPrice)
	assert.Equal(t, 100.0, p.Sizes[0].Price)
	assert.Equal(t, 200.0, p.Sizes[1].Price)
}

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(models.ProductRecord{ProductID: "cf01", ProductName: "Latte"})

	assert.Equal(t, "CF01", p.SKU)
	assert.Equal(t, DefaultCategory, p.Category)
	assert.Equal(t, "No description available.", p.Description)
	assert.Equal(t, PlaceholderImage, p.DefaultImage)
	assert.Equal(t, PlaceholderImage, p.HoverImage)
}

func TestNormalizeCategoryLowercased(t *testing.T) {
	p := Normalize(models.ProductRecord{ProductID: "cf01", Category: "Coffees"})
	assert.Equal(t, "coffees", p.Category)
}

func TestNormalizeHoverImageFallsBackToDefault(t *testing.T) {
	p := Normalize(models.ProductRecord{ProductID: "cf01", ImageURL: "https://cdn.example.com/latte.jpg"})
	assert.Equal(t, "https://cdn.example.com/latte.jpg", p.HoverImage)
}
