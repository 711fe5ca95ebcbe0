package handlers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestViewStateFromQuery(t *testing.T) {
	tests := []struct {
		query        string
		wantCategory string
		wantCeiling  float64
		wantSort     string
		wantPage     int
	}{
		{"", "all", math.MaxFloat64, "recommended", 1},
		{"category=coffees&max_price=50000&sort=price-low&page=3", "coffees", 50000, "price-low", 3},
		{"category=top10", "top10", math.MaxFloat64, "recommended", 1},
		{"max_price=abc", "all", math.MaxFloat64, "recommended", 1},
		{"max_price=-10", "all", math.MaxFloat64, "recommended", 1},
		{"page=notanumber", "all", math.MaxFloat64, "recommended", 1},
		{"sort=name-desc&page=0", "all", math.MaxFloat64, "name-desc", 0},
	}

	e := echo.New()
	for _, test := range tests {
		req := httptest.NewRequest("GET", "/api/v1/storefront/products?"+test.query, nil)
		c := e.NewContext(req, httptest.NewRecorder())

		state := viewStateFromQuery(c)
		if state.Category != test.wantCategory {
			t.Errorf("query %q: category = %q, expected %q", test.query, state.Category, test.wantCategory)
		}
		if state.PriceCeiling != test.wantCeiling {
			t.Errorf("query %q: price ceiling = %v, expected %v", test.query, state.PriceCeiling, test.wantCeiling)
		}
		if state.SortKey != test.wantSort {
			t.Errorf("query %q: sort = %q, expected %q", test.query, state.SortKey, test.wantSort)
		}
		if state.Page != test.wantPage {
			t.Errorf("query %q: page = %d, expected %d", test.query, state.Page, test.wantPage)
		}
	}
}
