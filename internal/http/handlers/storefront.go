package handlers

import (
	"math"
	"net/http"
	"strconv"

	"cafehub/internal/catalog"
	"cafehub/internal/services"
	"cafehub/pkg/models"

	"github.com/labstack/echo/v4"
)

// StorefrontHandler serves the catalog listing, product detail and reviews
type StorefrontHandler struct {
	catalogService *services.CatalogService
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(catalogService *services.CatalogService) *StorefrontHandler {
	return &StorefrontHandler{catalogService: catalogService}
}

// ProductPageResponse is one rendered catalog page
type ProductPageResponse struct {
	Products     []models.NormalizedProduct `json:"products"`
	TotalCount   int                        `json:"total_count"`
	TotalPages   int                        `json:"total_pages"`
	Page         int                        `json:"page"`
	EmptyMessage string                     `json:"empty_message,omitempty"`
}

// ListProducts godoc
// @Summary List catalog page
// @Description Get one filtered/sorted/paginated page of the product catalog
// @Tags storefront
// @Produce json
// @Param category query string false "Category key (all, coffees, drinks, foods, yogurts, top10)"
// @Param max_price query number false "Maximum discounted price"
// @Param sort query string false "Sort key (recommended, newest, price-low, price-high, name-asc, name-desc)"
// @Param page query int false "1-based page number"
// @Param refresh query bool false "Force a catalog refetch"
// @Success 200 {object} ProductPageResponse
// @Failure 502 {object} map[string]string
// @Router /storefront/products [get]
func (h *StorefrontHandler) ListProducts(c echo.Context) error {
	state := viewStateFromQuery(c)
	ctx := c.Request().Context()

	var err error
	if c.QueryParam("refresh") == "true" {
		err = h.catalogService.Reload(ctx, state.Category)
	} else {
		err = h.catalogService.EnsureLoaded(ctx, state.Category)
	}
	if err != nil {
		return respondError(c, err, "products")
	}

	page, products := h.catalogService.View(state)

	resp := ProductPageResponse{
		Products:   products,
		TotalCount: page.TotalCount,
		TotalPages: max(1, page.TotalPages),
		Page:       page.Page,
	}
	if len(products) == 0 {
		resp.EmptyMessage = `No products found in category "` + catalog.DisplayCategoryName(state.Category) + `".`
	}

	return c.JSON(http.StatusOK, resp)
}

// GetProduct godoc
// @Summary Get product detail
// @Description Get one product by id for the detail modal
// @Tags storefront
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.NormalizedProduct
// @Failure 404 {object} map[string]string
// @Router /storefront/products/{id} [get]
func (h *StorefrontHandler) GetProduct(c echo.Context) error {
	product, ok := h.catalogService.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
	}
	return c.JSON(http.StatusOK, product)
}

// GetReviews godoc
// @Summary List product reviews
// @Tags storefront
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} models.Review
// @Failure 502 {object} map[string]string
// @Router /storefront/products/{id}/reviews [get]
func (h *StorefrontHandler) GetReviews(c echo.Context) error {
	reviews, err := h.catalogService.Reviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

// viewStateFromQuery parses the filter/sort/paginate state, applying the
// storefront defaults for anything missing or malformed
func viewStateFromQuery(c echo.Context) models.ViewState {
	state := models.ViewState{
		Category:     catalog.CategoryAll,
		PriceCeiling: math.MaxFloat64,
		SortKey:      catalog.SortRecommended,
		Page:         1,
	}

	if category := c.QueryParam("category"); category != "" {
		state.Category = category
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		if ceiling, err := strconv.ParseFloat(raw, 64); err == nil && ceiling >= 0 {
			state.PriceCeiling = ceiling
		}
	}
	if sortKey := c.QueryParam("sort"); sortKey != "" {
		state.SortKey = sortKey
	}
	if raw := c.QueryParam("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			state.Page = page
		}
	}

	return state
}
