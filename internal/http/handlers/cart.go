package handlers

import (
	"net/http"

	"cafehub/internal/services"
	"cafehub/pkg/models"

	"github.com/labstack/echo/v4"
)

// CartHandler serves the cart popup: mirrored lines, totals, mutations and
// checkout. Every mutation answers with a fresh mirror so the caller never
// renders totals from stale state.
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func sessionToken(c echo.Context) string {
	if token, ok := c.Get("session_token").(string); ok {
		return token
	}
	return ""
}

// GetCart godoc
// @Summary Get cart state
// @Description Refetch the authoritative cart lines with total and badge count
// @Tags cart
// @Produce json
// @Success 200 {object} models.CartView
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartService.Refresh(c.Request().Context(), sessionToken(c))
	if err != nil {
		return respondError(c, err, "cart")
	}
	return c.JSON(http.StatusOK, view)
}

// AddItem godoc
// @Summary Add cart line
// @Description Add a product+size to the cart and return the refreshed cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.AddCartRequest true "Item to add"
// @Success 200 {object} models.CartView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cart [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req models.AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	token := sessionToken(c)

	if err := h.cartService.AddLine(ctx, token, req); err != nil {
		return respondError(c, err, "cart")
	}

	view, err := h.cartService.Refresh(ctx, token)
	if err != nil {
		return respondError(c, err, "cart")
	}
	return c.JSON(http.StatusOK, view)
}

// RemoveItem godoc
// @Summary Remove cart line
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.RemoveCartRequest true "Line to remove"
// @Success 200 {object} models.CartView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cart/remove [post]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	var req models.RemoveCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	token := sessionToken(c)

	if err := h.cartService.RemoveLine(ctx, token, req.CartID); err != nil {
		return respondError(c, err, "cart")
	}

	view, err := h.cartService.Refresh(ctx, token)
	if err != nil {
		return respondError(c, err, "cart")
	}
	return c.JSON(http.StatusOK, view)
}

// Checkout godoc
// @Summary Checkout selected lines
// @Description Submit the selected cart lines and get the checkout redirect
// @Tags cart
// @Accept json
// @Produce json
// @Param items body []models.CheckoutItem true "Selected lines"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	var items []models.CheckoutItem
	if err := c.Bind(&items); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.cartService.Checkout(c.Request().Context(), sessionToken(c), items); err != nil {
		return respondError(c, err, "checkout")
	}
	return c.JSON(http.StatusOK, map[string]string{"redirect": "/checkout"})
}

// BuyNow godoc
// @Summary Buy now
// @Description Add a line, confirm the cart is non-empty, then redirect to checkout
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.AddCartRequest true "Item to buy"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cart/buy-now [post]
func (h *CartHandler) BuyNow(c echo.Context) error {
	var req models.AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if _, err := h.cartService.BuyNow(c.Request().Context(), sessionToken(c), req); err != nil {
		return respondError(c, err, "cart")
	}
	return c.JSON(http.StatusOK, map[string]string{"redirect": "/checkout"})
}
