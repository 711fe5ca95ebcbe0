package services

import (
	"context"
	"errors"

	"cafehub/internal/upstream"
	"cafehub/pkg/models"

	"github.com/rs/zerolog/log"
)

// ValidationError marks a request rejected before any network call was made
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// CartService mirrors the shop API's cart state. The mirror is never trusted
// between operations: every mutation is followed by a Refresh so totals are
// always computed from the authoritative line list.
type CartService struct {
	client *upstream.Client

	// onAuthRequired is invoked when the shop API signals an unauthenticated
	// session; the HTTP layer turns it into a login redirect
	onAuthRequired func()
}

// NewCartService creates a cart service backed by the shop API client
func NewCartService(client *upstream.Client, onAuthRequired func()) *CartService {
	if onAuthRequired == nil {
		onAuthRequired = func() {}
	}
	return &CartService{client: client, onAuthRequired: onAuthRequired}
}

// Refresh replaces the mirror wholesale with the authoritative cart state and
// returns the rendered view
func (s *CartService) Refresh(ctx context.Context, token string) (models.CartView, error) {
	lines, err := s.client.FetchCart(ctx, token)
	if err != nil {
		if errors.Is(err, upstream.ErrNotAuthenticated) {
			s.onAuthRequired()
		}
		return models.CartView{}, err
	}
	return models.CartView{
		Lines:      lines,
		Total:      CartTotal(lines),
		BadgeCount: BadgeCount(lines),
	}, nil
}

// AddLine adds a product+size to the cart. An empty size id fails fast with a
// ValidationError, without calling the shop API.
func (s *CartService) AddLine(ctx context.Context, token string, req models.AddCartRequest) error {
	if req.SizeID == "" {
		return &ValidationError{Reason: "no size selected"}
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	if err := s.client.AddCartItem(ctx, token, req); err != nil {
		if errors.Is(err, upstream.ErrNotAuthenticated) {
			s.onAuthRequired()
		}
		return err
	}
	return nil
}

// RemoveLine removes one cart line
func (s *CartService) RemoveLine(ctx context.Context, token, cartID string) error {
	if cartID == "" {
		return &ValidationError{Reason: "no cart line selected"}
	}
	if err := s.client.RemoveCartItem(ctx, token, cartID); err != nil {
		if errors.Is(err, upstream.ErrNotAuthenticated) {
			s.onAuthRequired()
		}
		return err
	}
	return nil
}

// Checkout submits the selected lines. An empty selection is rejected before
// any network call.
func (s *CartService) Checkout(ctx context.Context, token string, items []models.CheckoutItem) error {
	if len(items) == 0 {
		return &ValidationError{Reason: "no items selected for checkout"}
	}
	if err := s.client.Checkout(ctx, token, items); err != nil {
		if errors.Is(err, upstream.ErrNotAuthenticated) {
			s.onAuthRequired()
		}
		return err
	}
	return nil
}

// BuyNow adds a line and confirms the cart is non-empty before the caller
// navigates to checkout
func (s *CartService) BuyNow(ctx context.Context, token string, req models.AddCartRequest) (models.CartView, error) {
	if err := s.AddLine(ctx, token, req); err != nil {
		return models.CartView{}, err
	}
	view, err := s.Refresh(ctx, token)
	if err != nil {
		return models.CartView{}, err
	}
	if len(view.Lines) == 0 {
		log.Warn().Msg("Cart empty after buy-now add")
		return view, &ValidationError{Reason: "cart is empty"}
	}
	return view, nil
}

// CartTotal sums unit discounted price times quantity over all lines
func CartTotal(lines []models.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.DiscountedPrice * float64(line.Quantity)
	}
	return total
}

// BadgeCount sums the quantities over all lines
func BadgeCount(lines []models.CartLine) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
