package models

// CartLine is one product+size+quantity entry in the shopping cart,
// as mirrored from the shop's cart API
type CartLine struct {
	CartID          string  `json:"cart_id"`
	ProductID       string  `json:"product_id"`
	Size            string  `json:"size"`
	SizeID          string  `json:"size_id"`
	Quantity        int     `json:"quantity"`
	DiscountedPrice float64 `json:"discounted_price"`
	ProductName     string  `json:"product_name"`
	ImageURL        string  `json:"image_url"`
}

// AddCartRequest represents an add-to-cart request
type AddCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1,max=10"`
	SizeID    string `json:"size_id"`
}

// RemoveCartRequest represents a remove-from-cart request
type RemoveCartRequest struct {
	CartID string `json:"cart_id" validate:"required"`
}

// CheckoutItem is one cart line selected for checkout
type CheckoutItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
	SizeID    string `json:"size_id" validate:"required"`
}

// CartView is the rendered cart state: mirrored lines plus derived totals
type CartView struct {
	Lines      []CartLine `json:"lines"`
	Total      float64    `json:"total"`
	BadgeCount int        `json:"badge_count"`
}
