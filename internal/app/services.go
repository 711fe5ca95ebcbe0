package app

import (
	"os"

	"cafehub/internal/auth"
	"cafehub/internal/services"
	"cafehub/internal/upstream"

	"github.com/rs/zerolog/log"
)

// Services wires the storefront's service graph
type Services struct {
	Auth     *auth.Service
	Upstream *upstream.Client
	Catalog  *services.CatalogService
	Cart     *services.CartService
}

// NewServices initializes all services against the configured shop API
func NewServices() *Services {
	baseURL := os.Getenv("SHOP_API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	client := upstream.NewClient(baseURL)

	return &Services{
		Auth:     auth.NewService(),
		Upstream: client,
		Catalog:  services.NewCatalogService(client),
		Cart: services.NewCartService(client, func() {
			log.Info().Msg("Shop API session expired, redirecting to login")
		}),
	}
}
