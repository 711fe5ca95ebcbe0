package handlers

import (
	"cafehub/internal/app"
	"cafehub/internal/http/middleware"

	"github.com/labstack/echo/v4"
)

// SetupRoutes registers all storefront routes. The catalog is public; cart,
// checkout and chat require a valid shop session.
func SetupRoutes(api *echo.Group, services *app.Services) {
	storefrontHandler := NewStorefrontHandler(services.Catalog)
	cartHandler := NewCartHandler(services.Cart)
	chatHandler := NewChatHandler(services.Upstream)

	storefront := api.Group("/storefront")
	storefront.GET("/products", storefrontHandler.ListProducts)
	storefront.GET("/products/:id", storefrontHandler.GetProduct)
	storefront.GET("/products/:id/reviews", storefrontHandler.GetReviews)

	authed := api.Group("", middleware.SessionAuth(services.Auth))
	authed.GET("/cart", cartHandler.GetCart)
	authed.POST("/cart", cartHandler.AddItem)
	authed.POST("/cart/remove", cartHandler.RemoveItem)
	authed.POST("/cart/buy-now", cartHandler.BuyNow)
	authed.POST("/checkout", cartHandler.Checkout)

	authed.GET("/chat/messages", chatHandler.GetMessages)
	authed.POST("/chat/messages", chatHandler.SendMessage)
	authed.GET("/chat/ws", chatHandler.HandleWS)
}
