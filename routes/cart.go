package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/storefront-labs/storefront-api/controllers/cart"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all "/api/cart/*" endpoints. Carts are scoped by
// an opaque client-supplied session identifier; there is no authentication.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/api/cart")
	{
		cart.POST("", cartControllers.GetOrCreateCart(db))
		cart.GET("/:sessionId", cartControllers.GetCartBySession(db))
		cart.DELETE("/:cartId", cartControllers.ClearCart(db))

		cart.POST("/:cartId/items", cartControllers.AddCartItem(db))
		cart.PUT("/items/:itemId", cartControllers.UpdateCartItem(db))
		cart.DELETE("/items/:itemId", cartControllers.RemoveCartItem(db))
	}
}
