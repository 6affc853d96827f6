package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionInput struct {
	SessionID string `json:"sessionId" binding:"required"`
}

type AddItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=100"`
}

type QuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=100"`
}

// CartResponse is the nested cart structure with totals computed from
// current product prices. Totals are never stored.
type CartResponse struct {
	models.Cart
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

// getOrCreateCart finds the session's cart, creating an empty one if needed.
// The unique index on session_id guarantees a single cart per session.
func getOrCreateCart(db *gorm.DB, sessionID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Where("session_id = ?", sessionID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			CreatedAt: time.Now(),
		}
		if createErr := db.Create(&cart).Error; createErr != nil {
			return models.Cart{}, createErr
		}
		return cart, nil
	}
	return cart, err
}

// loadCartResponse reloads the cart with items and products and computes totals.
func loadCartResponse(db *gorm.DB, cartID string) (CartResponse, error) {
	var cart models.Cart
	err := db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Items.Product").
		First(&cart, "id = ?", cartID).Error
	if err != nil {
		return CartResponse{}, err
	}

	resp := CartResponse{Cart: cart}
	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}
		resp.TotalItems += item.Quantity
		resp.TotalPrice += float64(item.Quantity) * item.Product.Price
	}
	return resp, nil
}

// POST /api/cart
func GetOrCreateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SessionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": gin.H{"sessionId": "sessionId is required"},
			})
			return
		}

		cart, err := getOrCreateCart(db, input.SessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get or create cart"})
			return
		}

		c.JSON(http.StatusCreated, cart)
	}
}

// GET /api/cart/:sessionId
func GetCartBySession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")

		cart, err := getOrCreateCart(db, sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get or create cart"})
			return
		}

		resp, err := loadCartResponse(db, cart.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// POST /api/cart/:cartId/items
//
// Adding a product already in the cart increments its quantity atomically;
// the unique (cart_id, product_id) index backs the upsert, so concurrent
// adds never lose an increment or duplicate the row.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("cartId")

		var cart models.Cart
		if err := db.First(&cart, "id = ?", cartID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		item := models.CartItem{
			ID:        uuid.NewString(),
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  input.Quantity,
			CreatedAt: time.Now(),
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + ?", input.Quantity),
				"updated_at": time.Now(),
			}),
		}).Create(&item).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		// Re-read the stored row: on the increment path the struct above does
		// not reflect the accumulated quantity.
		var stored models.CartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&stored).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		c.JSON(http.StatusCreated, stored)
	}
}

// PUT /api/cart/items/:itemId
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("itemId")

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result := db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", input.Quantity)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		var item models.CartItem
		if err := db.First(&item, "id = ?", itemID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/items/:itemId
//
// Removing an item that is already gone still reports success.
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("itemId")

		if err := db.Delete(&models.CartItem{}, "id = ?", itemID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /api/cart/:cartId
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("cartId")

		if err := db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
