package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront-labs/storefront-api/models"
	"gorm.io/gorm"
)

// GetProductByID returns a single product with its ordered image list.
// URL param: /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Images", orderImages).First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// orderImages keeps image lists in display order wherever they are preloaded.
func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, created_at ASC")
}
