package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront-labs/storefront-api/models"
	"gorm.io/gorm"
)

// UpdateProduct replaces name/description/price/sku of an existing product.
// The identifier and creation timestamp never change.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if details := validateProductInput(input); details != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": details})
			return
		}

		// Changing the SKU must not collide with another product. Keeping the
		// current SKU is always allowed.
		if input.SKU != product.SKU {
			var count int64
			if err := db.Model(&models.Product{}).Where("sku = ? AND id <> ?", input.SKU, product.ID).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check SKU"})
				return
			}
			if count > 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate SKU"})
				return
			}
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.SKU = input.SKU

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
