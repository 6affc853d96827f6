package productcontroller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-api/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SKU         string  `json:"sku"`
}

// validateProductInput returns per-field messages, or nil when the input is valid.
func validateProductInput(input ProductInput) map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "name is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		details["description"] = "description is required"
	}
	if input.Price <= 0 {
		details["price"] = "price must be greater than zero"
	}
	if strings.TrimSpace(input.SKU) == "" {
		details["sku"] = "sku is required"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// CreateProduct creates a new product. SKUs are unique across the catalog.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if details := validateProductInput(input); details != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": details})
			return
		}

		var count int64
		if err := db.Model(&models.Product{}).Where("sku = ?", input.SKU).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check SKU"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate SKU"})
			return
		}

		product := models.Product{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			SKU:         input.SKU,
			CreatedAt:   time.Now(),
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
