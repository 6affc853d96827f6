package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/storefront-labs/storefront-api/controllers/product"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/api/products/*" endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	products := r.Group("/api/products")
	{
		products.POST("", productcontroller.CreateProduct(db))
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.PUT("/:id", productcontroller.UpdateProduct(db))
		products.DELETE("/:id", productcontroller.DeleteProduct(db, uploadDir))

		products.GET("/:id/images", productcontroller.ListProductImages(db))
		products.POST("/:id/images", productcontroller.AddProductImages(db, uploadDir))
		products.DELETE("/:id/images/:imageId", productcontroller.DeleteProductImage(db, uploadDir))
	}
}
