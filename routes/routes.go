package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the product and cart
// route groups plus the liveness probe.
func SetupRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	SetupProductRoutes(r, db, uploadDir)
	SetupCartRoutes(r, db)
}
