package productcontroller

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-api/models"
	"gorm.io/gorm"
)

type ImageInput struct {
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// AddProductImages attaches images to a product. A JSON body registers a
// remote URL; a multipart body (field "images") uploads one or more files to
// local storage under a generated name. Each accepted URL or file produces
// one ProductImage row.
func AddProductImages(db *gorm.DB, uploadDir string) gin.HandlerFunc {
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

		switch c.ContentType() {
		case "application/json":
			addImageByURL(c, db, product)
		case "multipart/form-data":
			addImagesByUpload(c, db, product, uploadDir)
		default:
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Unsupported content type"})
		}
	}
}

func addImageByURL(c *gin.Context, db *gorm.DB, product models.Product) {
	var input ImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	parsed, err := url.ParseRequestURI(input.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": gin.H{"url": "url must be a valid http(s) URL"},
		})
		return
	}

	image := models.ProductImage{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		URL:       input.URL,
		Position:  input.Position,
		CreatedAt: time.Now(),
	}
	if err := db.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	c.JSON(http.StatusCreated, image)
}

func addImagesByUpload(c *gin.Context, db *gorm.DB, product models.Product, uploadDir string) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form: " + err.Error()})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})
		return
	}

	saveDir := filepath.Join(uploadDir, "products", product.ID)
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
		return
	}

	created := make([]models.ProductImage, 0, len(files))
	for _, fileHeader := range files {
		// Generated filename keeps concurrent uploads from colliding
		filename := uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))
		savePath := filepath.Join(saveDir, filename)

		if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		image := models.ProductImage{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			URL:       fmt.Sprintf("/uploads/products/%s/%s", product.ID, filename),
			CreatedAt: time.Now(),
		}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		created = append(created, image)
	}

	c.JSON(http.StatusCreated, created)
}

// ListProductImages returns a product's images ordered by position, then
// creation time.
func ListProductImages(db *gorm.DB) gin.HandlerFunc {
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

		var images []models.ProductImage
		if err := db.Where("product_id = ?", product.ID).Order("position ASC, created_at ASC").Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
			return
		}

		c.JSON(http.StatusOK, images)
	}
}

// DeleteProductImage removes an image row and, for locally stored files, the
// file itself. File removal is best-effort: the DB record is authoritative.
func DeleteProductImage(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		imageID := c.Param("imageId")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var image models.ProductImage
		if err := db.Where("id = ? AND product_id = ?", imageID, product.ID).First(&image).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve image"})
			}
			return
		}

		if err := db.Delete(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}

		// Remove the stored file when the URL points at local content
		if strings.HasPrefix(image.URL, "/uploads/") {
			localPath := filepath.Join(uploadDir, strings.TrimPrefix(image.URL, "/uploads/"))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				log.Printf("⚠️ Failed to remove file %s: %v", localPath, err)
			}
		}

		c.Status(http.StatusNoContent)
	}
}
