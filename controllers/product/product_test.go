package productcontroller_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/storefront-labs/storefront-api/models"
	"github.com/storefront-labs/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProduct(t *testing.T, r http.Handler, name, sku string, price float64) models.Product {
	t.Helper()
	rec := testutil.DoJSON(t, r, http.MethodPost, "/api/products", map[string]any{
		"name":        name,
		"description": "a test product",
		"price":       price,
		"sku":         sku,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var product models.Product
	testutil.Decode(t, rec, &product)
	return product
}

func TestCreateProduct(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	product := createProduct(t, r, "Coffee Mug", "MUG-1", 9.95)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Coffee Mug", product.Name)
	assert.Equal(t, "MUG-1", product.SKU)
	assert.Equal(t, 9.95, product.Price)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestCreateProduct_ValidationErrors(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	rec := testutil.DoJSON(t, r, http.MethodPost, "/api/products", map[string]any{
		"name":        "",
		"description": "",
		"price":       -1,
		"sku":         "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	testutil.Decode(t, rec, &body)
	assert.Equal(t, "validation failed", body.Error)
	assert.Contains(t, body.Details, "name")
	assert.Contains(t, body.Details, "description")
	assert.Contains(t, body.Details, "price")
	assert.Contains(t, body.Details, "sku")
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	createProduct(t, r, "First", "A1", 10)

	// Other fields differ; the SKU collision alone must reject the request.
	rec := testutil.DoJSON(t, r, http.MethodPost, "/api/products", map[string]any{
		"name":        "Second",
		"description": "completely different",
		"price":       99.99,
		"sku":         "A1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate SKU")
}

func TestGetProduct(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	created := createProduct(t, r, "Teapot", "TEA-1", 24.50)

	rec := testutil.DoJSON(t, r, http.MethodGet, "/api/products/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	testutil.Decode(t, rec, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Teapot", got.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	rec := testutil.DoJSON(t, r, http.MethodGet, "/api/products/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, strings.ToLower(rec.Body.String()), "not found")
}

func TestUpdateProduct(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	created := createProduct(t, r, "Old Name", "UPD-1", 5)

	rec := testutil.DoJSON(t, r, http.MethodPut, "/api/products/"+created.ID, map[string]any{
		"name":        "New Name",
		"description": "updated",
		"price":       7.5,
		"sku":         "UPD-2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Product
	testutil.Decode(t, rec, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, 7.5, updated.Price)
	assert.Equal(t, "UPD-2", updated.SKU)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateProduct_OwnSKUNeverConflicts(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	created := createProduct(t, r, "Keeper", "KEEP-1", 3)

	rec := testutil.DoJSON(t, r, http.MethodPut, "/api/products/"+created.ID, map[string]any{
		"name":        "Keeper",
		"description": "same sku resubmitted",
		"price":       3,
		"sku":         "KEEP-1",
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUpdateProduct_DuplicateSKU(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	createProduct(t, r, "Holder", "TAKEN", 4)
	other := createProduct(t, r, "Claimer", "FREE", 4)

	rec := testutil.DoJSON(t, r, http.MethodPut, "/api/products/"+other.ID, map[string]any{
		"name":        "Claimer",
		"description": "tries to steal a sku",
		"price":       4,
		"sku":         "TAKEN",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate SKU")
}

func TestUpdateProduct_NotFound(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	rec := testutil.DoJSON(t, r, http.MethodPut, "/api/products/missing", map[string]any{
		"name":        "x",
		"description": "x",
		"price":       1,
		"sku":         "X-1",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	r, db, _ := testutil.NewTestServer(t)

	created := createProduct(t, r, "Doomed", "DEL-1", 2)

	rec := testutil.DoJSON(t, r, http.MethodPost, "/api/products/"+created.ID+"/images", map[string]any{
		"url": "https://cdn.example.com/doomed.png",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = testutil.DoJSON(t, r, http.MethodDelete, "/api/products/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Cascade: no image rows survive the product
	var count int64
	require.NoError(t, db.Model(&models.ProductImage{}).Where("product_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Image listing for the deleted product is a not-found, not an empty list
	rec = testutil.DoJSON(t, r, http.MethodGet, "/api/products/"+created.ID+"/images", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Repeated delete is a not-found, not a silent success
	rec = testutil.DoJSON(t, r, http.MethodDelete, "/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProducts(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	first := createProduct(t, r, "Alpha", "LIST-1", 1)
	createProduct(t, r, "Beta", "LIST-2", 2)

	rec := testutil.DoJSON(t, r, http.MethodPost, "/api/products/"+first.ID+"/images", map[string]any{
		"url":      "https://cdn.example.com/alpha.png",
		"position": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = testutil.DoJSON(t, r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	testutil.Decode(t, rec, &products)
	require.Len(t, products, 2)

	byID := map[string]models.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	require.Contains(t, byID, first.ID)
	assert.Len(t, byID[first.ID].Images, 1)
}

func TestListProducts_Filters(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	createProduct(t, r, "Cheap Widget", "W-1", 5)
	createProduct(t, r, "Expensive Widget", "W-2", 50)
	createProduct(t, r, "Gadget", "G-1", 20)

	rec := testutil.DoJSON(t, r, http.MethodGet, "/api/products?search=Widget&min_price=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	testutil.Decode(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Expensive Widget", products[0].Name)

	rec = testutil.DoJSON(t, r, http.MethodGet, "/api/products?sort_by=drop_tables", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
