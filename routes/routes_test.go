package routes_test

import (
	"net/http"
	"testing"

	"github.com/storefront-labs/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	rec := testutil.DoJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	testutil.Decode(t, rec, &body)
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Timestamp)
}

func TestExportProductsToExcel(t *testing.T) {
	r, _, _ := testutil.NewTestServer(t)

	rec := testutil.DoJSON(t, r, http.MethodPost, "/api/products", map[string]any{
		"name":        "Exported",
		"description": "shows up in the sheet",
		"price":       12.5,
		"sku":         "XLS-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = testutil.DoJSON(t, r, http.MethodGet, "/api/products/export-excel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}
