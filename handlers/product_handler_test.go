package handlers_test

import (
	"net/http"
	"testing"

	"github.com/SoloAk21/ecommerce-backend/config"
	"github.com/SoloAk21/ecommerce-backend/models"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	category := seedCategory(t, db)

	w := doRequest(t, router, http.MethodPost, "/products", map[string]any{
		"name":        "mouse",
		"description": "wireless",
		"price":       500,
		"quantity":    20,
		"category_id": category.ID,
	})
	requireStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	require.Equal(t, "mouse", body["name"])
	require.EqualValues(t, 20, body["quantity"])
}

func TestCreateProductUnknownCategoryIsValidationError(t *testing.T) {
	router, _ := setupServer(t, config.Config{})

	w := doRequest(t, router, http.MethodPost, "/products", map[string]any{
		"name":        "mouse",
		"price":       500,
		"quantity":    20,
		"category_id": 999,
	})
	requireStatus(t, w, http.StatusBadRequest)
	require.Equal(t, "Category not found", decodeBody(t, w)["error"])
}

func TestCreateProductNegativePrice(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	category := seedCategory(t, db)

	w := doRequest(t, router, http.MethodPost, "/products", map[string]any{
		"name":        "mouse",
		"price":       -1,
		"quantity":    20,
		"category_id": category.ID,
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestCreateProductZeroValuesAllowed(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	category := seedCategory(t, db)

	w := doRequest(t, router, http.MethodPost, "/products", map[string]any{
		"name":        "freebie",
		"price":       0,
		"quantity":    0,
		"category_id": category.ID,
	})
	requireStatus(t, w, http.StatusCreated)
}

func TestGetProductIncludesImagesAndCategory(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	product := seedProduct(t, db, 5)
	require.NoError(t, db.Create(&models.ProductImage{Image: "a.png", ProductID: product.ID}).Error)
	require.NoError(t, db.Create(&models.ProductImage{Image: "b.png", ProductID: product.ID}).Error)

	w := doRequest(t, router, http.MethodGet, "/products/"+itoa(product.ID), nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	images, ok := body["images"].([]any)
	require.True(t, ok)
	require.Len(t, images, 2)

	category, ok := body["category"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "electronics", category["name"])
}

func TestUpdateProductPartialFields(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	product := seedProduct(t, db, 5)

	w := doRequest(t, router, http.MethodPut, "/products/"+itoa(product.ID), map[string]any{
		"price": 999,
	})
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	require.EqualValues(t, 999, body["price"])
	// untouched fields keep their stored values
	require.Equal(t, "keyboard", body["name"])
	require.EqualValues(t, 5, body["quantity"])
}

func TestNestedCreateProductImage(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	product := seedProduct(t, db, 5)

	w := doRequest(t, router, http.MethodPost, "/products/"+itoa(product.ID)+"/images", map[string]any{
		"image": "front.png",
	})
	requireStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	require.Equal(t, "front.png", body["image"])
	require.EqualValues(t, product.ID, body["product_id"])
}

func TestNestedCreateProductImageUnknownProduct(t *testing.T) {
	router, _ := setupServer(t, config.Config{})

	w := doRequest(t, router, http.MethodPost, "/products/999/images", map[string]any{
		"image": "front.png",
	})
	requireStatus(t, w, http.StatusNotFound)
}

func TestDeleteProduct(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	product := seedProduct(t, db, 5)

	w := doRequest(t, router, http.MethodDelete, "/products/"+itoa(product.ID), nil)
	requireStatus(t, w, http.StatusNoContent)

	w = doRequest(t, router, http.MethodGet, "/products/"+itoa(product.ID), nil)
	requireStatus(t, w, http.StatusNotFound)
}
