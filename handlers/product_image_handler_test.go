package handlers_test

import (
	"net/http"
	"testing"

	"github.com/SoloAk21/ecommerce-backend/config"
	"github.com/SoloAk21/ecommerce-backend/models"
	"github.com/stretchr/testify/require"
)

func TestCreateProductImage(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	product := seedProduct(t, db, 5)

	w := doRequest(t, router, http.MethodPost, "/productImages", map[string]any{
		"image":      "side.png",
		"product_id": product.ID,
	})
	requireStatus(t, w, http.StatusCreated)
	require.Equal(t, "side.png", decodeBody(t, w)["image"])
}

func TestCreateProductImageUnknownProduct(t *testing.T) {
	router, _ := setupServer(t, config.Config{})

	w := doRequest(t, router, http.MethodPost, "/productImages", map[string]any{
		"image":      "side.png",
		"product_id": 999,
	})
	requireStatus(t, w, http.StatusNotFound)
	require.Equal(t, "Product not found", decodeBody(t, w)["error"])
}

func TestListProductImagesFilterByProduct(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	productA := seedProduct(t, db, 5)
	productB := models.Product{Name: "monitor", Price: 900, Quantity: 3, CategoryID: productA.CategoryID}
	require.NoError(t, db.Create(&productB).Error)
	require.NoError(t, db.Create(&models.ProductImage{Image: "a.png", ProductID: productA.ID}).Error)
	require.NoError(t, db.Create(&models.ProductImage{Image: "b.png", ProductID: productB.ID}).Error)

	w := doRequest(t, router, http.MethodGet, "/productImages?product_id="+itoa(productA.ID), nil)
	requireStatus(t, w, http.StatusOK)

	rows := decodeList(t, w)
	require.Len(t, rows, 1)
	require.Equal(t, "a.png", rows[0]["image"])

	productRef, ok := rows[0]["product"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "keyboard", productRef["name"])
}

func TestUpdateProductImage(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	product := seedProduct(t, db, 5)
	image := models.ProductImage{Image: "old.png", ProductID: product.ID}
	require.NoError(t, db.Create(&image).Error)

	w := doRequest(t, router, http.MethodPut, "/productImages/"+itoa(image.ID), map[string]any{
		"image": "new.png",
	})
	requireStatus(t, w, http.StatusOK)
	require.Equal(t, "new.png", decodeBody(t, w)["image"])
}

func TestGetProductImageNotFound(t *testing.T) {
	router, _ := setupServer(t, config.Config{})

	w := doRequest(t, router, http.MethodGet, "/productImages/999", nil)
	requireStatus(t, w, http.StatusNotFound)
}
