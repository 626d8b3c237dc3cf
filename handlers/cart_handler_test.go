package handlers_test

import (
	"net/http"
	"testing"

	"github.com/SoloAk21/ecommerce-backend/config"
	"github.com/SoloAk21/ecommerce-backend/models"
	"github.com/stretchr/testify/require"
)

func TestAddToCartMergesExistingRow(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	user := seedUser(t, db)
	product := seedProduct(t, db, 10)

	w := doRequest(t, router, http.MethodPost, "/carts", map[string]any{
		"user_id": user.ID, "product_id": product.ID, "quantity": 3,
	})
	requireStatus(t, w, http.StatusCreated)

	w = doRequest(t, router, http.MethodPost, "/carts", map[string]any{
		"user_id": user.ID, "product_id": product.ID, "quantity": 2,
	})
	requireStatus(t, w, http.StatusCreated)
	require.EqualValues(t, 5, decodeBody(t, w)["quantity"])

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).
		Where("user_id = ? AND product_id = ?", user.ID, product.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAddToCartInsufficientStock(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	user := seedUser(t, db)
	product := seedProduct(t, db, 2)

	w := doRequest(t, router, http.MethodPost, "/carts", map[string]any{
		"user_id": user.ID, "product_id": product.ID, "quantity": 3,
	})
	requireStatus(t, w, http.StatusBadRequest)
	require.Equal(t, "Insufficient stock", decodeBody(t, w)["error"])
}

func TestAddToCartUnknownUser(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	product := seedProduct(t, db, 5)

	w := doRequest(t, router, http.MethodPost, "/carts", map[string]any{
		"user_id": 999, "product_id": product.ID, "quantity": 1,
	})
	requireStatus(t, w, http.StatusNotFound)
	require.Equal(t, "User not found", decodeBody(t, w)["error"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	user := seedUser(t, db)

	w := doRequest(t, router, http.MethodPost, "/carts", map[string]any{
		"user_id": user.ID, "product_id": 999, "quantity": 1,
	})
	requireStatus(t, w, http.StatusNotFound)
	require.Equal(t, "Product not found", decodeBody(t, w)["error"])
}

func TestAddToCartDoesNotTouchStock(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	user := seedUser(t, db)
	product := seedProduct(t, db, 10)

	w := doRequest(t, router, http.MethodPost, "/carts", map[string]any{
		"user_id": user.ID, "product_id": product.ID, "quantity": 4,
	})
	requireStatus(t, w, http.StatusCreated)
	require.Equal(t, 10, productQuantity(t, db, product.ID))
}

func TestGetCartByUser(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	user := seedUser(t, db)
	other := seedUser(t, db)
	product := seedProduct(t, db, 10)
	require.NoError(t, db.Create(&models.Cart{UserID: user.ID, ProductID: product.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: other.ID, ProductID: product.ID, Quantity: 1}).Error)

	w := doRequest(t, router, http.MethodGet, "/carts/user/"+itoa(user.ID), nil)
	requireStatus(t, w, http.StatusOK)

	rows := decodeList(t, w)
	require.Len(t, rows, 1)
	require.EqualValues(t, 2, rows[0]["quantity"])

	// eager-loaded product projection
	productRef, ok := rows[0]["product"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "keyboard", productRef["name"])
	require.EqualValues(t, 1200, productRef["price"])
}

func TestUpdateCartInsufficientStock(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	user := seedUser(t, db)
	product := seedProduct(t, db, 5)
	cart := models.Cart{UserID: user.ID, ProductID: product.ID, Quantity: 2}
	require.NoError(t, db.Create(&cart).Error)

	w := doRequest(t, router, http.MethodPut, "/carts/"+itoa(cart.ID), map[string]any{
		"quantity": 6,
	})
	requireStatus(t, w, http.StatusBadRequest)
	require.Equal(t, "Insufficient stock", decodeBody(t, w)["error"])
}

func TestUpdateCart(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	user := seedUser(t, db)
	product := seedProduct(t, db, 5)
	cart := models.Cart{UserID: user.ID, ProductID: product.ID, Quantity: 2}
	require.NoError(t, db.Create(&cart).Error)

	w := doRequest(t, router, http.MethodPut, "/carts/"+itoa(cart.ID), map[string]any{
		"quantity": 4,
	})
	requireStatus(t, w, http.StatusOK)
	require.EqualValues(t, 4, decodeBody(t, w)["quantity"])
	require.Equal(t, 5, productQuantity(t, db, product.ID))
}

func TestDeleteCartKeepsStock(t *testing.T) {
	router, db := setupServer(t, config.Config{})
	user := seedUser(t, db)
	product := seedProduct(t, db, 8)
	cart := models.Cart{UserID: user.ID, ProductID: product.ID, Quantity: 3}
	require.NoError(t, db.Create(&cart).Error)

	w := doRequest(t, router, http.MethodDelete, "/carts/"+itoa(cart.ID), nil)
	requireStatus(t, w, http.StatusNoContent)
	require.Equal(t, 8, productQuantity(t, db, product.ID))

	w = doRequest(t, router, http.MethodGet, "/carts/"+itoa(cart.ID), nil)
	requireStatus(t, w, http.StatusNotFound)
}
