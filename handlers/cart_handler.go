package handlers

import (
	"net/http"

	"github.com/SoloAk21/ecommerce-backend/models"
	"github.com/SoloAk21/ecommerce-backend/repository"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	store *repository.Store
}

func NewCartHandler(store *repository.Store) *CartHandler {
	return &CartHandler{store: store}
}

// Create adds a product to a user's cart. A second add for the same
// (user_id, product_id) merges into the existing row by summing quantities.
// The sufficiency check compares the requested amount against raw stock
// only; quantities already sitting in carts are not reserved.
func (h *CartHandler) Create(c *gin.Context) {
	var req struct {
		UserID    uint `json:"user_id" binding:"required"`
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	exists, err := h.store.Users.Exists(ctx, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	product, err := h.store.Products.Get(ctx, req.ProductID)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if product.Quantity < *req.Quantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
		return
	}

	cart, err := h.store.Carts.FindByUserAndProduct(ctx, req.UserID, req.ProductID)
	switch {
	case err == nil:
		cart.Quantity += *req.Quantity
		if err := h.store.Carts.Save(ctx, cart); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cart)
	case isNotFound(err):
		cart = &models.Cart{
			UserID:    req.UserID,
			ProductID: req.ProductID,
			Quantity:  *req.Quantity,
		}
		if err := h.store.Carts.Create(ctx, cart); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cart)
	default:
		respondError(c, err)
	}
}

func (h *CartHandler) List(c *gin.Context) {
	userID, ok := parseUintQuery(c, "user_id")
	if !ok {
		return
	}
	carts, err := h.store.Carts.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, carts)
}

// ListByUser handles GET /carts/user/:user_id.
func (h *CartHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	carts, err := h.store.Carts.List(c.Request.Context(), &userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, carts)
}

func (h *CartHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cart, err := h.store.Carts.Get(c.Request.Context(), id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// Update changes a cart row's quantity. The new quantity is checked against
// the product's current stock; the stock itself is never mutated here.
func (h *CartHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	cart, err := h.store.Carts.Get(ctx, id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Quantity != nil {
		product, err := h.store.Products.Get(ctx, cart.ProductID)
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		if *req.Quantity > product.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
			return
		}
		cart.Quantity = *req.Quantity
	}

	if err := h.store.Carts.Save(ctx, cart); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// Delete removes the cart row. Stock is not restored.
func (h *CartHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.Carts.Get(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := h.store.Carts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
