package handlers

import (
	"net/http"

	"github.com/SoloAk21/ecommerce-backend/models"
	"github.com/SoloAk21/ecommerce-backend/repository"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	store *repository.Store
}

func NewProductHandler(store *repository.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Price       *int   `json:"price" binding:"required"`
		Quantity    *int   `json:"quantity" binding:"required"`
		CategoryID  uint   `json:"category_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
		return
	}
	if *req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be non-negative"})
		return
	}

	// A bad category reference surfaces as a validation failure here, not a
	// 404 like the other resources.
	exists, err := h.store.Categories.Exists(c.Request.Context(), req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
		CategoryID:  req.CategoryID,
	}
	if err := h.store.Products.Create(c.Request.Context(), &product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.Products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.store.Products.Get(c.Request.Context(), id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Price       *int    `json:"price"`
		Quantity    *int    `json:"quantity"`
		CategoryID  *uint   `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price != nil && *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
		return
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be non-negative"})
		return
	}

	product, err := h.store.Products.Get(c.Request.Context(), id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if req.CategoryID != nil {
		exists, err := h.store.Categories.Exists(c.Request.Context(), *req.CategoryID)
		if err != nil {
			respondError(c, err)
			return
		}
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}

	if err := h.store.Products.Save(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	exists, err := h.store.Products.Exists(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err := h.store.Products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateImage handles POST /products/:id/images, the nested create.
func (h *ProductHandler) CreateImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	exists, err := h.store.Products.Exists(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := models.ProductImage{Image: req.Image, ProductID: id}
	if err := h.store.ProductImages.Create(c.Request.Context(), &image); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}
