package handlers

import (
	"net/http"

	"github.com/SoloAk21/ecommerce-backend/models"
	"github.com/SoloAk21/ecommerce-backend/repository"
	"github.com/gin-gonic/gin"
)

type ProductImageHandler struct {
	store *repository.Store
}

func NewProductImageHandler(store *repository.Store) *ProductImageHandler {
	return &ProductImageHandler{store: store}
}

func (h *ProductImageHandler) Create(c *gin.Context) {
	var req struct {
		Image     string `json:"image" binding:"required"`
		ProductID uint   `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.store.Products.Exists(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	image := models.ProductImage{Image: req.Image, ProductID: req.ProductID}
	if err := h.store.ProductImages.Create(c.Request.Context(), &image); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *ProductImageHandler) List(c *gin.Context) {
	productID, ok := parseUintQuery(c, "product_id")
	if !ok {
		return
	}
	images, err := h.store.ProductImages.List(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *ProductImageHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	image, err := h.store.ProductImages.Get(c.Request.Context(), id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product image not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *ProductImageHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Image     *string `json:"image"`
		ProductID *uint   `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.store.ProductImages.Get(c.Request.Context(), id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product image not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Image != nil {
		image.Image = *req.Image
	}
	if req.ProductID != nil {
		image.ProductID = *req.ProductID
	}
	if err := h.store.ProductImages.Save(c.Request.Context(), image); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *ProductImageHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.ProductImages.Get(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product image not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := h.store.ProductImages.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
