package handlers

import (
	"net/http"

	"github.com/SoloAk21/ecommerce-backend/models"
	"github.com/SoloAk21/ecommerce-backend/repository"
	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	store *repository.Store
}

func NewAddressHandler(store *repository.Store) *AddressHandler {
	return &AddressHandler{store: store}
}

func (h *AddressHandler) Create(c *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required"`
		UserID uint   `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.store.Users.Exists(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	address := models.Address{Name: req.Name, UserID: req.UserID}
	if err := h.store.Addresses.Create(c.Request.Context(), &address); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := parseUintQuery(c, "user_id")
	if !ok {
		return
	}
	addresses, err := h.store.Addresses.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	address, err := h.store.Addresses.Get(c.Request.Context(), id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name   *string `json:"name"`
		UserID *uint   `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address, err := h.store.Addresses.Get(c.Request.Context(), id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Name != nil {
		address.Name = *req.Name
	}
	if req.UserID != nil {
		address.UserID = *req.UserID
	}
	if err := h.store.Addresses.Save(c.Request.Context(), address); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.Addresses.Get(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := h.store.Addresses.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
