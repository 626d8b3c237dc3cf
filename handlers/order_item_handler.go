package handlers

import (
	"net/http"

	"github.com/SoloAk21/ecommerce-backend/config"
	"github.com/SoloAk21/ecommerce-backend/models"
	"github.com/SoloAk21/ecommerce-backend/repository"
	"github.com/gin-gonic/gin"
)

type OrderItemHandler struct {
	store *repository.Store
	cfg   config.Config
}

func NewOrderItemHandler(store *repository.Store, cfg config.Config) *OrderItemHandler {
	return &OrderItemHandler{store: store, cfg: cfg}
}

// Create reserves stock for an order. In the default mode the sufficiency
// check and the decrement are separate statements, so two concurrent
// requests can both pass the check; inventory.atomic_stock collapses them
// into one conditional UPDATE.
func (h *OrderItemHandler) Create(c *gin.Context) {
	var req struct {
		OrderID   uint `json:"order_id" binding:"required"`
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	exists, err := h.store.Orders.Exists(ctx, req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
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

	quantity := *req.Quantity
	if h.cfg.Inventory.AtomicStock {
		ok, err := h.store.Products.DecrementStockIfAvailable(ctx, product.ID, quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
			return
		}
	} else if product.Quantity < quantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
		return
	}

	item := models.OrderItem{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	}
	if err := h.store.OrderItems.Create(ctx, &item); err != nil {
		respondError(c, err)
		return
	}

	if !h.cfg.Inventory.AtomicStock {
		if err := h.store.Products.UpdateQuantity(ctx, product.ID, product.Quantity-quantity); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusCreated, item)
}

func (h *OrderItemHandler) List(c *gin.Context) {
	orderID, ok := parseUintQuery(c, "order_id")
	if !ok {
		return
	}
	items, err := h.store.OrderItems.List(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *OrderItemHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.store.OrderItems.Get(c.Request.Context(), id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update adjusts the reserved quantity. Stock moves by the difference:
// raising the quantity consumes stock (subject to the sufficiency check),
// lowering it restores stock.
func (h *OrderItemHandler) Update(c *gin.Context) {
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
	if req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	ctx := c.Request.Context()
	item, err := h.store.OrderItems.Get(ctx, id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	product, err := h.store.Products.Get(ctx, item.ProductID)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	diff := *req.Quantity - item.Quantity
	if h.cfg.Inventory.AtomicStock {
		if diff > 0 {
			ok, err := h.store.Products.DecrementStockIfAvailable(ctx, product.ID, diff)
			if err != nil {
				respondError(c, err)
				return
			}
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
				return
			}
		} else if diff < 0 {
			if err := h.store.Products.AdjustStock(ctx, product.ID, -diff); err != nil {
				respondError(c, err)
				return
			}
		}
	} else {
		if diff > 0 && product.Quantity < diff {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
			return
		}
		if err := h.store.Products.UpdateQuantity(ctx, product.ID, product.Quantity-diff); err != nil {
			respondError(c, err)
			return
		}
	}

	item.Quantity = *req.Quantity
	if err := h.store.OrderItems.Save(ctx, item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete removes the reservation without restoring stock.
func (h *OrderItemHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.OrderItems.Get(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := h.store.OrderItems.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
