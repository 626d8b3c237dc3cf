package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SoloAk21/ecommerce-backend/config"
	"github.com/SoloAk21/ecommerce-backend/models"
	"github.com/SoloAk21/ecommerce-backend/repository"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	store *repository.Store
	cfg   config.Config
}

func NewOrderHandler(store *repository.Store, cfg config.Config) *OrderHandler {
	return &OrderHandler{store: store, cfg: cfg}
}

type orderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// Create places an order, optionally with items. By default items are
// validated and decremented one after another: a failure aborts the request
// but keeps the order row and the decrements already applied for earlier
// items. With orders.transactional the whole flow is one transaction.
func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		UserID uint             `json:"user_id" binding:"required"`
		Items  []orderItemInput `json:"items"`
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

	var order *models.Order
	run := func(s *repository.Store) error {
		o, err := h.createOrderWithItems(ctx, s, req.UserID, req.Items)
		order = o
		return err
	}
	if h.cfg.Orders.Transactional {
		err = h.store.Transaction(ctx, run)
	} else {
		err = run(h.store)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.store.Orders.Get(ctx, order.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, full)
}

func (h *OrderHandler) createOrderWithItems(ctx context.Context, s *repository.Store, userID uint, items []orderItemInput) (*models.Order, error) {
	order := &models.Order{UserID: userID}
	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return order, nil
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if h.cfg.Inventory.AtomicStock {
			ok, err := s.Products.DecrementStockIfAvailable(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return nil, err
			}
			if !ok {
				exists, err := s.Products.Exists(ctx, item.ProductID)
				if err != nil {
					return nil, err
				}
				if !exists {
					return nil, &apiError{http.StatusBadRequest, fmt.Sprintf("Product %d not found", item.ProductID)}
				}
				return nil, &apiError{http.StatusBadRequest, fmt.Sprintf("Insufficient stock for product %d", item.ProductID)}
			}
		} else {
			product, err := s.Products.Get(ctx, item.ProductID)
			if isNotFound(err) {
				return nil, &apiError{http.StatusBadRequest, fmt.Sprintf("Product %d not found", item.ProductID)}
			}
			if err != nil {
				return nil, err
			}
			if product.Quantity < item.Quantity {
				return nil, &apiError{http.StatusBadRequest, fmt.Sprintf("Insufficient stock for product %d", item.ProductID)}
			}
			if err := s.Products.UpdateQuantity(ctx, product.ID, product.Quantity-item.Quantity); err != nil {
				return nil, err
			}
		}
		orderItems = append(orderItems, models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.OrderItems.CreateBatch(ctx, orderItems); err != nil {
		return nil, err
	}
	return order, nil
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.store.Orders.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.store.Orders.Get(c.Request.Context(), id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		UserID *uint `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.store.Orders.Get(c.Request.Context(), id)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if req.UserID != nil {
		order.UserID = *req.UserID
	}
	if err := h.store.Orders.Save(c.Request.Context(), order); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Delete removes the order's items first, then the order. Stock consumed by
// the items is not restored.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	exists, err := h.store.Orders.Exists(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err := h.store.OrderItems.DeleteByOrder(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.Orders.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
