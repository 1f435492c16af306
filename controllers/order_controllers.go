package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/javacachava/Pizza-Brava-sub000/kds"
	"github.com/javacachava/Pizza-Brava-sub000/models"
	"github.com/javacachava/Pizza-Brava-sub000/services"
	"github.com/javacachava/Pizza-Brava-sub000/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:     db,
		Orders: services.NewOrderService(db, services.NewGormCatalog(db)),
	}
}

// GetAllOrders -> list orders with items
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := oc.DB.Preload("Items")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> one order with items
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CreateOrder -> reprice the submitted lines, consolidate, validate
// combos and persist. Clients never dictate prices.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type reqBody struct {
		TableNumber int                  `json:"table_number"`
		Items       []services.OrderLine `json:"items" binding:"required"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cashierID := uint(0)
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			cashierID = id
		}
	}

	cart, err := oc.Orders.BuildCart(body.Items)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	order, err := oc.Orders.Submit(cashierID, body.TableNumber, cart)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order #%d created, %d line(s), total %s",
		order.ID, len(order.Items), utils.FormatCurrency(order.TotalAmount))
	kds.BroadcastOrderCreated(*order)

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// PriceCart -> POST /orders/price
// Reprices and consolidates without persisting, for the order screen
// to show a live cart.
func (oc *OrderController) PriceCart(c *gin.Context) {
	var body struct {
		Items []services.OrderLine `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart, err := oc.Orders.BuildCart(body.Items)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart priced", gin.H{
		"cart":  cart,
		"total": cart.Total(),
	})
}

// UpdateOrderStatus -> PATCH /orders/:order_id/status
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch input.Status {
	case services.OrderStatusReceived, services.OrderStatusPreparing,
		services.OrderStatusReady, services.OrderStatusCompleted,
		services.OrderStatusCancelled:
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown order status"))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	order.Status = input.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	kds.BroadcastOrderStatus(order)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

func respondOrderError(c *gin.Context, err error) {
	var validationErr *services.ComboValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.RespondJSON(c, http.StatusUnprocessableEntity, "Combo validation failed", gin.H{
			"combo_id": validationErr.ComboID,
			"errors":   validationErr.Messages,
		})
	case errors.Is(err, services.ErrUnknownProduct),
		errors.Is(err, services.ErrUnknownCombo):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrInvalidSelection),
		errors.Is(err, services.ErrEmptyCart):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
