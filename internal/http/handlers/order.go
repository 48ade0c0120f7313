package handlers

import (
	"strconv"

	"github.com/meeple-tees/internal/http/response"
	"github.com/meeple-tees/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
	TShirtID      uint   `json:"tshirt_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
	Status        string `json:"status"`
}

// CreateOrder 创建订单
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid order payload")
		return
	}

	view, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TShirtID:      req.TShirtID,
		Quantity:      req.Quantity,
		Status:        req.Status,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.JSON(c, view)
}

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	views, err := h.OrderService.ListOrders()
	if err != nil {
		respondWithMappedError(c, err, nil)
		return
	}
	response.JSON(c, views)
}

// DeleteOrder 删除订单并回补库存
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, "Order not found")
		return
	}

	if err := h.OrderService.DeleteOrder(uint(id)); err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.Message(c, "Order deleted successfully")
}
