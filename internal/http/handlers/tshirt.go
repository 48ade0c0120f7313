package handlers

import (
	"github.com/meeple-tees/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListTShirts 库存 SKU 列表
func (h *Handler) ListTShirts(c *gin.Context) {
	items, err := h.InventoryService.ListTShirts()
	if err != nil {
		respondWithMappedError(c, err, nil)
		return
	}
	response.JSON(c, items)
}
