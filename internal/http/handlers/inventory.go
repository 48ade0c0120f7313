package handlers

import (
	"github.com/meeple-tees/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ResetInventory 清空并重建初始库存
func (h *Handler) ResetInventory(c *gin.Context) {
	if err := h.InventoryService.ResetInventory(); err != nil {
		respondWithMappedError(c, err, nil)
		return
	}
	response.Message(c, "Inventory reset successfully")
}

// UpdateStock 低库存补货扫描
func (h *Handler) UpdateStock(c *gin.Context) {
	if _, err := h.InventoryService.Restock(); err != nil {
		respondWithMappedError(c, err, nil)
		return
	}
	response.Message(c, "Stock updated successfully")
}
