package queue

import (
	"encoding/json"

	"github.com/meeple-tees/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskInventoryRestock 低库存补货任务
	TaskInventoryRestock = constants.TaskInventoryRestock
)

// InventoryRestockPayload 补货任务载荷
type InventoryRestockPayload struct {
	Reason string `json:"reason"`
}

// NewInventoryRestockTask 创建补货任务
func NewInventoryRestockTask(payload InventoryRestockPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInventoryRestock, body), nil
}
