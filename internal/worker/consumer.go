package worker

import (
	"context"
	"encoding/json"

	"github.com/meeple-tees/internal/logger"
	"github.com/meeple-tees/internal/provider"
	"github.com/meeple-tees/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskInventoryRestock, c.handleInventoryRestock)
}

func (c *Consumer) handleInventoryRestock(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_inventory_restock_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.InventoryRestockPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_inventory_restock_unmarshal_failed", "error", err)
		return err
	}
	restocked, err := c.InventoryService.Restock()
	if err != nil {
		logger.Warnw("worker_inventory_restock_failed", "reason", payload.Reason, "error", err)
		return err
	}
	logger.Infow("worker_inventory_restock_done", "reason", payload.Reason, "restocked", restocked)
	return nil
}
