package worker

import (
	"context"
	"errors"
	"time"

	"github.com/meeple-tees/internal/config"
	"github.com/meeple-tees/internal/logger"
	"github.com/meeple-tees/internal/service"
)

// RestockLoop 进程内补货定时器。
// 队列未启用时作为 worker 的降级方案，直接在本进程执行补货扫描。
type RestockLoop struct {
	name      string
	interval  time.Duration
	inventory *service.InventoryService
	cancel    context.CancelFunc
}

// NewRestockLoop 创建进程内补货定时器
func NewRestockLoop(inventoryCfg config.InventoryConfig, inventory *service.InventoryService) (*RestockLoop, error) {
	if inventory == nil {
		return nil, errors.New("inventory service is nil")
	}
	interval := time.Duration(inventoryCfg.RestockIntervalMinutes) * time.Minute
	if interval <= 0 {
		return nil, errors.New("restock interval disabled")
	}
	return &RestockLoop{
		name:      "restock-loop",
		interval:  interval,
		inventory: inventory,
	}, nil
}

// Name 服务名称
func (l *RestockLoop) Name() string {
	if l == nil || l.name == "" {
		return "restock-loop"
	}
	return l.name
}

// Start 启动定时器，阻塞直到 ctx 取消
func (l *RestockLoop) Start(ctx context.Context) error {
	if l == nil || l.inventory == nil {
		return errors.New("restock loop not initialized")
	}
	ctx, l.cancel = context.WithCancel(ctx)

	runOnce := func() {
		restocked, err := l.inventory.Restock()
		if err != nil {
			logger.Warnw("restock_loop_failed", "error", err)
			return
		}
		if restocked > 0 {
			logger.Infow("restock_loop_done", "restocked", restocked)
		}
	}
	runOnce()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			runOnce()
		}
	}
}

// Stop 停止定时器
func (l *RestockLoop) Stop(ctx context.Context) error {
	if l == nil || l.cancel == nil {
		return nil
	}
	_ = ctx
	l.cancel()
	return nil
}
