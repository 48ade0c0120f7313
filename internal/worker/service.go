package worker

import (
	"context"
	"errors"
	"time"

	"github.com/meeple-tees/internal/config"
	"github.com/meeple-tees/internal/logger"
	"github.com/meeple-tees/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 异步队列服务
type Service struct {
	name            string
	server          *asynq.Server
	mux             *asynq.ServeMux
	consumer        *Consumer
	restockInterval time.Duration
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, inventoryCfg config.InventoryConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	restockInterval := time.Duration(inventoryCfg.RestockIntervalMinutes) * time.Minute
	return &Service{
		name:            "worker",
		server:          server,
		mux:             mux,
		consumer:        consumer,
		restockInterval: restockInterval,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.restockInterval > 0 && s.consumer != nil && s.consumer.QueueClient.Enabled() {
		go s.runRestockLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runRestockLoop 周期性地把补货扫描任务投递到队列
func (s *Service) runRestockLoop(ctx context.Context) {
	enqueue := func() {
		payload := queue.InventoryRestockPayload{Reason: "scheduled"}
		if err := s.consumer.QueueClient.EnqueueInventoryRestock(payload); err != nil {
			logger.Warnw("worker_restock_enqueue_failed", "error", err)
		}
	}
	enqueue()

	ticker := time.NewTicker(s.restockInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			enqueue()
		}
	}
}
