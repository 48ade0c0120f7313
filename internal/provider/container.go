package provider

import (
	"github.com/meeple-tees/internal/cache"
	"github.com/meeple-tees/internal/config"
	"github.com/meeple-tees/internal/logger"
	"github.com/meeple-tees/internal/models"
	"github.com/meeple-tees/internal/queue"
	"github.com/meeple-tees/internal/repository"
	"github.com/meeple-tees/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	TShirtRepo repository.TShirtRepository
	OrderRepo  repository.OrderRepository

	// Services
	InventoryService *service.InventoryService
	OrderService     *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.TShirtRepo = repository.NewTShirtRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	db := models.DB
	c.InventoryService = service.NewInventoryService(db, c.TShirtRepo, c.Config.Inventory)
	c.OrderService = service.NewOrderService(db, c.OrderRepo, c.TShirtRepo, c.Config.Inventory.RestoreFulfilledOnly)
}
