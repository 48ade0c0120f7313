package service

import (
	"context"
	"math/rand"

	"github.com/meeple-tees/internal/cache"
	"github.com/meeple-tees/internal/config"
	"github.com/meeple-tees/internal/logger"
	"github.com/meeple-tees/internal/models"
	"github.com/meeple-tees/internal/repository"

	"gorm.io/gorm"
)

// InventoryService 库存业务逻辑（SKU 查询、重置、补货）
type InventoryService struct {
	db         *gorm.DB
	tshirtRepo repository.TShirtRepository

	lowStockThreshold int
	restockMin        int
	restockMax        int

	// randIntn 可注入随机源，测试时固定补货数量
	randIntn func(n int) int
}

// NewInventoryService 创建库存服务
func NewInventoryService(db *gorm.DB, tshirtRepo repository.TShirtRepository, cfg config.InventoryConfig) *InventoryService {
	threshold := cfg.LowStockThreshold
	if threshold <= 0 {
		threshold = 5
	}
	min := cfg.RestockMin
	if min <= 0 {
		min = 1
	}
	max := cfg.RestockMax
	if max < min {
		max = min
	}
	return &InventoryService{
		db:                db,
		tshirtRepo:        tshirtRepo,
		lowStockThreshold: threshold,
		restockMin:        min,
		restockMax:        max,
		randIntn:          rand.Intn,
	}
}

// SetRandIntn 替换补货随机源（测试用）
func (s *InventoryService) SetRandIntn(fn func(n int) int) {
	if fn != nil {
		s.randIntn = fn
	}
}

// ListTShirts 获取全部 SKU。优先读缓存，未命中回源并写回。
func (s *InventoryService) ListTShirts() ([]models.TShirt, error) {
	ctx := context.Background()
	if items, hit, err := cache.GetTShirtList(ctx); err == nil && hit {
		return items, nil
	} else if err != nil {
		logger.Warnw("tshirt_list_cache_read_failed", "error", err)
	}

	items, err := s.tshirtRepo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetTShirtList(ctx, items); err != nil {
		logger.Warnw("tshirt_list_cache_write_failed", "error", err)
	}
	return items, nil
}

// ResetInventory 把目录重置为种子状态：清空全部 SKU 行后重新插入种子目录。
// 订单不动；旧订单的 tshirt_id 从此悬空（列表中 SKU 快照为 null），
// 这是继承自原有行为的已知一致性缺口。
func (s *InventoryService) ResetInventory() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		tshirtRepo := s.tshirtRepo.WithTx(tx)
		if err := tshirtRepo.DeleteAll(); err != nil {
			return err
		}
		return tshirtRepo.CreateBatch(models.SeedCatalog())
	})
	if err != nil {
		return err
	}

	if err := cache.InvalidateTShirtList(context.Background()); err != nil {
		logger.Warnw("reset_inventory_cache_invalidate_failed", "error", err)
	}
	logger.Infow("inventory_reset", "seed_rows", models.SeedCatalogSize())
	return nil
}

// Restock 补货扫描：库存低于阈值的每个 SKU 随机补 [restockMin, restockMax] 件。
// 返回补货的 SKU 行数；不扣减任何 SKU。
func (s *InventoryService) Restock() (int, error) {
	var restocked int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		tshirtRepo := s.tshirtRepo.WithTx(tx)
		items, err := tshirtRepo.ListBelowQuantity(s.lowStockThreshold)
		if err != nil {
			return err
		}
		for i := range items {
			amount := s.restockAmount()
			if _, err := tshirtRepo.CreditStock(items[i].ID, amount); err != nil {
				return err
			}
			restocked++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if restocked > 0 {
		if err := cache.InvalidateTShirtList(context.Background()); err != nil {
			logger.Warnw("restock_cache_invalidate_failed", "error", err)
		}
	}
	logger.Infow("inventory_restocked", "skus", restocked, "threshold", s.lowStockThreshold)
	return restocked, nil
}

func (s *InventoryService) restockAmount() int {
	span := s.restockMax - s.restockMin + 1
	if span <= 1 {
		return s.restockMin
	}
	return s.restockMin + s.randIntn(span)
}
