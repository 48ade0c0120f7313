package repository

import (
	"errors"

	"github.com/meeple-tees/internal/models"

	"gorm.io/gorm"
)

// TShirtRepository T恤 SKU 数据访问接口
type TShirtRepository interface {
	List() ([]models.TShirt, error)
	GetByID(id uint) (*models.TShirt, error)
	CreateBatch(items []models.TShirt) error
	DeleteAll() error
	ListBelowQuantity(threshold int) ([]models.TShirt, error)
	DebitStock(id uint, quantity int) (int64, error)
	CreditStock(id uint, quantity int) (int64, error)
	WithTx(tx *gorm.DB) TShirtRepository
}

// GormTShirtRepository GORM 实现
type GormTShirtRepository struct {
	db *gorm.DB
}

// NewTShirtRepository 创建 SKU 仓库
func NewTShirtRepository(db *gorm.DB) *GormTShirtRepository {
	return &GormTShirtRepository{db: db}
}

// WithTx 绑定事务
func (r *GormTShirtRepository) WithTx(tx *gorm.DB) TShirtRepository {
	if tx == nil {
		return r
	}
	return &GormTShirtRepository{db: tx}
}

// List 获取全部 SKU（按 ID 升序）
func (r *GormTShirtRepository) List() ([]models.TShirt, error) {
	var items []models.TShirt
	if err := r.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取 SKU，不存在返回 nil
func (r *GormTShirtRepository) GetByID(id uint) (*models.TShirt, error) {
	if id == 0 {
		return nil, errors.New("invalid tshirt id")
	}
	var item models.TShirt
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// CreateBatch 批量创建 SKU
func (r *GormTShirtRepository) CreateBatch(items []models.TShirt) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

// DeleteAll 清空全部 SKU 行
func (r *GormTShirtRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.TShirt{}).Error
}

// ListBelowQuantity 获取库存低于阈值的 SKU
func (r *GormTShirtRepository) ListBelowQuantity(threshold int) ([]models.TShirt, error) {
	var items []models.TShirt
	if err := r.db.Where("quantity < ?", threshold).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DebitStock 扣减库存。条件更新：仅当剩余库存足够时生效，
// 返回受影响行数（0 表示库存不足或 SKU 不存在）。
func (r *GormTShirtRepository) DebitStock(id uint, quantity int) (int64, error) {
	if id == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock debit params")
	}
	result := r.db.Model(&models.TShirt{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CreditStock 回补库存，返回受影响行数（0 表示 SKU 不存在）
func (r *GormTShirtRepository) CreditStock(id uint, quantity int) (int64, error) {
	if id == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock credit params")
	}
	result := r.db.Model(&models.TShirt{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
