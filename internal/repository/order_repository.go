package repository

import (
	"errors"

	"github.com/meeple-tees/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	List() ([]models.Order, error)
	Delete(id uint) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create 创建订单
func (r *GormOrderRepository) Create(order *models.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	return r.db.Create(order).Error
}

// GetByID 根据 ID 获取订单，不存在返回 nil
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	if id == 0 {
		return nil, errors.New("invalid order id")
	}
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List 获取全部订单并预加载关联 SKU（按 ID 升序）。
// reset 之后悬空的 tshirt_id 预加载不到行，TShirt 保持 nil。
func (r *GormOrderRepository) List() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("TShirt").Order("id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete 删除订单行
func (r *GormOrderRepository) Delete(id uint) error {
	if id == 0 {
		return errors.New("invalid order id")
	}
	return r.db.Delete(&models.Order{}, id).Error
}
