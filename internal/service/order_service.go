package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/meeple-tees/internal/cache"
	"github.com/meeple-tees/internal/logger"
	"github.com/meeple-tees/internal/models"
	"github.com/meeple-tees/internal/repository"

	"gorm.io/gorm"
)

var (
	// ErrTShirtNotFound 订单引用的 SKU 不存在
	ErrTShirtNotFound = errors.New("tshirt not found")
	// ErrInsufficientStock 下单数量超过 SKU 当前库存
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidOrderInput 订单入参非法（姓名为空、数量 <= 0 等）
	ErrInvalidOrderInput = errors.New("invalid order input")
)

// OrderService 订单业务逻辑
type OrderService struct {
	db         *gorm.DB
	orderRepo  repository.OrderRepository
	tshirtRepo repository.TShirtRepository

	// restoreFulfilledOnly 删除订单时仅 fulfilled 订单回补库存。
	// 关闭（默认）时与历史行为一致：pending 订单删除同样回补，
	// 反复 create-pending/delete 会把库存抬高到种子值以上。
	restoreFulfilledOnly bool
}

// NewOrderService 创建订单服务
func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, tshirtRepo repository.TShirtRepository, restoreFulfilledOnly bool) *OrderService {
	return &OrderService{
		db:                   db,
		orderRepo:            orderRepo,
		tshirtRepo:           tshirtRepo,
		restoreFulfilledOnly: restoreFulfilledOnly,
	}
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	TShirtID      uint
	Quantity      int
	Status        string
}

// TShirtSnapshot 订单响应中关联 SKU 的字段快照
type TShirtSnapshot struct {
	ID         uint         `json:"id"`
	DesignName string       `json:"design_name"`
	Size       string       `json:"size"`
	Color      string       `json:"color"`
	Price      models.Money `json:"price"`
}

// OrderView 订单视图（订单字段 + 关联 SKU 快照）。
// reset 之后 SKU 行可能已不存在，此时 TShirt 为 null。
type OrderView struct {
	ID            uint            `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	TShirt        *TShirtSnapshot `json:"tshirt"`
	Quantity      int             `json:"quantity"`
	Status        string          `json:"status"`
	OrderDate     time.Time       `json:"order_date"`
}

func newTShirtSnapshot(tshirt *models.TShirt) *TShirtSnapshot {
	if tshirt == nil {
		return nil
	}
	return &TShirtSnapshot{
		ID:         tshirt.ID,
		DesignName: tshirt.DesignName,
		Size:       tshirt.Size,
		Color:      tshirt.Color,
		Price:      tshirt.Price,
	}
}

func newOrderView(order *models.Order, tshirt *models.TShirt) *OrderView {
	return &OrderView{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		TShirt:        newTShirtSnapshot(tshirt),
		Quantity:      order.Quantity,
		Status:        order.Status,
		OrderDate:     order.OrderDate,
	}
}

// resolveOrderStatus 归一化订单状态：留空取默认 pending，其余值原样保存
func resolveOrderStatus(status string) string {
	normalized := strings.TrimSpace(status)
	if normalized == "" {
		return models.OrderStatusPending
	}
	return normalized
}

// CreateOrder 创建订单。库存检查对任何状态都执行；
// 仅 fulfilled 状态在同一事务内扣减库存。
func (s *OrderService) CreateOrder(input CreateOrderInput) (*OrderView, error) {
	name := strings.TrimSpace(input.CustomerName)
	if name == "" || input.TShirtID == 0 || input.Quantity <= 0 {
		return nil, ErrInvalidOrderInput
	}
	status := resolveOrderStatus(input.Status)

	var view *OrderView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		tshirtRepo := s.tshirtRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		tshirt, err := tshirtRepo.GetByID(input.TShirtID)
		if err != nil {
			return err
		}
		if tshirt == nil {
			return ErrTShirtNotFound
		}
		if input.Quantity > tshirt.Quantity {
			return ErrInsufficientStock
		}

		order := &models.Order{
			CustomerName:  name,
			CustomerPhone: strings.TrimSpace(input.CustomerPhone),
			TShirtID:      tshirt.ID,
			Quantity:      input.Quantity,
			Status:        status,
			OrderDate:     time.Now().UTC(),
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		if status == models.OrderStatusFulfilled {
			affected, err := tshirtRepo.DebitStock(tshirt.ID, input.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				// 条件更新兜底：并发下其他事务先扣走了库存
				return ErrInsufficientStock
			}
			tshirt.Quantity -= input.Quantity
		}

		view = newOrderView(order, tshirt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if status == models.OrderStatusFulfilled {
		if err := cache.InvalidateTShirtList(context.Background()); err != nil {
			logger.Warnw("order_create_cache_invalidate_failed", "error", err)
		}
	}
	logger.Infow("order_created",
		"order_id", view.ID,
		"tshirt_id", input.TShirtID,
		"quantity", input.Quantity,
		"status", status,
	)
	return view, nil
}

// ListOrders 获取全部订单（含 SKU 快照）
func (s *OrderService) ListOrders() ([]OrderView, error) {
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		if order.TShirt == nil {
			// reset-inventory 之后的悬空引用，快照置空
			logger.Warnw("order_tshirt_dangling", "order_id", order.ID, "tshirt_id", order.TShirtID)
		}
		views = append(views, *newOrderView(order, order.TShirt))
	}
	return views, nil
}

// DeleteOrder 删除订单并回补库存。
// 默认无论订单状态都回补（与历史行为一致）；
// restoreFulfilledOnly 开启后仅 fulfilled 订单回补。
func (s *OrderService) DeleteOrder(orderID uint) error {
	if orderID == 0 {
		return ErrOrderNotFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		tshirtRepo := s.tshirtRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		restore := !s.restoreFulfilledOnly || order.Status == models.OrderStatusFulfilled
		if restore {
			affected, err := tshirtRepo.CreditStock(order.TShirtID, order.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				// SKU 行已被 reset 清除，只删订单即可
				logger.Warnw("order_delete_tshirt_missing", "order_id", order.ID, "tshirt_id", order.TShirtID)
			}
		}

		return orderRepo.Delete(order.ID)
	})
	if err != nil {
		return err
	}

	if err := cache.InvalidateTShirtList(context.Background()); err != nil {
		logger.Warnw("order_delete_cache_invalidate_failed", "error", err)
	}
	logger.Infow("order_deleted", "order_id", orderID)
	return nil
}
