package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/meeple-tees/internal/models"
	"github.com/meeple-tees/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T, restoreFulfilledOnly bool) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.TShirt{}, &models.Order{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewOrderService(db, repository.NewOrderRepository(db), repository.NewTShirtRepository(db), restoreFulfilledOnly)
	return svc, db
}

func seedTShirt(t *testing.T, db *gorm.DB, design, size string, quantity int) *models.TShirt {
	t.Helper()
	item := &models.TShirt{
		DesignName: design,
		Size:       size,
		Color:      "Black",
		Price:      models.NewMoneyFromInt(700),
		Quantity:   quantity,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed tshirt failed: %v", err)
	}
	return item
}

func tshirtQuantity(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var item models.TShirt
	if err := db.First(&item, id).Error; err != nil {
		t.Fatalf("load tshirt failed: %v", err)
	}
	return item.Quantity
}

func orderCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	return count
}

func TestCreateFulfilledOrderDebitsStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 2)

	view, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     2,
		Status:       models.OrderStatusFulfilled,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if view.Quantity != 2 || view.Status != models.OrderStatusFulfilled {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.TShirt == nil || view.TShirt.ID != item.ID || view.TShirt.DesignName != "Winging It" {
		t.Fatalf("unexpected snapshot: %+v", view.TShirt)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 0 {
		t.Fatalf("expected quantity 0 after fulfilled order, got %d", got)
	}
}

func TestCreatePendingOrderKeepsStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 2)

	view, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     2,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if view.Status != models.OrderStatusPending {
		t.Fatalf("expected default status pending, got %s", view.Status)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 2 {
		t.Fatalf("pending order should not touch stock, got %d", got)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 2)

	_, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     3,
		Status:       models.OrderStatusFulfilled,
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 2 {
		t.Fatalf("failed order must not touch stock, got %d", got)
	}
	if got := orderCount(t, db); got != 0 {
		t.Fatalf("failed order must not persist, got %d rows", got)
	}
}

func TestCreatePendingOrderStillChecksStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 2)

	// 库存检查对 pending 同样生效，即便 pending 不扣库存
	_, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     3,
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestCreateOrderMissingTShirt(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)

	_, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     42,
		Quantity:     1,
	})
	if !errors.Is(err, ErrTShirtNotFound) {
		t.Fatalf("expected ErrTShirtNotFound, got %v", err)
	}
	if got := orderCount(t, db); got != 0 {
		t.Fatalf("failed order must not persist, got %d rows", got)
	}
}

func TestCreateOrderInvalidInput(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 2)

	cases := []CreateOrderInput{
		{CustomerName: "  ", TShirtID: item.ID, Quantity: 1},
		{CustomerName: "Alice", TShirtID: 0, Quantity: 1},
		{CustomerName: "Alice", TShirtID: item.ID, Quantity: 0},
		{CustomerName: "Alice", TShirtID: item.ID, Quantity: -1},
	}
	for i, input := range cases {
		if _, err := svc.CreateOrder(input); !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("case %d: expected ErrInvalidOrderInput, got %v", i, err)
		}
	}
}

func TestCreateOrderCustomStatusStoredVerbatim(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 2)

	view, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     1,
		Status:       "reserved",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if view.Status != "reserved" {
		t.Fatalf("status should be stored verbatim, got %s", view.Status)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 2 {
		t.Fatalf("non-fulfilled status must not debit stock, got %d", got)
	}
}

func TestDeleteOrderRestoresStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 5)

	view, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     3,
		Status:       models.OrderStatusFulfilled,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 2 {
		t.Fatalf("expected quantity 2 after debit, got %d", got)
	}

	if err := svc.DeleteOrder(view.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 5 {
		t.Fatalf("expected quantity restored to 5, got %d", got)
	}

	views, err := svc.ListOrders()
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("deleted order should vanish from listing, got %d", len(views))
	}
}

func TestDeleteOrderMissing(t *testing.T) {
	svc, _ := setupOrderServiceTest(t, false)
	if err := svc.DeleteOrder(99); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestDeletePendingOrderInflatesStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 2)

	// 历史行为：pending 订单创建时不扣库存，删除时却照样回补，
	// 一轮 create/delete 后库存从 2 变 4
	view, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     2,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 2 {
		t.Fatalf("pending order must not debit, got %d", got)
	}

	if err := svc.DeleteOrder(view.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 4 {
		t.Fatalf("expected inflated quantity 4, got %d", got)
	}
}

func TestDeletePendingOrderWithRestoreFulfilledOnly(t *testing.T) {
	svc, db := setupOrderServiceTest(t, true)
	item := seedTShirt(t, db, "Winging It", "S", 2)

	view, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     2,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if err := svc.DeleteOrder(view.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 2 {
		t.Fatalf("restore_fulfilled_only should skip pending credit, got %d", got)
	}
}

func TestDeleteFulfilledOrderWithRestoreFulfilledOnly(t *testing.T) {
	svc, db := setupOrderServiceTest(t, true)
	item := seedTShirt(t, db, "Winging It", "S", 5)

	view, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     3,
		Status:       models.OrderStatusFulfilled,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if err := svc.DeleteOrder(view.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 5 {
		t.Fatalf("fulfilled order should credit back, got %d", got)
	}
}

func TestDeleteOrderWithDanglingTShirt(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 2)

	view, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     1,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// 模拟 reset-inventory 清掉 SKU 行之后的悬空引用
	if err := db.Where("1 = 1").Delete(&models.TShirt{}).Error; err != nil {
		t.Fatalf("purge tshirts failed: %v", err)
	}

	if err := svc.DeleteOrder(view.ID); err != nil {
		t.Fatalf("delete with dangling sku should succeed: %v", err)
	}
	if got := orderCount(t, db); got != 0 {
		t.Fatalf("order should be removed, got %d rows", got)
	}
}

func TestListOrdersJoinsSnapshotAndDangling(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 4)

	if _, err := svc.CreateOrder(CreateOrderInput{
		CustomerName:  "Alice",
		CustomerPhone: "555-0101",
		TShirtID:      item.ID,
		Quantity:      1,
	}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	views, err := svc.ListOrders()
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 order, got %d", len(views))
	}
	if views[0].TShirt == nil || views[0].TShirt.DesignName != "Winging It" {
		t.Fatalf("unexpected snapshot: %+v", views[0].TShirt)
	}
	if views[0].CustomerPhone != "555-0101" {
		t.Fatalf("unexpected phone: %s", views[0].CustomerPhone)
	}

	// SKU 行没了之后快照应为 null 而不是报错
	if err := db.Where("1 = 1").Delete(&models.TShirt{}).Error; err != nil {
		t.Fatalf("purge tshirts failed: %v", err)
	}
	views, err = svc.ListOrders()
	if err != nil {
		t.Fatalf("list orders with dangling sku failed: %v", err)
	}
	if views[0].TShirt != nil {
		t.Fatalf("dangling reference should yield nil snapshot, got %+v", views[0].TShirt)
	}
}

func TestStockNeverNegative(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)
	item := seedTShirt(t, db, "Winging It", "S", 3)

	// 连续 fulfilled 下单直到库存耗尽，再次下单必须失败且库存不为负
	for i := 0; i < 3; i++ {
		if _, err := svc.CreateOrder(CreateOrderInput{
			CustomerName: "Alice",
			TShirtID:     item.ID,
			Quantity:     1,
			Status:       models.OrderStatusFulfilled,
		}); err != nil {
			t.Fatalf("order %d failed: %v", i, err)
		}
	}
	if _, err := svc.CreateOrder(CreateOrderInput{
		CustomerName: "Alice",
		TShirtID:     item.ID,
		Quantity:     1,
		Status:       models.OrderStatusFulfilled,
	}); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if got := tshirtQuantity(t, db, item.ID); got != 0 {
		t.Fatalf("quantity must never go negative, got %d", got)
	}
}
