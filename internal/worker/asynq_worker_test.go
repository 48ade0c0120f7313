package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/meeple-tees/internal/config"
	"github.com/meeple-tees/internal/models"
	"github.com/meeple-tees/internal/provider"
	"github.com/meeple-tees/internal/queue"
	"github.com/meeple-tees/internal/repository"
	"github.com/meeple-tees/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.TShirt{}, &models.Order{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	repo := repository.NewTShirtRepository(db)
	cfg := config.InventoryConfig{LowStockThreshold: 5, RestockMin: 1, RestockMax: 3}
	inventoryService := service.NewInventoryService(db, repo, cfg)
	inventoryService.SetRandIntn(func(n int) int { return 0 })
	container := &provider.Container{
		TShirtRepo:       repo,
		InventoryService: inventoryService,
	}
	return NewConsumer(container), db
}

func TestHandleInventoryRestock(t *testing.T) {
	consumer, db := setupConsumerTest(t)
	item := &models.TShirt{DesignName: "Game Night", Size: "M", Quantity: 1, Price: models.NewMoneyFromInt(700)}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed tshirt failed: %v", err)
	}

	task, err := queue.NewInventoryRestockTask(queue.InventoryRestockPayload{Reason: "test"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleInventoryRestock(context.Background(), task); err != nil {
		t.Fatalf("handle restock failed: %v", err)
	}

	var reloaded models.TShirt
	if err := db.First(&reloaded, item.ID).Error; err != nil {
		t.Fatalf("reload tshirt failed: %v", err)
	}
	if reloaded.Quantity != 2 {
		t.Fatalf("expected quantity 2 after restock, got %d", reloaded.Quantity)
	}
}

func TestHandleInventoryRestockBadPayload(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task := asynq.NewTask(queue.TaskInventoryRestock, []byte("{not-json"))
	if err := consumer.handleInventoryRestock(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}
