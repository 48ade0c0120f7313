package main

import (
	"flag"

	"github.com/meeple-tees/internal/config"
	"github.com/meeple-tees/internal/logger"
	"github.com/meeple-tees/internal/models"
)

func main() {
	var reset bool
	flag.BoolVar(&reset, "reset", false, "清空库存表后重建初始目录")
	flag.Parse()

	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if reset {
		if err := models.DB.Where("1 = 1").Delete(&models.TShirt{}).Error; err != nil {
			stdLog.Fatalf("Failed to clear tshirts: %v", err)
		}
	}

	if err := models.SeedIfEmpty(); err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}

	var count int64
	if err := models.DB.Model(&models.TShirt{}).Count(&count).Error; err != nil {
		stdLog.Fatalf("Failed to count tshirts: %v", err)
	}
	stdLog.Printf("Seed done, tshirts in catalog: %d", count)
}
