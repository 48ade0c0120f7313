package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/meeple-tees/internal/app"
	"github.com/meeple-tees/internal/config"
	"github.com/meeple-tees/internal/logger"
	"github.com/meeple-tees/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 空库时写入初始库存
	if err := models.SeedIfEmpty(); err != nil {
		stdLog.Printf("警告: 初始库存写入失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "███╗   ███╗███████╗███████╗██████╗ ██╗     ███████╗    ████████╗███████╗███████╗███████╗" + ansiReset)
	fmt.Println(ansiCyan + "████╗ ████║██╔════╝██╔════╝██╔══██╗██║     ██╔════╝    ╚══██╔══╝██╔════╝██╔════╝██╔════╝" + ansiReset)
	fmt.Println(ansiCyan + "██╔████╔██║█████╗  █████╗  ██████╔╝██║     █████╗         ██║   █████╗  █████╗  ███████╗" + ansiReset)
	fmt.Println(ansiCyan + "██║╚██╔╝██║██╔══╝  ██╔══╝  ██╔═══╝ ██║     ██╔══╝         ██║   ██╔══╝  ██╔══╝  ╚════██║" + ansiReset)
	fmt.Println(ansiCyan + "██║ ╚═╝ ██║███████╗███████╗██║     ███████╗███████╗       ██║   ███████╗███████╗███████║" + ansiReset)
	fmt.Println(ansiCyan + "╚═╝     ╚═╝╚══════╝╚══════╝╚═╝     ╚══════╝╚══════╝       ╚═╝   ╚══════╝╚══════╝╚══════╝" + ansiReset)
	fmt.Println(ansiBold + "Meeple Tees 库存与订单服务" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
