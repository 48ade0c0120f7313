package main

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/meeple-tees/internal/config"
	"github.com/meeple-tees/internal/logger"

	"github.com/gin-gonic/gin"
)

// 演示前端：单页 HTML + 把 /api/* 反向代理到后端服务。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	backend, err := url.Parse(cfg.Web.BackendURL)
	if err != nil {
		stdLog.Fatalf("无法解析后端地址 %q: %v", cfg.Web.BackendURL, err)
	}
	proxy := httputil.NewSingleHostReverseProxy(backend)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warnw("web_proxy_failed", "path", r.URL.Path, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"backend unavailable"}`))
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
	})
	if cfg.Web.StaticDir != "" {
		r.Static("/static", cfg.Web.StaticDir)
	}
	r.Any("/api/*path", gin.WrapH(proxy))

	addr := cfg.Web.Host + ":" + cfg.Web.Port
	logger.Infow("web_start", "addr", addr, "backend", cfg.Web.BackendURL)
	if err := r.Run(addr); err != nil {
		stdLog.Fatalf("前端服务运行失败: %v", err)
	}
}
