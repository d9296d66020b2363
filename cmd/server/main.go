package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/config"
	"github.com/joohoonkim/portfolio-backend/internal/db"
	"github.com/joohoonkim/portfolio-backend/internal/handler"
	"github.com/joohoonkim/portfolio-backend/internal/logger"
	"github.com/joohoonkim/portfolio-backend/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	appLogger, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatal("failed to open database", "error", err)
	}

	// 连通性检查只记录结果，不中断启动
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx, gdb); err != nil {
		appLogger.Warn("database unreachable", "error", err)
	} else {
		appLogger.Info("database connection verified")
		if err := db.Migrate(gdb); err != nil {
			appLogger.Fatal("failed to migrate database", "error", err)
		}
	}

	api := handler.NewAPI(gdb, appLogger, cfg)
	r := router.Setup(cfg, appLogger, api)

	appLogger.Info("starting server", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		appLogger.Fatal("failed to run server", "error", err)
	}
}
