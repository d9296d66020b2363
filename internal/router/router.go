package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/config"
	"github.com/joohoonkim/portfolio-backend/internal/handler"
	"github.com/joohoonkim/portfolio-backend/internal/logger"
)

// Setup 配置 Gin 引擎：会话、跨域、访问日志、静态目录与全部 API 路由。
func Setup(cfg config.AppConfig, log *logger.Logger, api *handler.API) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))

	// 管理员标记保存在签名 Cookie 会话里，服务端不保存会话状态
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   12 * 60 * 60,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("portfolio_session", store))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", requestIDHeader},
		AllowCredentials: true,
	}))

	// 上传文件通过静态目录对外暴露
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	api.RegisterRoutes(r)

	return r
}
