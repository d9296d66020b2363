package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/db"
)

// HealthCheck 提供部署平台与监控系统使用的健康检查端点。
func (a *API) HealthCheck(c *gin.Context) {
	if err := db.Ping(c.Request.Context(), a.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "portfolio backend is running",
	})
}
