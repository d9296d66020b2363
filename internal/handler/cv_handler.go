package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/service"
)

// registerCVRoutes 挂载 CV 档案路由。
func (a *API) registerCVRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc) {
	rg.GET("/profile", a.GetActiveCVProfile)
	rg.POST("/profile", admin, a.SaveCVProfile)
	rg.POST("/upload-image", admin, func(c *gin.Context) {
		path, ok := a.saveUploadedImage(c, "profiles")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"image_url": path})
	})
}

// GetActiveCVProfile 返回当前激活的档案及其联系方式与段落。
func (a *API) GetActiveCVProfile(c *gin.Context) {
	detail, err := a.cv.ActiveProfile()
	if err != nil {
		if errors.Is(err, service.ErrCVProfileNotFound) {
			respondError(c, http.StatusNotFound, "No active CV profile found")
			return
		}
		a.log.Error("failed to get active cv profile", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to get CV profile")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// SaveCVProfile 以提交内容替换激活档案：
// 旧档案全部停用，新档案连同子记录一并创建。
func (a *API) SaveCVProfile(c *gin.Context) {
	var input service.CVProfileInput
	if !bindJSON(c, &input, "Invalid CV profile payload") {
		return
	}

	detail, err := a.cv.ReplaceProfile(input)
	if err != nil {
		if errors.Is(err, service.ErrCVProfileNameMissing) {
			respondError(c, http.StatusBadRequest, "Profile name is required")
			return
		}
		a.log.Error("failed to save cv profile", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to save CV profile")
		return
	}
	c.JSON(http.StatusOK, detail)
}
