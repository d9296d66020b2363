package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/db"
	"github.com/joohoonkim/portfolio-backend/internal/service"
)

// registerResearchAreaRoutes 挂载研究方向路由。
// 单条查询按 slug 而不是主键，供前台 /research/<slug> 页面使用。
func (a *API) registerResearchAreaRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc) {
	rg.GET("", a.GetResearchAreas)
	rg.GET("/:slug", a.GetResearchAreaBySlug)
	rg.POST("", admin, a.CreateResearchArea)
	rg.PUT("/:id", admin, a.UpdateResearchArea)
	rg.DELETE("/:id", admin, a.DeleteResearchArea)
	rg.POST("/upload-icon", admin, func(c *gin.Context) {
		path, ok := a.saveUploadedImage(c, "icons")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"icon_path": path})
	})
	rg.POST("/upload-content-image", admin, func(c *gin.Context) {
		path, ok := a.saveUploadedImage(c, "research-areas")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"image_path": path})
	})
}

// GetResearchAreas 返回研究方向列表，默认仅含启用项。
func (a *API) GetResearchAreas(c *gin.Context) {
	var filters map[string]interface{}
	if queryFlag(c, "active_only", true) {
		filters = map[string]interface{}{"is_active": true}
	}

	items, err := a.areas.List(filters)
	if err != nil {
		a.log.Error("failed to list research areas", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to list research areas")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetResearchAreaBySlug 按 slug 获取单个研究方向。
func (a *API) GetResearchAreaBySlug(c *gin.Context) {
	area, err := a.areas.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrResearchAreaNotFound) {
			respondError(c, http.StatusNotFound, "Research area not found")
			return
		}
		a.log.Error("failed to get research area", "slug", c.Param("slug"), "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to get research area")
		return
	}
	c.JSON(http.StatusOK, area)
}

// CreateResearchArea 新建研究方向。
func (a *API) CreateResearchArea(c *gin.Context) {
	var item db.ResearchArea
	if !bindJSON(c, &item, "Invalid research area payload") {
		return
	}
	item.ID = 0

	if err := a.areas.Create(&item); err != nil {
		a.log.Error("failed to create research area", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to create research area")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateResearchArea 对研究方向应用稀疏更新。
func (a *API) UpdateResearchArea(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid research area id")
		return
	}

	var patch researchAreaPatch
	if !bindJSON(c, &patch, "Invalid research area payload") {
		return
	}

	item, err := a.areas.Update(id, patch.updates())
	if err != nil {
		if errors.Is(err, service.ErrResearchAreaNotFound) {
			respondError(c, http.StatusNotFound, "Research area not found")
			return
		}
		a.log.Error("failed to update research area", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to update research area")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteResearchArea 删除研究方向。
func (a *API) DeleteResearchArea(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid research area id")
		return
	}

	if err := a.areas.Delete(id); err != nil {
		if errors.Is(err, service.ErrResearchAreaNotFound) {
			respondError(c, http.StatusNotFound, "Research area not found")
			return
		}
		a.log.Error("failed to delete research area", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to delete research area")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Research area deleted successfully"})
}
