package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/service"
)

// patchPayload 由各实体的稀疏补丁类型实现，
// updates 只包含请求中显式出现的字段。
type patchPayload interface {
	updates() map[string]interface{}
}

// resourceRoutes 把一个内容类型的标准端点绑定到对应的 ResourceService，
// 按实体实例化而不是逐实体手写同样的路由代码。
type resourceRoutes[T any, P patchPayload] struct {
	api      *API
	svc      *service.ResourceService[T]
	noun     string // 错误消息里的实体名，如 "Award"
	notFound error
	listArgs func(*gin.Context) map[string]interface{} // 可选的列表过滤
	prepare  func(*T)                                  // 创建前钩子，至少负责清零 ID
	uploads  map[string]uploadEndpoint                 // 路由后缀 → 上传配置
}

// uploadEndpoint 描述一个图片上传端点写入的子目录与响应字段名。
type uploadEndpoint struct {
	subdir string
	key    string
}

// register 挂载标准路由，写操作统一经过 admin 中间件。
func (r *resourceRoutes[T, P]) register(rg *gin.RouterGroup, admin gin.HandlerFunc) {
	rg.GET("", r.list)
	rg.GET("/:id", r.get)
	rg.POST("", admin, r.create)
	rg.PUT("/:id", admin, r.update)
	rg.DELETE("/:id", admin, r.delete)
	for suffix, endpoint := range r.uploads {
		endpoint := endpoint
		rg.POST("/"+suffix, admin, func(c *gin.Context) {
			path, ok := r.api.saveUploadedImage(c, endpoint.subdir)
			if !ok {
				return
			}
			c.JSON(http.StatusOK, gin.H{endpoint.key: path})
		})
	}
}

func (r *resourceRoutes[T, P]) list(c *gin.Context) {
	var filters map[string]interface{}
	if r.listArgs != nil {
		filters = r.listArgs(c)
	}

	items, err := r.svc.List(filters)
	if err != nil {
		r.api.log.Error("failed to list records", "entity", r.noun, "error", err)
		respondError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to list %s records", strings.ToLower(r.noun)))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (r *resourceRoutes[T, P]) get(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s id", strings.ToLower(r.noun)))
		return
	}

	item, err := r.svc.Get(id)
	if err != nil {
		r.respondServiceError(c, id, "get", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (r *resourceRoutes[T, P]) create(c *gin.Context) {
	var item T
	if !bindJSON(c, &item, fmt.Sprintf("Invalid %s payload", strings.ToLower(r.noun))) {
		return
	}
	if r.prepare != nil {
		r.prepare(&item)
	}

	if err := r.svc.Create(&item); err != nil {
		r.api.log.Error("failed to create record", "entity", r.noun, "error", err)
		respondError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to create %s", strings.ToLower(r.noun)))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (r *resourceRoutes[T, P]) update(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s id", strings.ToLower(r.noun)))
		return
	}

	var patch P
	if !bindJSON(c, &patch, fmt.Sprintf("Invalid %s payload", strings.ToLower(r.noun))) {
		return
	}

	item, err := r.svc.Update(id, patch.updates())
	if err != nil {
		r.respondServiceError(c, id, "update", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (r *resourceRoutes[T, P]) delete(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s id", strings.ToLower(r.noun)))
		return
	}

	if err := r.svc.Delete(id); err != nil {
		r.respondServiceError(c, id, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s deleted successfully", r.noun)})
}

func (r *resourceRoutes[T, P]) respondServiceError(c *gin.Context, id uint, op string, err error) {
	if errors.Is(err, r.notFound) {
		respondError(c, http.StatusNotFound, fmt.Sprintf("%s not found", r.noun))
		return
	}
	r.api.log.Error("record operation failed", "entity", r.noun, "op", op, "id", id, "error", err)
	respondError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to %s %s", op, strings.ToLower(r.noun)))
}
