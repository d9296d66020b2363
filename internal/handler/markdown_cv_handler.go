package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/service"
)

type markdownCVCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

type markdownCVUpdateRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Description *string `json:"description"`
}

// registerMarkdownCVRoutes 挂载 Markdown CV 文档路由。
func (a *API) registerMarkdownCVRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc) {
	docs := rg.Group("/documents")
	{
		docs.GET("", a.GetCVDocuments)
		docs.GET("/active", a.GetActiveCVDocument)
		docs.GET("/active/html", a.GetActiveCVDocumentHTML)
		docs.GET("/:id", a.GetCVDocument)
		docs.GET("/:id/export", a.ExportCVDocument)
		docs.POST("", admin, a.CreateCVDocument)
		docs.PUT("/:id", admin, a.UpdateCVDocument)
		docs.POST("/:id/set-active", admin, a.SetActiveCVDocument)
		docs.DELETE("/:id", admin, a.DeleteCVDocument)
	}
}

// GetCVDocuments 返回全部文档，最近更新的在前。
func (a *API) GetCVDocuments(c *gin.Context) {
	docs, err := a.markdown.List()
	if err != nil {
		a.log.Error("failed to list cv documents", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetActiveCVDocument 返回激活文档，不存在时返回 null。
func (a *API) GetActiveCVDocument(c *gin.Context) {
	doc, err := a.markdown.Active()
	if err != nil {
		if errors.Is(err, service.ErrMarkdownCVNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		a.log.Error("failed to get active cv document", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to get active document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetActiveCVDocumentHTML 将激活文档渲染为净化后的 HTML。
func (a *API) GetActiveCVDocumentHTML(c *gin.Context) {
	doc, html, err := a.markdown.RenderActiveHTML()
	if err != nil {
		if errors.Is(err, service.ErrMarkdownCVNotFound) {
			respondError(c, http.StatusNotFound, "No active markdown CV found")
			return
		}
		a.log.Error("failed to render active cv document", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to render document")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":   doc.Title,
		"version": doc.Version,
		"html":    html,
	})
}

// GetCVDocument 获取单个文档。
func (a *API) GetCVDocument(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	doc, err := a.markdown.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrMarkdownCVNotFound) {
			respondError(c, http.StatusNotFound, "Document not found")
			return
		}
		a.log.Error("failed to get cv document", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to get document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ExportCVDocument 以 Markdown 附件形式下载文档内容。
func (a *API) ExportCVDocument(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	doc, err := a.markdown.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrMarkdownCVNotFound) {
			respondError(c, http.StatusNotFound, "Document not found")
			return
		}
		a.log.Error("failed to export cv document", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to export document")
		return
	}

	filename := strings.ReplaceAll(doc.Title, " ", "_") + ".md"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc.Content))
}

// CreateCVDocument 新建文档，初始为未激活。
func (a *API) CreateCVDocument(c *gin.Context) {
	var req markdownCVCreateRequest
	if !bindJSON(c, &req, "Document title is required") {
		return
	}

	doc, err := a.markdown.Create(service.MarkdownCVInput{
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
	})
	if err != nil {
		a.log.Error("failed to create cv document", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to create document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateCVDocument 对文档应用稀疏更新，内容变更会递增版本号。
func (a *API) UpdateCVDocument(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	var req markdownCVUpdateRequest
	if !bindJSON(c, &req, "Invalid document payload") {
		return
	}

	doc, err := a.markdown.Update(id, service.MarkdownCVPatch{
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrMarkdownCVNotFound) {
			respondError(c, http.StatusNotFound, "Document not found")
			return
		}
		a.log.Error("failed to update cv document", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to update document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// SetActiveCVDocument 激活指定文档并停用其余文档。
func (a *API) SetActiveCVDocument(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	doc, err := a.markdown.SetActive(id)
	if err != nil {
		if errors.Is(err, service.ErrMarkdownCVNotFound) {
			respondError(c, http.StatusNotFound, "Document not found")
			return
		}
		a.log.Error("failed to activate cv document", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to set active document")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Document '%s' is now active", doc.Title)})
}

// DeleteCVDocument 删除文档。
func (a *API) DeleteCVDocument(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid document id")
		return
	}

	if err := a.markdown.Delete(id); err != nil {
		if errors.Is(err, service.ErrMarkdownCVNotFound) {
			respondError(c, http.StatusNotFound, "Document not found")
			return
		}
		a.log.Error("failed to delete cv document", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to delete document")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
