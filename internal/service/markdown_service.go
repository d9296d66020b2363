package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joohoonkim/portfolio-backend/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// MarkdownCVService 维护版本化的 Markdown CV 文档。
type MarkdownCVService struct {
	db *gorm.DB
}

// NewMarkdownCVService 构造 MarkdownCVService。
func NewMarkdownCVService(gdb *gorm.DB) *MarkdownCVService {
	return &MarkdownCVService{db: gdb}
}

// MarkdownCVInput 描述创建文档时提交的字段。
type MarkdownCVInput struct {
	Title       string
	Content     string
	Description string
}

// MarkdownCVPatch 描述稀疏更新，nil 表示该字段未提交。
// Content 出现在补丁里即视为一次编辑并递增版本号。
type MarkdownCVPatch struct {
	Title       *string
	Content     *string
	Description *string
}

// List 返回全部文档，最近更新的在前。
func (s *MarkdownCVService) List() ([]db.MarkdownCV, error) {
	docs := make([]db.MarkdownCV, 0)
	if err := s.db.Order("updated_at desc").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list markdown cv documents: %w", err)
	}
	return docs, nil
}

// Active 返回当前激活的文档，没有时返回 ErrMarkdownCVNotFound。
func (s *MarkdownCVService) Active() (*db.MarkdownCV, error) {
	var doc db.MarkdownCV
	if err := s.db.Where("is_active = ?", true).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMarkdownCVNotFound
		}
		return nil, fmt.Errorf("get active markdown cv: %w", err)
	}
	return &doc, nil
}

// Get 根据主键获取文档。
func (s *MarkdownCVService) Get(id uint) (*db.MarkdownCV, error) {
	var doc db.MarkdownCV
	if err := s.db.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMarkdownCVNotFound
		}
		return nil, fmt.Errorf("get markdown cv: %w", err)
	}
	return &doc, nil
}

// Create 新建文档，初始为未激活的版本 1。
func (s *MarkdownCVService) Create(input MarkdownCVInput) (*db.MarkdownCV, error) {
	doc := db.MarkdownCV{
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		Description: input.Description,
		Version:     1,
		IsActive:    false,
	}
	if err := s.db.Create(&doc).Error; err != nil {
		return nil, fmt.Errorf("create markdown cv: %w", err)
	}
	return &doc, nil
}

// Update 应用稀疏补丁；补丁携带 content 时版本号加一。
func (s *MarkdownCVService) Update(id uint, patch MarkdownCVPatch) (*db.MarkdownCV, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
		updates["version"] = gorm.Expr("version + 1")
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(&db.MarkdownCV{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update markdown cv: %w", err)
		}
	}

	return s.Get(id)
}

// SetActive 在单个事务里停用全部文档并激活指定文档。
func (s *MarkdownCVService) SetActive(id uint) (*db.MarkdownCV, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db.MarkdownCV{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&db.MarkdownCV{}).
			Where("id = ?", id).
			Update("is_active", true).Error
	})
	if err != nil {
		return nil, fmt.Errorf("set active markdown cv: %w", err)
	}

	return s.Get(id)
}

// Delete 删除文档。
func (s *MarkdownCVService) Delete(id uint) error {
	doc, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(doc).Error; err != nil {
		return fmt.Errorf("delete markdown cv: %w", err)
	}
	return nil
}

// RenderActiveHTML 将激活文档渲染为经过净化的 HTML。
func (s *MarkdownCVService) RenderActiveHTML() (*db.MarkdownCV, string, error) {
	doc, err := s.Active()
	if err != nil {
		return nil, "", err
	}

	var buf strings.Builder
	if err := markdownEngine.Convert([]byte(doc.Content), &buf); err != nil {
		return nil, "", fmt.Errorf("render markdown cv: %w", err)
	}
	return doc, sanitizer.Sanitize(buf.String()), nil
}
