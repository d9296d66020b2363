package service

import (
	"errors"
	"fmt"

	"github.com/joohoonkim/portfolio-backend/internal/db"
	"gorm.io/gorm"
)

// ResearchAreaService 在基础 CRUD 之上补充按 slug 查询。
type ResearchAreaService struct {
	*ResourceService[db.ResearchArea]
	db *gorm.DB
}

// NewResearchAreaService 构造 ResearchAreaService。
func NewResearchAreaService(gdb *gorm.DB) *ResearchAreaService {
	return &ResearchAreaService{
		ResourceService: NewResourceService[db.ResearchArea](gdb, ErrResearchAreaNotFound, "order_index asc"),
		db:              gdb,
	}
}

// GetBySlug 根据前台路由使用的 slug 获取研究方向。
func (s *ResearchAreaService) GetBySlug(slug string) (*db.ResearchArea, error) {
	var area db.ResearchArea
	if err := s.db.Where("slug = ?", slug).First(&area).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResearchAreaNotFound
		}
		return nil, fmt.Errorf("get research area by slug: %w", err)
	}
	return &area, nil
}

// ActiveAreas 返回启用的研究方向，站点地图与公开列表共用。
func (s *ResearchAreaService) ActiveAreas() ([]db.ResearchArea, error) {
	return s.List(map[string]interface{}{"is_active": true})
}
