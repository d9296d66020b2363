package service

import (
	"fmt"
	"strings"

	"github.com/joohoonkim/portfolio-backend/internal/db"
	"gorm.io/gorm"
)

// 出版状态取值。
const (
	PublicationStatusPublished       = "published"
	PublicationStatusUnderSubmission = "under-submission"
	PublicationStatusInPress         = "in-press"
	PublicationStatusInReview        = "in-review"
)

// PublicationService 在基础 CRUD 之上提供筛选与统计查询。
type PublicationService struct {
	*ResourceService[db.Publication]
	db *gorm.DB
}

// PublicationFilter 描述列表接口接受的三个独立筛选条件，存在时按 AND 组合。
// Contribution 取 first-author / corresponding / equal-contribution，
// 其余非空取值一律视为 co-author（三个贡献标记全为 false）。
type PublicationFilter struct {
	Year         string
	Contribution string
	Status       string
}

// PublicationStats 汇总出版物统计。
type PublicationStats struct {
	Total           int64 `json:"total"`
	FirstAuthor     int64 `json:"first_author"`
	Corresponding   int64 `json:"corresponding"`
	UnderSubmission int64 `json:"under_submission"`
}

// NewPublicationService 构造 PublicationService。
func NewPublicationService(gdb *gorm.DB) *PublicationService {
	return &PublicationService{
		ResourceService: NewResourceService[db.Publication](gdb, ErrPublicationNotFound, "number desc"),
		db:              gdb,
	}
}

// Filter 返回符合条件的出版物，按展示序号降序。
func (s *PublicationService) Filter(filter PublicationFilter) ([]db.Publication, error) {
	query := s.db.Model(&db.Publication{})

	if year := strings.TrimSpace(filter.Year); year != "" {
		query = query.Where("year = ?", year)
	}

	if contribution := strings.TrimSpace(filter.Contribution); contribution != "" {
		switch contribution {
		case "first-author":
			query = query.Where("is_first_author = ?", true)
		case "corresponding":
			query = query.Where("is_corresponding_author = ?", true)
		case "equal-contribution":
			query = query.Where("is_equal_contribution = ?", true)
		default: // co-author
			query = query.Where("is_first_author = ? AND is_corresponding_author = ? AND is_equal_contribution = ?",
				false, false, false)
		}
	}

	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}

	items := make([]db.Publication, 0)
	if err := query.Order("number desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("filter publications: %w", err)
	}
	return items, nil
}

// Years 返回出现过的年份去重集合，降序排列。
func (s *PublicationService) Years() ([]string, error) {
	years := make([]string, 0)
	if err := s.db.Model(&db.Publication{}).
		Distinct("year").
		Order("year desc").
		Pluck("year", &years).Error; err != nil {
		return nil, fmt.Errorf("list publication years: %w", err)
	}
	return years, nil
}

// Stats 返回总数及各分类计数。
func (s *PublicationService) Stats() (PublicationStats, error) {
	var stats PublicationStats

	model := func() *gorm.DB { return s.db.Model(&db.Publication{}) }
	if err := model().Count(&stats.Total).Error; err != nil {
		return stats, fmt.Errorf("count publications: %w", err)
	}
	if err := model().Where("is_first_author = ?", true).Count(&stats.FirstAuthor).Error; err != nil {
		return stats, fmt.Errorf("count first author publications: %w", err)
	}
	if err := model().Where("is_corresponding_author = ?", true).Count(&stats.Corresponding).Error; err != nil {
		return stats, fmt.Errorf("count corresponding publications: %w", err)
	}
	if err := model().Where("status = ?", PublicationStatusUnderSubmission).Count(&stats.UnderSubmission).Error; err != nil {
		return stats, fmt.Errorf("count under-submission publications: %w", err)
	}

	return stats, nil
}
