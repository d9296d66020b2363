package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joohoonkim/portfolio-backend/internal/db"
	"gorm.io/gorm"
)

// ErrCVProfileNameMissing 在提交的档案缺少姓名时返回。
var ErrCVProfileNameMissing = errors.New("cv profile name is required")

// CVService 维护 CV 主档案及其联系方式与段落。
type CVService struct {
	db *gorm.DB
}

// NewCVService 构造 CVService。
func NewCVService(gdb *gorm.DB) *CVService {
	return &CVService{db: gdb}
}

// ContactInfoInput 描述新档案下的一条联系方式。
type ContactInfoInput struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	DataType   string `json:"data_type"`
	OrderIndex int    `json:"order_index"`
}

// CVSectionInput 描述新档案下的一个 CV 段落。
type CVSectionInput struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
}

// CVProfileInput 描述创建档案时提交的完整数据。
type CVProfileInput struct {
	Name         string             `json:"name"`
	Title        string             `json:"title"`
	Bio          string             `json:"bio"`
	ProfileImage string             `json:"profile_image"`
	ContactInfo  []ContactInfoInput `json:"contact_info"`
	CVSections   []CVSectionInput   `json:"cv_sections"`
}

// CVProfileDetail 聚合档案本体及其有序的子记录。
type CVProfileDetail struct {
	db.CVProfile
	ContactInfo []db.ContactInfo `json:"contact_info"`
	CVSections  []db.CVSection   `json:"cv_sections"`
}

// ActiveProfile 返回当前激活的档案聚合，子记录按 order_index 升序。
func (s *CVService) ActiveProfile() (*CVProfileDetail, error) {
	var profile db.CVProfile
	if err := s.db.Where("is_active = ?", true).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCVProfileNotFound
		}
		return nil, fmt.Errorf("get active cv profile: %w", err)
	}

	detail := CVProfileDetail{CVProfile: profile}
	if err := s.db.Where("profile_id = ?", profile.ID).
		Order("order_index asc").
		Find(&detail.ContactInfo).Error; err != nil {
		return nil, fmt.Errorf("list contact info: %w", err)
	}
	if err := s.db.Where("profile_id = ?", profile.ID).
		Order("order_index asc").
		Find(&detail.CVSections).Error; err != nil {
		return nil, fmt.Errorf("list cv sections: %w", err)
	}

	return &detail, nil
}

// ReplaceProfile 在单个事务里停用全部旧档案并创建新的激活档案，
// 保证任意时刻至多一条 is_active。
func (s *CVService) ReplaceProfile(input CVProfileInput) (*CVProfileDetail, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrCVProfileNameMissing
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db.CVProfile{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		profile := db.CVProfile{
			Name:         strings.TrimSpace(input.Name),
			Title:        strings.TrimSpace(input.Title),
			Bio:          input.Bio,
			ProfileImage: strings.TrimSpace(input.ProfileImage),
			IsActive:     true,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		for _, contact := range input.ContactInfo {
			record := db.ContactInfo{
				ProfileID:  profile.ID,
				Label:      contact.Label,
				Value:      contact.Value,
				DataType:   contact.DataType,
				OrderIndex: contact.OrderIndex,
			}
			if record.DataType == "" {
				record.DataType = "text"
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		for _, section := range input.CVSections {
			record := db.CVSection{
				ProfileID:  profile.ID,
				Title:      section.Title,
				Content:    section.Content,
				OrderIndex: section.OrderIndex,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("replace cv profile: %w", err)
	}

	return s.ActiveProfile()
}
