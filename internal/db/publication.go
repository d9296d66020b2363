package db

import "time"

// Publication 定义论文条目模型。
// Number 为展示序号，列表按其降序排列。
// 三个贡献标记与 ContributionType 冗余保存，前端按类型筛选。
type Publication struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	Number                int       `gorm:"index" json:"number"`
	Title                 string    `gorm:"not null" json:"title"`
	Authors               string    `gorm:"type:text" json:"authors"`
	Journal               string    `gorm:"size:255" json:"journal"`
	Volume                string    `gorm:"size:50" json:"volume"`
	Pages                 string    `gorm:"size:50" json:"pages"`
	Year                  string    `gorm:"size:10;index" json:"year"`
	Month                 string    `gorm:"size:10" json:"month"`
	DOI                   string    `gorm:"size:255" json:"doi"`
	Arxiv                 string    `gorm:"size:255" json:"arxiv"`
	IsFirstAuthor         bool      `json:"is_first_author"`
	IsCorrespondingAuthor bool      `json:"is_corresponding_author"`
	IsEqualContribution   bool      `json:"is_equal_contribution"`
	ContributionType      string    `gorm:"size:50" json:"contribution_type"`
	Status                string    `gorm:"size:50;default:published" json:"status"` // published, under-submission, in-press, in-review
	ImpactFactor          float64   `json:"impact_factor"`
	FeaturedInfo          string    `gorm:"size:255" json:"featured_info"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
