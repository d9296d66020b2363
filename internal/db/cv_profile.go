package db

import "time"

// CVProfile 定义 CV 主档案模型，同一时间至多一条 IsActive。
type CVProfile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Title        string    `gorm:"size:255" json:"title"`
	Bio          string    `gorm:"type:text" json:"bio"`
	ProfileImage string    `gorm:"size:500" json:"profile_image"`
	IsActive     bool      `gorm:"default:false;index" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ContactInfo 定义档案下的联系方式条目，按 OrderIndex 升序展示。
type ContactInfo struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProfileID  uint      `gorm:"index;not null" json:"profile_id"`
	Label      string    `gorm:"size:100;not null" json:"label"`
	Value      string    `gorm:"size:255;not null" json:"value"`
	DataType   string    `gorm:"size:20;default:text" json:"data_type"` // text, email, link
	OrderIndex int       `gorm:"default:0" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CVSection 定义档案下的 CV 段落，按 OrderIndex 升序展示。
type CVSection struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProfileID  uint      `gorm:"index;not null" json:"profile_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	OrderIndex int       `gorm:"default:0" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
