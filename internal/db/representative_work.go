package db

import "time"

// RepresentativeWork 定义首页代表作模型，按 OrderIndex 升序展示。
// IsInRevision 标记尚未正式发表的条目。
type RepresentativeWork struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Journal      string    `gorm:"size:255" json:"journal"`
	Volume       string    `gorm:"size:50" json:"volume"`
	Pages        string    `gorm:"size:50" json:"pages"`
	Year         string    `gorm:"size:10" json:"year"`
	ImagePath    string    `gorm:"size:500" json:"image_path"`
	OrderIndex   int       `gorm:"default:0" json:"order_index"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	IsInRevision bool      `gorm:"default:false" json:"is_in_revision"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
