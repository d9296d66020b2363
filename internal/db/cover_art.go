package db

import "time"

// CoverArt 定义期刊封面作品模型。
type CoverArt struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Journal     string    `gorm:"size:255" json:"journal"`
	Description string    `gorm:"type:text" json:"description"`
	AltText     string    `gorm:"size:255" json:"alt_text"`
	Link        string    `gorm:"size:500" json:"link"`
	ImagePath   string    `gorm:"size:500" json:"image_path"`
	OrderIndex  int       `gorm:"default:0" json:"order_index"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
