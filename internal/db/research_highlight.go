package db

import "time"

// ResearchHighlight 定义出版物页顶部的研究亮点图模型。
type ResearchHighlight struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"type:text" json:"description"`
	Link        string    `gorm:"size:500" json:"link"`
	AltText     string    `gorm:"size:255" json:"alt_text"`
	ImagePath   string    `gorm:"size:500" json:"image_path"`
	OrderIndex  int       `gorm:"default:0" json:"order_index"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
