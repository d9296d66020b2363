package db

import "time"

// ResearchArea 定义研究方向模型。
// Slug 用于前台路由与站点地图，IconPath 指向上传的图标文件。
type ResearchArea struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"size:100;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content"`
	IconPath    string    `gorm:"size:500" json:"icon_path"`
	OrderIndex  int       `gorm:"default:0" json:"order_index"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
