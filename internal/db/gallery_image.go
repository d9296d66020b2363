package db

import "time"

// GalleryImage 定义图库图片模型。
// 宽高在上传时探测并保存，前端据此计算布局。
type GalleryImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:100;index" json:"category"`
	ImagePath   string    `gorm:"size:500;not null" json:"image_path"`
	ImageWidth  int       `json:"image_width"`
	ImageHeight int       `json:"image_height"`
	OrderIndex  int       `gorm:"default:0" json:"order_index"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
