package db

import "time"

// MarkdownCV 定义 Markdown 版 CV 文档模型。
// 同一时间至多一篇 IsActive；内容被修改时 Version 递增。
type MarkdownCV struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	Description string    `gorm:"size:500" json:"description"`
	Version     int       `gorm:"default:1" json:"version"`
	IsActive    bool      `gorm:"default:false;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
