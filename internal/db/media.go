package db

import "time"

// Media 定义媒体报道条目模型，列表按日期降序。
type Media struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Outlet    string    `gorm:"size:255" json:"outlet"`
	Date      string    `gorm:"size:20;index" json:"date"`
	URL       string    `gorm:"size:500" json:"url"`
	ImageURL  string    `gorm:"size:500" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
