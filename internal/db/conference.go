package db

import "time"

// Conference 定义学术会议报告模型，列表按日期降序。
// Type 区分 oral / poster / invited 等报告形式。
type Conference struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Authors        string    `gorm:"type:text" json:"authors"`
	ConferenceName string    `gorm:"size:255" json:"conference_name"`
	Type           string    `gorm:"size:50" json:"type"`
	Location       string    `gorm:"size:100" json:"location"`
	Date           string    `gorm:"size:20;index" json:"date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
