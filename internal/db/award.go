package db

import "time"

// Award 定义获奖条目模型，列表按年份降序。
type Award struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Organization string    `gorm:"size:255" json:"organization"`
	Location     string    `gorm:"size:100" json:"location"`
	Year         string    `gorm:"size:10;index" json:"year"`
	Rank         string    `gorm:"size:50" json:"rank"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
