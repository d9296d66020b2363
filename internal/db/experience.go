package db

import "time"

// Experience 定义研究与工作经历模型。
type Experience struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Position     string    `gorm:"size:255;not null" json:"position"`
	Organization string    `gorm:"size:255" json:"organization"`
	Location     string    `gorm:"size:100" json:"location"`
	StartYear    string    `gorm:"size:10" json:"start_year"`
	EndYear      string    `gorm:"size:10" json:"end_year"`
	HostAdvisor  string    `gorm:"size:255" json:"host_advisor"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
