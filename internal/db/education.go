package db

import "time"

// Education 定义教育经历模型。
type Education struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Degree      string    `gorm:"size:255;not null" json:"degree"`
	Institution string    `gorm:"size:255" json:"institution"`
	Location    string    `gorm:"size:100" json:"location"`
	StartYear   string    `gorm:"size:10" json:"start_year"`
	EndYear     string    `gorm:"size:10" json:"end_year"`
	Advisor     string    `gorm:"size:255" json:"advisor"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
