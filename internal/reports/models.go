package reports

import "time"

type Report struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Date      string    `gorm:"not null" json:"date"`
	Day       int       `gorm:"not null" json:"day"`
	Content   string    `gorm:"default:''" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Report) TableName() string { return "reports.daily_reports" }
