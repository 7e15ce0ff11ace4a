package models

import "time"

type VisitorLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Path      string    `gorm:"type:varchar(512);not null" json:"path"`
	Method    string    `gorm:"type:varchar(10);not null" json:"method"`
	IP        string    `gorm:"type:varchar(64)" json:"ip"`
	UserAgent string    `gorm:"type:varchar(512)" json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
