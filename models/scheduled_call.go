package models

import "time"

type ScheduledCall struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Reference   string    `gorm:"type:varchar(36);index" json:"reference"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Company     string    `gorm:"type:varchar(255)" json:"company"`
	Topic       string    `gorm:"type:varchar(255)" json:"topic"`
	RequestedAt time.Time `gorm:"not null" json:"requested_at"`
	Status      string    `gorm:"type:varchar(20);not null;default:'requested'" json:"status"` // requested, confirmed, done, cancelled
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
