package models

import "time"

type JobPosting struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Department     string    `gorm:"type:varchar(100)" json:"department"`
	Location       string    `gorm:"type:varchar(255)" json:"location"`
	EmploymentType string    `gorm:"type:varchar(50)" json:"employment_type"` // full_time, part_time, contract
	Description    string    `gorm:"type:text" json:"description"`
	Open           bool      `gorm:"not null;default:true" json:"open"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
