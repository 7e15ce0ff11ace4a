package models

import "time"

type InnovationLabApplication struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Reference    string    `gorm:"type:varchar(36);index" json:"reference"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Organization string    `gorm:"type:varchar(255)" json:"organization"`
	ProjectTitle string    `gorm:"type:varchar(255);not null" json:"project_title"`
	Summary      string    `gorm:"type:text;not null" json:"summary"`
	Stage        string    `gorm:"type:varchar(50)" json:"stage"` // idea, prototype, launched
	CreatedAt    time.Time `json:"created_at"`
}
