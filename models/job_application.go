package models

import "time"

// JobApplication records the application as submitted. JobPostingID is kept
// as given even when the posting has been closed or removed since.
type JobApplication struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Reference    string    `gorm:"type:varchar(36);index" json:"reference"`
	JobPostingID uint      `gorm:"index" json:"job_posting_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`
	ResumeURL    string    `gorm:"type:varchar(512)" json:"resume_url"`
	CoverLetter  string    `gorm:"type:text" json:"cover_letter"`
	Status       string    `gorm:"type:varchar(50);not null;default:'received'" json:"status"` // received, screening, interview, rejected, hired
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
