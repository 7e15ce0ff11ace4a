package models

import "time"

// Inquiry covers the partner / investor / general business inquiry forms,
// distinguished by InquiryType.
type Inquiry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Reference    string    `gorm:"type:varchar(36);index" json:"reference"`
	InquiryType  string    `gorm:"type:varchar(50);not null" json:"inquiry_type"` // general, partner, investor
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Organization string    `gorm:"type:varchar(255)" json:"organization"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
