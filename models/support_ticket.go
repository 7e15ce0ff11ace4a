package models

import "time"

type SupportTicket struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference string    `gorm:"type:varchar(36);index" json:"reference"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Company   string    `gorm:"type:varchar(255)" json:"company"`
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Priority  string    `gorm:"type:varchar(20);not null;default:'normal'" json:"priority"` // low, normal, high
	Status    string    `gorm:"type:varchar(20);not null;default:'open'" json:"status"`     // open, in_progress, closed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
