package models

import "time"

// EmailLog doubles as the outbox: rows are inserted with status pending and
// drained by the dispatcher, which records the provider message id or the
// delivery error.
type EmailLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Recipient string    `gorm:"type:varchar(255);not null" json:"recipient"`
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject"`
	HTMLBody  string    `gorm:"type:text" json:"-"`
	FormType  string    `gorm:"type:varchar(50)" json:"form_type"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"` // pending, sent, failed
	MessageID string    `gorm:"type:varchar(255)" json:"message_id"`
	LastError string    `gorm:"type:text" json:"last_error"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
