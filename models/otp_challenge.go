package models

import "time"

type OTPType string

const (
	OTPTypeSensitiveAction OTPType = "sensitive_action"
)

// OTPChallenge is a single server-generated one-time code. A challenge is
// single-use: Used is set on the first successful verification and every
// later attempt with the same code fails.
type OTPChallenge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference string    `gorm:"type:varchar(36);index" json:"reference"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Code      string    `gorm:"type:varchar(6);not null" json:"-"`
	OTPType   OTPType   `gorm:"type:varchar(50);not null" json:"otp_type"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
	CreatedAt time.Time `json:"created_at"`
}
