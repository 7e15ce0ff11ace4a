package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTPCodeLength is fixed; clients reject anything that is not exactly six
// digits before calling verify.
const OTPCodeLength = 6

// OTPTTL is the server-defined code expiry.
const OTPTTL = 10 * time.Minute

type OTPService struct {
	DB    *gorm.DB
	Email *EmailService
}

func NewOTPService(db *gorm.DB, email *EmailService) *OTPService {
	return &OTPService{DB: db, Email: email}
}

// GenerateCode returns a zero-padded 6-digit code from crypto/rand.
func GenerateCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SendCode creates a challenge for the user and queues the code email to
// the given address. Resending just calls SendCode again with the same
// parameters; earlier challenges stay valid until they expire or get used.
func (s *OTPService) SendCode(userID uint, email string, otpType models.OTPType) (*models.OTPChallenge, error) {
	code, err := GenerateCode()
	if err != nil {
		return nil, err
	}

	challenge := models.OTPChallenge{
		Reference: uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Code:      code,
		OTPType:   otpType,
		ExpiresAt: time.Now().Add(OTPTTL),
	}
	if err := s.DB.Create(&challenge).Error; err != nil {
		return nil, err
	}

	subject := "Your verification code"
	html := OTPEmailHTML(code, OTPTTL)
	if err := Enqueue(s.DB, email, subject, html, "otp"); err != nil {
		// The challenge row exists but the code will never arrive; report
		// the send as failed so the operator can request a resend.
		return nil, err
	}

	utils.InfoLogger.Printf("OTP challenge %s created for user %d", challenge.Reference, userID)
	return &challenge, nil
}

// VerifyCode checks the code against the newest matching challenge. A wrong,
// expired or already-used code returns false with no error; the caller
// treats that as a soft failure. On success the challenge is marked used so
// the same code cannot pass twice.
func (s *OTPService) VerifyCode(userID uint, code string, otpType models.OTPType) (bool, error) {
	if len(code) != OTPCodeLength {
		return false, nil
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false, nil
		}
	}

	var challenge models.OTPChallenge
	err := s.DB.Where("user_id = ? AND otp_type = ? AND code = ? AND used = ?",
		userID, otpType, code, false).
		Order("created_at DESC").
		First(&challenge).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}

	if time.Now().After(challenge.ExpiresAt) {
		return false, nil
	}

	if err := s.DB.Model(&models.OTPChallenge{}).
		Where("id = ?", challenge.ID).
		Update("used", true).Error; err != nil {
		return false, err
	}

	return true, nil
}
