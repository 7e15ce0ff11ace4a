package services

import (
	"testing"
	"time"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOTPDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.OTPChallenge{}, &models.EmailLog{}))
	return db
}

func TestVerifyCodeRejectsExpired(t *testing.T) {
	utils.InitLogger()
	db := setupOTPDB(t)
	svc := NewOTPService(db, GetEmailService())

	challenge, err := svc.SendCode(1, "op@example.com", models.OTPTypeSensitiveAction)
	assert.NoError(t, err)

	// Backdate the expiry; the code is now stale.
	assert.NoError(t, db.Model(&models.OTPChallenge{}).
		Where("id = ?", challenge.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	ok, err := svc.VerifyCode(1, challenge.Code, models.OTPTypeSensitiveAction)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestResendKeepsEarlierChallengeValid(t *testing.T) {
	utils.InitLogger()
	db := setupOTPDB(t)
	svc := NewOTPService(db, GetEmailService())

	first, err := svc.SendCode(1, "op@example.com", models.OTPTypeSensitiveAction)
	assert.NoError(t, err)
	second, err := svc.SendCode(1, "op@example.com", models.OTPTypeSensitiveAction)
	assert.NoError(t, err)

	// A resend does not invalidate the earlier code; it verifies once and
	// only once.
	ok, err := svc.VerifyCode(1, first.Code, models.OTPTypeSensitiveAction)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyCode(1, first.Code, models.OTPTypeSensitiveAction)
	assert.NoError(t, err)
	assert.False(t, ok)

	// The newer challenge is unaffected.
	ok, err = svc.VerifyCode(1, second.Code, models.OTPTypeSensitiveAction)
	assert.NoError(t, err)
	assert.True(t, ok)
}
