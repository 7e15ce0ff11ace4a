package services

import (
	"time"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"gorm.io/gorm"
)

// EmailDispatcher drains pending rows from the email_logs outbox. Form
// handlers only enqueue; delivery happens here, so a slow or failing
// provider never blocks a submission.
type EmailDispatcher struct {
	DB       *gorm.DB
	Email    *EmailService
	StopChan chan struct{}
	Interval time.Duration
}

func NewEmailDispatcher(db *gorm.DB, email *EmailService) *EmailDispatcher {
	return &EmailDispatcher{
		DB:       db,
		Email:    email,
		StopChan: make(chan struct{}),
		Interval: 5 * time.Second,
	}
}

func (ed *EmailDispatcher) Start() {
	go func() {
		ticker := time.NewTicker(ed.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ed.DrainOnce()
			case <-ed.StopChan:
				return
			}
		}
	}()
}

func (ed *EmailDispatcher) Stop() {
	close(ed.StopChan)
}

// DrainOnce sends up to 50 pending outbox rows. Each row is marked sent or
// failed; a failed row is terminal, there is no automatic retry.
func (ed *EmailDispatcher) DrainOnce() {
	var pending []models.EmailLog
	if err := ed.DB.Where("status = ?", "pending").
		Order("created_at ASC").
		Limit(50).
		Find(&pending).Error; err != nil {
		utils.ErrorLogger.Printf("Error fetching pending emails: %v", err)
		return
	}

	for _, entry := range pending {
		messageID, err := ed.Email.Send(entry.Recipient, entry.Subject, entry.HTMLBody)
		if err != nil {
			utils.ErrorLogger.Printf("Email delivery failed (id=%d, to=%s): %v", entry.ID, entry.Recipient, err)
			ed.DB.Model(&models.EmailLog{}).Where("id = ?", entry.ID).
				Updates(map[string]interface{}{"status": "failed", "last_error": err.Error()})
			continue
		}

		utils.InfoLogger.Printf("Email sent (id=%d, to=%s, message_id=%s)", entry.ID, entry.Recipient, messageID)
		ed.DB.Model(&models.EmailLog{}).Where("id = ?", entry.ID).
			Updates(map[string]interface{}{"status": "sent", "message_id": messageID})
	}
}

// Enqueue appends a pending row to the outbox.
func Enqueue(db *gorm.DB, to, subject, html, formType string) error {
	entry := models.EmailLog{
		Recipient: to,
		Subject:   subject,
		HTMLBody:  html,
		FormType:  formType,
		Status:    "pending",
	}
	return db.Create(&entry).Error
}
