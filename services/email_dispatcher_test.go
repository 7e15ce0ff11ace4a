package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOutboxDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.EmailLog{}))
	return db
}

func TestDispatcherMarksSent(t *testing.T) {
	utils.InitLogger()
	db := setupOutboxDB(t)

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer provider.Close()

	email := GetEmailService()
	email.SetTransportForTest(provider.URL, provider.Client())

	assert.NoError(t, Enqueue(db, "jane@example.com", "hi", "<p>hi</p>", "contact"))

	dispatcher := NewEmailDispatcher(db, email)
	dispatcher.DrainOnce()

	var entry models.EmailLog
	db.First(&entry)
	assert.Equal(t, "sent", entry.Status)
	assert.Equal(t, "msg_123", entry.MessageID)
}

func TestDispatcherMarksFailedWithoutRetry(t *testing.T) {
	utils.InitLogger()
	db := setupOutboxDB(t)

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer provider.Close()

	email := GetEmailService()
	email.SetTransportForTest(provider.URL, provider.Client())

	assert.NoError(t, Enqueue(db, "bad@example.com", "hi", "<p>hi</p>", "contact"))

	dispatcher := NewEmailDispatcher(db, email)
	dispatcher.DrainOnce()

	var entry models.EmailLog
	db.First(&entry)
	assert.Equal(t, "failed", entry.Status)
	assert.Contains(t, entry.LastError, "401")

	// A failed row is terminal; a second drain does not touch it.
	dispatcher.DrainOnce()
	var count int64
	db.Model(&models.EmailLog{}).Where("status = ?", "failed").Count(&count)
	assert.Equal(t, int64(1), count)
}
