package Controllers_test

import (
	"fmt"

	"github.com/arvotech/corporate-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a named SQLite in-memory database and migrates the
// given models. Each test uses its own name so state never leaks between
// tests.
func setupTestDB(name string, migrate ...interface{}) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			panic(err)
		}
	}
	return db
}

// allModels migrates the full schema.
func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.OTPChallenge{},
		&models.Company{},
		&models.ContactSubmission{},
		&models.Inquiry{},
		&models.JobPosting{},
		&models.JobApplication{},
		&models.SupportTicket{},
		&models.InnovationLabApplication{},
		&models.ScheduledCall{},
		&models.VisitorLog{},
		&models.EmailLog{},
		&models.PageContent{},
	}
}

// authAs stands in for the auth middleware and plants the operator's
// identity in the request context.
func authAs(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}
