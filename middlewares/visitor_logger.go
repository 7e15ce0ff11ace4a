package middlewares

import (
	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VisitorLogger records public page hits. Insert failures are logged and
// never affect the request.
func VisitorLogger(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		entry := models.VisitorLog{
			Path:      c.Request.URL.Path,
			Method:    c.Request.Method,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if err := db.Create(&entry).Error; err != nil {
			utils.ErrorLogger.Printf("Failed to record visitor log for %s: %v", entry.Path, err)
		}
	}
}
