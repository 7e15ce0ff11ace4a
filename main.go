package main

import (
	"log"
	"os"

	"github.com/arvotech/corporate-app/config"
	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/router"
	"github.com/arvotech/corporate-app/services"
	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	utils.InitDB(db)

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	// Outbox dispatcher delivers confirmation and OTP emails in the
	// background so form handlers never wait on the provider.
	dispatcher := services.NewEmailDispatcher(db, services.GetEmailService())
	dispatcher.Start()
	defer dispatcher.Stop()

	r := router.SetupRouter(db)

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
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
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
