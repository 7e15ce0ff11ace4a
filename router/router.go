package router

import (
	"github.com/arvotech/corporate-app/controllers"
	"github.com/arvotech/corporate-app/middlewares"
	"github.com/arvotech/corporate-app/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP across the whole surface. Registered
	// before any route so it actually wraps them.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	emailService := services.GetEmailService()
	otpService := services.NewOTPService(db, emailService)
	pendingActions := services.NewPendingActionStore()

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	exportCtrl := controllers.NewExportController(db)
	adminCtrl := controllers.NewAdminController(db)
	userMgmtCtrl := controllers.NewUserManagementController(db, otpService, pendingActions, emailService)
	formCtrl := controllers.NewFormController(db)
	contentCtrl := controllers.NewContentController(db)
	jobCtrl := controllers.NewJobController(db)
	callCtrl := controllers.NewCallController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter for login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Marketing site surface: published content, careers and the forms.
	// Visits here feed the visitor log.
	site := r.Group("/")
	site.Use(middlewares.VisitorLogger(db))
	{
		site.GET("/pages/:slug", contentCtrl.GetPublishedPage)
		site.GET("/careers/postings", jobCtrl.GetOpenPostings)

		site.POST("/forms/contact", formCtrl.SubmitContact)
		site.POST("/forms/inquiry", formCtrl.SubmitInquiry)
		site.POST("/forms/job-application", formCtrl.SubmitJobApplication)
		site.POST("/forms/support-ticket", formCtrl.SubmitSupportTicket)
		site.POST("/forms/innovation-lab", formCtrl.SubmitInnovationLabApplication)
		site.POST("/forms/schedule-call", formCtrl.SubmitScheduledCall)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.GET("/session", userCtrl.GetSession)
	auth.POST("/logout", userCtrl.Logout)
	auth.GET("/users", userCtrl.GetAllUsers)

	// SENSITIVE ACTIONS (admin only, OTP gated)
	actions := auth.Group("/users/actions")
	actions.Use(middlewares.RequireRole("admin"))
	{
		actions.POST("", userMgmtCtrl.RequestAction)
		actions.POST("/resend", userMgmtCtrl.ResendCode)
		actions.POST("/verify", userMgmtCtrl.VerifyAndExecute)
		actions.DELETE("", userMgmtCtrl.CancelAction)
	}

	// GENERIC TABLE BROWSER (admin only)
	tables := auth.Group("/tables")
	tables.Use(middlewares.RequireRole("admin"))
	{
		tables.GET("", tableCtrl.ListTables)
		tables.GET("/:table/rows", tableCtrl.ListRows)
		tables.POST("/:table/rows", tableCtrl.CreateRow)
		tables.PATCH("/:table/rows/:id", tableCtrl.UpdateRow)
		tables.DELETE("/:table/rows/:id", tableCtrl.DeleteRow)
		tables.POST("/:table/rows/bulk-delete", tableCtrl.BulkDeleteRows)
		tables.GET("/:table/export", exportCtrl.ExportTable)
	}

	// DASHBOARD (admin only)
	dashboard := auth.Group("/dashboard")
	dashboard.Use(middlewares.RequireRole("admin"))
	{
		dashboard.GET("/tables", adminCtrl.GetDashboardTables)
		dashboard.GET("/overview", adminCtrl.GetDashboardOverview)
	}
	auth.GET("/visitor-logs", middlewares.RequireRole("admin"), adminCtrl.GetVisitorLogs)

	// CONTENT (admin/editor)
	content := auth.Group("/pages")
	content.Use(middlewares.RequireRole("editor"))
	{
		content.GET("", contentCtrl.GetAllPages)
		content.POST("", contentCtrl.CreatePage)
		content.PATCH("/:page_id", contentCtrl.UpdatePage)
		content.DELETE("/:page_id", contentCtrl.DeletePage)
	}

	// CAREERS back-office (admin/editor for postings, admin/support for applications)
	postings := auth.Group("/postings")
	postings.Use(middlewares.RequireRole("editor"))
	{
		postings.GET("", jobCtrl.GetAllPostings)
		postings.POST("", jobCtrl.CreatePosting)
		postings.PATCH("/:posting_id", jobCtrl.UpdatePosting)
		postings.DELETE("/:posting_id", jobCtrl.DeletePosting)
	}
	auth.GET("/applications", middlewares.RequireRole("support"), jobCtrl.GetAllApplications)
	auth.PATCH("/applications/:application_id", middlewares.RequireRole("support"), jobCtrl.UpdateApplicationStatus)

	// SCHEDULED CALLS (admin/support)
	calls := auth.Group("/calls")
	calls.Use(middlewares.RequireRole("support"))
	{
		calls.GET("", callCtrl.GetAllCalls)
		calls.PATCH("/:call_id", callCtrl.UpdateCallStatus)
	}

	return r
}
