package controllers

import (
	"net/http"
	"time"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/services"
	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormController handles the public marketing-site forms. Every handler
// follows the same three steps: best-effort company capture, the submission
// insert (the only step whose failure fails the request), and a best-effort
// confirmation email enqueue.
type FormController struct {
	DB *gorm.DB
}

func NewFormController(db *gorm.DB) *FormController {
	return &FormController{DB: db}
}

// captureCompany runs the enrichment side call. Failures are logged and
// swallowed; they must never block the submission.
func (fc *FormController) captureCompany(company, organization, email string) {
	if err := services.CaptureCompany(fc.DB, company, organization, email); err != nil {
		utils.ErrorLogger.Printf("Company capture failed for %s: %v", email, err)
	}
}

// queueConfirmation enqueues the confirmation email and returns the success
// message, softened when the enqueue failed.
func (fc *FormController) queueConfirmation(name, email, formType, formLabel, reference string) string {
	html := services.ConfirmationEmailHTML(name, formLabel, reference)
	if err := services.Enqueue(fc.DB, email, "We received your "+formLabel, html, formType); err != nil {
		utils.ErrorLogger.Printf("Confirmation email enqueue failed for %s: %v", email, err)
		return "Submission received; the confirmation email may be delayed"
	}
	return "Submission received"
}

func (fc *FormController) SubmitContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Company string `json:"company"`
		Subject string `json:"subject"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fc.captureCompany(req.Company, "", req.Email)

	sub := models.ContactSubmission{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Subject:   req.Subject,
		Message:   req.Message,
	}
	if err := fc.DB.Create(&sub).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	msg := fc.queueConfirmation(req.Name, req.Email, "contact", "contact message", sub.Reference)
	utils.RespondJSON(c, http.StatusCreated, msg, gin.H{"reference": sub.Reference})
}

func (fc *FormController) SubmitInquiry(c *gin.Context) {
	var req struct {
		InquiryType  string `json:"inquiry_type" binding:"required,oneof=general partner investor"`
		Name         string `json:"name" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		Organization string `json:"organization"`
		Message      string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fc.captureCompany("", req.Organization, req.Email)

	inquiry := models.Inquiry{
		Reference:    uuid.NewString(),
		InquiryType:  req.InquiryType,
		Name:         req.Name,
		Email:        req.Email,
		Organization: req.Organization,
		Message:      req.Message,
	}
	if err := fc.DB.Create(&inquiry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	msg := fc.queueConfirmation(req.Name, req.Email, "inquiry", req.InquiryType+" inquiry", inquiry.Reference)
	utils.RespondJSON(c, http.StatusCreated, msg, gin.H{"reference": inquiry.Reference})
}

func (fc *FormController) SubmitJobApplication(c *gin.Context) {
	var req struct {
		JobPostingID uint   `json:"job_posting_id"`
		Name         string `json:"name" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		Phone        string `json:"phone"`
		ResumeURL    string `json:"resume_url"`
		CoverLetter  string `json:"cover_letter"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fc.captureCompany("", "", req.Email)

	app := models.JobApplication{
		Reference:    uuid.NewString(),
		JobPostingID: req.JobPostingID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		ResumeURL:    req.ResumeURL,
		CoverLetter:  req.CoverLetter,
		Status:       "received",
	}
	if err := fc.DB.Create(&app).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	msg := fc.queueConfirmation(req.Name, req.Email, "job_application", "job application", app.Reference)
	utils.RespondJSON(c, http.StatusCreated, msg, gin.H{"reference": app.Reference})
}

func (fc *FormController) SubmitSupportTicket(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Company  string `json:"company"`
		Subject  string `json:"subject" binding:"required"`
		Message  string `json:"message" binding:"required"`
		Priority string `json:"priority" binding:"omitempty,oneof=low normal high"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fc.captureCompany(req.Company, "", req.Email)

	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	ticket := models.SupportTicket{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Subject:   req.Subject,
		Message:   req.Message,
		Priority:  priority,
		Status:    "open",
	}
	if err := fc.DB.Create(&ticket).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	msg := fc.queueConfirmation(req.Name, req.Email, "support_ticket", "support request", ticket.Reference)
	utils.RespondJSON(c, http.StatusCreated, msg, gin.H{"reference": ticket.Reference})
}

func (fc *FormController) SubmitInnovationLabApplication(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		Organization string `json:"organization"`
		ProjectTitle string `json:"project_title" binding:"required"`
		Summary      string `json:"summary" binding:"required"`
		Stage        string `json:"stage" binding:"omitempty,oneof=idea prototype launched"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fc.captureCompany("", req.Organization, req.Email)

	app := models.InnovationLabApplication{
		Reference:    uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Organization: req.Organization,
		ProjectTitle: req.ProjectTitle,
		Summary:      req.Summary,
		Stage:        req.Stage,
	}
	if err := fc.DB.Create(&app).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	msg := fc.queueConfirmation(req.Name, req.Email, "innovation_lab", "innovation lab application", app.Reference)
	utils.RespondJSON(c, http.StatusCreated, msg, gin.H{"reference": app.Reference})
}

func (fc *FormController) SubmitScheduledCall(c *gin.Context) {
	var req struct {
		Name        string    `json:"name" binding:"required"`
		Email       string    `json:"email" binding:"required,email"`
		Company     string    `json:"company"`
		Topic       string    `json:"topic"`
		RequestedAt time.Time `json:"requested_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fc.captureCompany(req.Company, "", req.Email)

	call := models.ScheduledCall{
		Reference:   uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		Topic:       req.Topic,
		RequestedAt: req.RequestedAt,
		Status:      "requested",
	}
	if err := fc.DB.Create(&call).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	msg := fc.queueConfirmation(req.Name, req.Email, "scheduled_call", "call request", call.Reference)
	utils.RespondJSON(c, http.StatusCreated, msg, gin.H{"reference": call.Reference})
}
