package controllers

import (
	"net/http"
	"strconv"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JobController struct {
	DB *gorm.DB
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{DB: db}
}

// GetOpenPostings -> public careers listing
func (jc *JobController) GetOpenPostings(c *gin.Context) {
	var postings []models.JobPosting
	if err := jc.DB.Where("open = ?", true).Order("created_at DESC").Find(&postings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Open postings", postings)
}

// GetAllPostings -> admin listing, closed ones included
func (jc *JobController) GetAllPostings(c *gin.Context) {
	var postings []models.JobPosting
	if err := jc.DB.Order("created_at DESC").Find(&postings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All postings", postings)
}

func (jc *JobController) CreatePosting(c *gin.Context) {
	var req struct {
		Title          string `json:"title" binding:"required"`
		Department     string `json:"department"`
		Location       string `json:"location"`
		EmploymentType string `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract"`
		Description    string `json:"description"`
		Open           *bool  `json:"open"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	open := true
	if req.Open != nil {
		open = *req.Open
	}

	posting := models.JobPosting{
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Description:    req.Description,
		Open:           open,
	}
	if err := jc.DB.Create(&posting).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Job posting created: %s", posting.Title)
	utils.RespondJSON(c, http.StatusCreated, "Posting created", posting)
}

func (jc *JobController) UpdatePosting(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("posting_id"))

	var req struct {
		Title          *string `json:"title"`
		Department     *string `json:"department"`
		Location       *string `json:"location"`
		EmploymentType *string `json:"employment_type"`
		Description    *string `json:"description"`
		Open           *bool   `json:"open"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var posting models.JobPosting
	if err := jc.DB.First(&posting, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Department != nil {
		posting.Department = *req.Department
	}
	if req.Location != nil {
		posting.Location = *req.Location
	}
	if req.EmploymentType != nil {
		posting.EmploymentType = *req.EmploymentType
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.Open != nil {
		posting.Open = *req.Open
	}

	if err := jc.DB.Save(&posting).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Posting updated", posting)
}

func (jc *JobController) DeletePosting(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("posting_id"))

	if err := jc.DB.Delete(&models.JobPosting{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Posting deleted", gin.H{"posting_id": id})
}

// GetAllApplications -> admin review queue
func (jc *JobController) GetAllApplications(c *gin.Context) {
	var applications []models.JobApplication
	if err := jc.DB.Order("created_at DESC").Find(&applications).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All applications", applications)
}

// UpdateApplicationStatus moves an application through the review pipeline.
func (jc *JobController) UpdateApplicationStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("application_id"))

	var req struct {
		Status string `json:"status" binding:"required,oneof=received screening interview rejected hired"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var app models.JobApplication
	if err := jc.DB.First(&app, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	app.Status = req.Status
	if err := jc.DB.Save(&app).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Application updated", app)
}
