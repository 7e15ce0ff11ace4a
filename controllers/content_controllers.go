package controllers

import (
	"net/http"
	"strconv"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContentController manages editable page content. The public site only
// ever sees published pages.
type ContentController struct {
	DB *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db}
}

// GetPublishedPage -> public page by slug
func (cc *ContentController) GetPublishedPage(c *gin.Context) {
	slug := c.Param("slug")

	var page models.PageContent
	if err := cc.DB.Where("slug = ? AND published = ?", slug, true).First(&page).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Page content", page)
}

// GetAllPages -> admin listing, drafts included
func (cc *ContentController) GetAllPages(c *gin.Context) {
	var pages []models.PageContent
	if err := cc.DB.Order("slug ASC").Find(&pages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All pages", pages)
}

func (cc *ContentController) CreatePage(c *gin.Context) {
	var req struct {
		Slug      string `json:"slug" binding:"required"`
		Title     string `json:"title" binding:"required"`
		Body      string `json:"body"`
		Published bool   `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	page := models.PageContent{
		Slug:      req.Slug,
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
	}
	if err := cc.DB.Create(&page).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Page created: %s (published=%v)", page.Slug, page.Published)
	utils.RespondJSON(c, http.StatusCreated, "Page created", page)
}

func (cc *ContentController) UpdatePage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("page_id"))

	var req struct {
		Title     *string `json:"title"`
		Body      *string `json:"body"`
		Published *bool   `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var page models.PageContent
	if err := cc.DB.First(&page, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Body != nil {
		page.Body = *req.Body
	}
	if req.Published != nil {
		page.Published = *req.Published
	}

	if err := cc.DB.Save(&page).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Page updated", page)
}

func (cc *ContentController) DeletePage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("page_id"))

	if err := cc.DB.Delete(&models.PageContent{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Page deleted", gin.H{"page_id": id})
}
