package controllers

import (
	"net/http"
	"strconv"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// dashboardCategories maps UI buckets to their member tables. Category
// totals sum the counts of member tables that exist; an absent table
// contributes nothing.
var dashboardCategories = map[string][]string{
	"user_management": {"users", "otp_challenges"},
	"company_data":    {"companies"},
	"forms":           {"contact_submissions", "inquiries", "job_applications", "innovation_lab_applications"},
	"support":         {"support_tickets"},
	"events":          {"scheduled_calls", "visitor_logs"},
	"system":          {"email_logs", "page_contents", "job_postings"},
}

type tableInfo struct {
	Name       string                   `json:"name"`
	Columns    []string                 `json:"columns"`
	SampleRows []map[string]interface{} `json:"sample_rows"`
	TotalCount int64                    `json:"total_count"`
}

// loadTableInfo fetches one table's summary independently of the others.
// A missing or unreadable table yields ok=false, never an error response.
func (ac *AdminController) loadTableInfo(name string) (tableInfo, bool) {
	info := tableInfo{Name: name}

	if err := ac.DB.Table(name).Count(&info.TotalCount).Error; err != nil {
		utils.ErrorLogger.Printf("Dashboard: skipping table %s: %v", name, err)
		return info, false
	}

	if err := ac.DB.Table(name).Order("id ASC").Limit(5).Find(&info.SampleRows).Error; err != nil {
		utils.ErrorLogger.Printf("Dashboard: sample fetch failed for %s: %v", name, err)
		return info, false
	}

	info.Columns = utils.DiscoverColumns(info.SampleRows)
	return info, true
}

// GetDashboardTables -> summary of every registered table that exists.
func (ac *AdminController) GetDashboardTables(c *gin.Context) {
	tables := make([]tableInfo, 0, len(models.BrowsableTables))
	for _, name := range models.BrowsableTables {
		if info, ok := ac.loadTableInfo(name); ok {
			tables = append(tables, info)
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard tables", gin.H{
		"tables": tables,
	})
}

// GetDashboardOverview -> per-category totals. A category whose tables are
// all absent reports 0.
func (ac *AdminController) GetDashboardOverview(c *gin.Context) {
	counts := make(map[string]int64)
	for _, name := range models.BrowsableTables {
		var count int64
		if err := ac.DB.Table(name).Count(&count).Error; err != nil {
			utils.ErrorLogger.Printf("Overview: skipping table %s: %v", name, err)
			continue
		}
		counts[name] = count
	}

	categories := make(map[string]int64, len(dashboardCategories))
	var grandTotal int64
	for category, tables := range dashboardCategories {
		var total int64
		for _, name := range tables {
			if count, present := counts[name]; present {
				total += count
			}
		}
		categories[category] = total
		grandTotal += total
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard overview", gin.H{
		"categories":  categories,
		"grand_total": grandTotal,
	})
}

// GetVisitorLogs -> newest public page hits, paginated.
func (ac *AdminController) GetVisitorLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if pageSize < 1 {
		pageSize = 50
	}

	var total int64
	ac.DB.Model(&models.VisitorLog{}).Count(&total)

	var logs []models.VisitorLog
	if err := ac.DB.Order("created_at DESC").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&logs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Visitor logs", gin.H{
		"logs":        logs,
		"total_count": total,
	})
}
