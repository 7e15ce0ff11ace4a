package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TableController is the generic CRUD engine behind the admin table
// browser. It works on raw row maps so new relations only need a registry
// entry, not a handler.
type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

const defaultPageSize = 25

// resolveTable maps the path parameter to an allowlisted table name.
func resolveTable(c *gin.Context) (string, bool) {
	name := c.Param("table")
	if !models.IsBrowsableTable(name) {
		utils.RespondError(c, http.StatusNotFound, errors.New("unknown table: "+name))
		return "", false
	}
	return name, true
}

// ListTables -> the registered table names
func (tc *TableController) ListTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Registered tables", models.BrowsableTables)
}

// ListRows -> one page of rows plus discovered columns and the total count.
// Columns are the key set of the first returned row; an empty page means an
// empty column list.
func (tc *TableController) ListRows(c *gin.Context) {
	table, ok := resolveTable(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	var total int64
	if err := tc.DB.Table(table).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var rows []map[string]interface{}
	if err := tc.DB.Table(table).
		Order("id ASC").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Rows retrieved", gin.H{
		"rows":        rows,
		"columns":     utils.DiscoverColumns(rows),
		"total_count": total,
		"page":        page,
		"page_size":   pageSize,
	})
}

// CreateRow inserts one row from an open field map.
func (tc *TableController) CreateRow(c *gin.Context) {
	table, ok := resolveTable(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(fields) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("empty row"))
		return
	}
	delete(fields, "id")

	if err := tc.DB.Table(table).Create(fields).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Row created in %s", table)
	utils.RespondJSON(c, http.StatusCreated, "Row created", nil)
}

// UpdateRow patches a row by primary key equality.
func (tc *TableController) UpdateRow(c *gin.Context) {
	table, ok := resolveTable(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	delete(fields, "id")
	if len(fields) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no fields to update"))
		return
	}

	if err := tc.DB.Table(table).Where("id = ?", id).Updates(fields).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Row updated", gin.H{"id": id})
}

// DeleteRow deletes by primary key equality. No soft delete, no undo.
func (tc *TableController) DeleteRow(c *gin.Context) {
	table, ok := resolveTable(c)
	if !ok {
		return
	}
	id := c.Param("id")

	res := tc.DB.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Row deleted", gin.H{
		"id":            id,
		"rows_affected": res.RowsAffected,
	})
}

// BulkDeleteRows deletes exactly the given id set, nothing more.
func (tc *TableController) BulkDeleteRows(c *gin.Context) {
	table, ok := resolveTable(c)
	if !ok {
		return
	}

	var req struct {
		IDs []int64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(req.IDs) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("ids must not be empty"))
		return
	}

	res := tc.DB.Exec("DELETE FROM "+table+" WHERE id IN ?", req.IDs)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}

	utils.InfoLogger.Printf("Bulk delete on %s: %d of %d ids removed", table, res.RowsAffected, len(req.IDs))
	utils.RespondJSON(c, http.StatusOK, "Rows deleted", gin.H{
		"rows_affected": res.RowsAffected,
	})
}
