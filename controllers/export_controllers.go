package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ExportTable re-fetches the whole table, ignoring the paginated view, and
// streams it as csv, json or pdf.
func (ec *ExportController) ExportTable(c *gin.Context) {
	table := c.Param("table")
	if !models.IsBrowsableTable(table) {
		utils.RespondError(c, http.StatusNotFound, errors.New("unknown table: "+table))
		return
	}

	format := c.DefaultQuery("format", "csv")

	var rows []map[string]interface{}
	if err := ec.DB.Table(table).Order("id ASC").Find(&rows).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	columns := utils.DiscoverColumns(rows)

	switch format {
	case "csv":
		body := utils.RecordsToCSV(columns, rows)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", table))
		c.Data(http.StatusOK, "text/csv", []byte(body))

	case "json":
		body, err := utils.RecordsToJSON(rows)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", table))
		c.Data(http.StatusOK, "application/json", []byte(body))

	case "pdf":
		body, err := renderTablePDF(table, columns, rows)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", table))
		c.Data(http.StatusOK, "application/pdf", body)

	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("unsupported format: "+format))
	}
}

// renderTablePDF draws a simple landscape grid. Long cell values are
// truncated; the PDF is a report, csv/json are the faithful formats.
func renderTablePDF(table string, columns []string, rows []map[string]interface{}) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(table, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, table, "", 1, "L", false, 0, "")

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 20
	colWidth := usable
	if len(columns) > 0 {
		colWidth = usable / float64(len(columns))
	}

	pdf.SetFont("Helvetica", "B", 9)
	for _, col := range columns {
		pdf.CellFormat(colWidth, 8, truncateCell(col), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range rows {
		for _, col := range columns {
			val := ""
			if v := row[col]; v != nil {
				val = fmt.Sprintf("%v", v)
			}
			pdf.CellFormat(colWidth, 7, truncateCell(val), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncateCell(s string) string {
	const max = 40
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max-3]) + "..."
	}
	return s
}
