package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/arvotech/corporate-app/controllers"
	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
)

func setupTableRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	tableCtrl := controllers.NewTableController(db)

	tables := router.Group("/admin/tables")
	tables.Use(authAs(1, "admin"))
	{
		tables.GET("", tableCtrl.ListTables)
		tables.GET("/:table/rows", tableCtrl.ListRows)
		tables.POST("/:table/rows", tableCtrl.CreateRow)
		tables.PATCH("/:table/rows/:id", tableCtrl.UpdateRow)
		tables.DELETE("/:table/rows/:id", tableCtrl.DeleteRow)
		tables.POST("/:table/rows/bulk-delete", tableCtrl.BulkDeleteRows)
	}
	return router
}

func seedContacts(db *gorm.DB, n int) {
	for i := 1; i <= n; i++ {
		db.Create(&models.ContactSubmission{
			Name:    fmt.Sprintf("Person %d", i),
			Email:   fmt.Sprintf("p%d@example.com", i),
			Message: fmt.Sprintf("message %d", i),
		})
	}
}

func TestUnknownTableRejected(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t.Name(), &models.ContactSubmission{})
	router := setupTableRouter(db)

	req, _ := http.NewRequest("GET", "/admin/tables/secrets/rows", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRowsPaginationIsExact(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t.Name(), &models.ContactSubmission{})
	seedContacts(db, 12)
	router := setupTableRouter(db)

	// Concatenating all pages of size 5 must yield exactly the 12 rows,
	// no duplicates, no omissions.
	seen := map[float64]bool{}
	for page := 0; page < 3; page++ {
		url := fmt.Sprintf("/admin/tables/contact_submissions/rows?page=%d&page_size=5", page)
		req, _ := http.NewRequest("GET", url, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.Equal(t, float64(12), data["total_count"])

		rows := data["rows"].([]interface{})
		for _, raw := range rows {
			row := raw.(map[string]interface{})
			id := row["id"].(float64)
			assert.False(t, seen[id], "row %v appeared twice", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, 12)
}

func TestListRowsEmptyTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t.Name(), &models.ContactSubmission{})
	router := setupTableRouter(db)

	req, _ := http.NewRequest("GET", "/admin/tables/contact_submissions/rows", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_count"])
	// Empty table means an empty discovered column list.
	assert.Empty(t, data["columns"])
}

func TestCreateUpdateDeleteRow(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t.Name(), &models.ContactSubmission{})
	router := setupTableRouter(db)

	// Create
	payload := map[string]interface{}{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "hello",
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/admin/tables/contact_submissions/rows", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.ContactSubmission
	assert.NoError(t, db.Where("email = ?", "ada@example.com").First(&created).Error)

	// Update
	patch := map[string]interface{}{"message": "updated"}
	body, _ = json.Marshal(patch)
	url := fmt.Sprintf("/admin/tables/contact_submissions/rows/%d", created.ID)
	req, _ = http.NewRequest("PATCH", url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.ContactSubmission
	db.First(&updated, created.ID)
	assert.Equal(t, "updated", updated.Message)

	// Delete
	req, _ = http.NewRequest("DELETE", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.ContactSubmission{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestBulkDeleteExactSet(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t.Name(), &models.ContactSubmission{})
	seedContacts(db, 6)
	router := setupTableRouter(db)

	payload := map[string]interface{}{"ids": []int64{2, 4, 5}}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/admin/tables/contact_submissions/rows/bulk-delete", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Exactly the given ids are gone; everything else survives.
	var remaining []models.ContactSubmission
	db.Order("id ASC").Find(&remaining)
	ids := make([]uint, 0, len(remaining))
	for _, row := range remaining {
		ids = append(ids, row.ID)
	}
	assert.Equal(t, []uint{1, 3, 6}, ids)
}

func TestBulkDeleteEmptyIDs(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t.Name(), &models.ContactSubmission{})
	router := setupTableRouter(db)

	body, _ := json.Marshal(map[string]interface{}{"ids": []int64{}})
	req, _ := http.NewRequest("POST", "/admin/tables/contact_submissions/rows/bulk-delete", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
