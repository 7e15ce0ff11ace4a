package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/arvotech/corporate-app/controllers"
	"github.com/arvotech/corporate-app/middlewares"
	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	utils.InitLogger()

	db := setupTestDB(t.Name(), &models.User{})

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(db)
	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)

	// --- Register ---
	registerPayload := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "password123",
		"role":     "admin",
	}
	payloadBytes, err := json.Marshal(registerPayload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/register", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var registerResponse map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &registerResponse)
	assert.NoError(t, err)
	assert.Equal(t, true, registerResponse["status"])
	data := registerResponse["data"].(map[string]interface{})
	assert.NotNil(t, data["user_id"])

	// --- Register with a bogus role is rejected ---
	badRole := map[string]string{
		"name":     "Other",
		"email":    "other@example.com",
		"password": "password123",
		"role":     "superuser",
	}
	payloadBytes, _ = json.Marshal(badRole)
	req, _ = http.NewRequest("POST", "/register", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// --- Login ---
	loginPayload := map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	}
	payloadBytes, err = json.Marshal(loginPayload)
	assert.NoError(t, err)

	req, err = http.NewRequest("POST", "/login", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var loginResponse map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &loginResponse)
	assert.NoError(t, err)
	assert.Equal(t, true, loginResponse["status"])
	data = loginResponse["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	// --- Wrong password ---
	loginPayload["password"] = "wrong"
	payloadBytes, _ = json.Marshal(loginPayload)
	req, _ = http.NewRequest("POST", "/login", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAndLogout(t *testing.T) {
	utils.InitLogger()
	utils.ResetSessionState()

	db := setupTestDB(t.Name(), &models.User{})
	db.Create(&models.User{Name: "Op", Email: "op@example.com", Password: "x", Role: "admin"})

	token, err := utils.GenerateToken(1, "admin")
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(db)
	auth := router.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/session", userCtrl.GetSession)
	auth.POST("/logout", userCtrl.Logout)

	// Session reports the expiry for the admin countdown.
	req, _ := http.NewRequest("GET", "/admin/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	expiresAt := int64(data["expires_at"].(float64))
	assert.Greater(t, expiresAt, time.Now().Unix())
	assert.Greater(t, data["expires_in_seconds"].(float64), float64(0))
	assert.Equal(t, "op@example.com", data["email"])

	// Logout blacklists the token; the next call is rejected.
	req, _ = http.NewRequest("POST", "/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/admin/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbage(t *testing.T) {
	utils.InitLogger()
	utils.ResetSessionState()

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.GET("/admin/ping", middlewares.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// No token
	req, _ := http.NewRequest("GET", "/admin/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Malformed token
	req, _ = http.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
