package controllers

import (
	"net/http"
	"strconv"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CallController struct {
	DB *gorm.DB
}

func NewCallController(db *gorm.DB) *CallController {
	return &CallController{DB: db}
}

// GetAllCalls -> admin listing, newest request first
func (cc *CallController) GetAllCalls(c *gin.Context) {
	var calls []models.ScheduledCall
	if err := cc.DB.Order("requested_at DESC").Find(&calls).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Scheduled calls", calls)
}

// UpdateCallStatus confirms, completes or cancels a call request.
func (cc *CallController) UpdateCallStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("call_id"))

	var req struct {
		Status string `json:"status" binding:"required,oneof=requested confirmed done cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var call models.ScheduledCall
	if err := cc.DB.First(&call, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	call.Status = req.Status
	if err := cc.DB.Save(&call).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Call updated", call)
}
