package controllers

import (
	"errors"
	"net/http"

	"github.com/arvotech/corporate-app/models"
	"github.com/arvotech/corporate-app/services"
	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserManagementController handles the OTP-gated sensitive actions on
// back-office users: profile edits, role changes and forced logout. An
// action never mutates anything until a code sent to the operator email
// has been verified.
type UserManagementController struct {
	DB      *gorm.DB
	OTP     *services.OTPService
	Pending *services.PendingActionStore
	Email   *services.EmailService
}

func NewUserManagementController(db *gorm.DB, otp *services.OTPService, pending *services.PendingActionStore, email *services.EmailService) *UserManagementController {
	return &UserManagementController{DB: db, OTP: otp, Pending: pending, Email: email}
}

// RequestAction stores the pending action in the operator's single slot
// (overwriting any earlier unresolved one) and sends the verification code.
func (umc *UserManagementController) RequestAction(c *gin.Context) {
	operatorID := c.GetUint("user_id")

	var req struct {
		Action       string            `json:"action" binding:"required"`
		TargetUserID uint              `json:"target_user_id" binding:"required"`
		Payload      map[string]string `json:"payload"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	kind := services.SensitiveActionKind(req.Action)
	switch kind {
	case services.ActionUpdateUser, services.ActionChangeRole, services.ActionForceLogout:
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown action: "+req.Action))
		return
	}

	var target models.User
	if err := umc.DB.First(&target, req.TargetUserID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("target user not found"))
		return
	}

	challenge, err := umc.OTP.SendCode(operatorID, umc.Email.OperatorEmail(), models.OTPTypeSensitiveAction)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	umc.Pending.Put(operatorID, &services.PendingAction{
		Action:       kind,
		TargetUserID: req.TargetUserID,
		Payload:      req.Payload,
		ChallengeRef: challenge.Reference,
	})

	utils.InfoLogger.Printf("Sensitive action %s queued by operator %d for user %d", kind, operatorID, req.TargetUserID)
	utils.RespondJSON(c, http.StatusAccepted, "Verification code sent", gin.H{
		"challenge_reference": challenge.Reference,
		"expires_at":          challenge.ExpiresAt,
	})
}

// ResendCode re-sends a code for the operator's pending action. No cooldown.
func (umc *UserManagementController) ResendCode(c *gin.Context) {
	operatorID := c.GetUint("user_id")

	pending, ok := umc.Pending.Get(operatorID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("no pending action"))
		return
	}

	challenge, err := umc.OTP.SendCode(operatorID, umc.Email.OperatorEmail(), models.OTPTypeSensitiveAction)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pending.ChallengeRef = challenge.Reference
	umc.Pending.Put(operatorID, pending)

	utils.RespondJSON(c, http.StatusAccepted, "Verification code re-sent", gin.H{
		"challenge_reference": challenge.Reference,
		"expires_at":          challenge.ExpiresAt,
	})
}

// VerifyAndExecute verifies the submitted code. A wrong, expired or reused
// code is a soft failure: the pending action stays queued and the operator
// may retry or resend. A correct code consumes the pending action and runs
// it; the slot is cleared even when the mutation itself fails.
func (umc *UserManagementController) VerifyAndExecute(c *gin.Context) {
	operatorID := c.GetUint("user_id")

	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if _, ok := umc.Pending.Get(operatorID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("no pending action"))
		return
	}

	verified, err := umc.OTP.VerifyCode(operatorID, req.Code, models.OTPTypeSensitiveAction)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !verified {
		utils.RespondJSON(c, http.StatusOK, "Invalid or expired code", gin.H{
			"verified": false,
			"executed": false,
		})
		return
	}

	pending, ok := umc.Pending.Take(operatorID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("no pending action"))
		return
	}

	if err := umc.execute(pending); err != nil {
		utils.ErrorLogger.Printf("Sensitive action %s failed after verification: %v", pending.Action, err)
		utils.RespondJSON(c, http.StatusOK, "Code verified but action failed: "+err.Error(), gin.H{
			"verified": true,
			"executed": false,
		})
		return
	}

	utils.InfoLogger.Printf("Sensitive action %s executed on user %d", pending.Action, pending.TargetUserID)
	utils.RespondJSON(c, http.StatusOK, "Action executed", gin.H{
		"verified": true,
		"executed": true,
	})
}

// CancelAction discards the pending action with no side effects.
func (umc *UserManagementController) CancelAction(c *gin.Context) {
	operatorID := c.GetUint("user_id")
	umc.Pending.Discard(operatorID)
	utils.RespondJSON(c, http.StatusOK, "Pending action discarded", nil)
}

func (umc *UserManagementController) execute(pending *services.PendingAction) error {
	switch pending.Action {
	case services.ActionUpdateUser:
		updates := map[string]interface{}{}
		if name, ok := pending.Payload["name"]; ok && name != "" {
			updates["name"] = name
		}
		if email, ok := pending.Payload["email"]; ok && email != "" {
			updates["email"] = email
		}
		if len(updates) == 0 {
			return errors.New("nothing to update")
		}
		return umc.DB.Model(&models.User{}).
			Where("id = ?", pending.TargetUserID).
			Updates(updates).Error

	case services.ActionChangeRole:
		role := pending.Payload["role"]
		if !validRoles[role] {
			return errors.New("invalid role: " + role)
		}
		return umc.DB.Model(&models.User{}).
			Where("id = ?", pending.TargetUserID).
			Update("role", role).Error

	case services.ActionForceLogout:
		utils.ForceLogout(pending.TargetUserID)
		return nil
	}

	return errors.New("unknown action")
}
