package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/corgigo/corgigo-backend/internal/app/model"
	"github.com/corgigo/corgigo-backend/internal/app/service"
	apperrors "github.com/corgigo/corgigo-backend/internal/errors"
	"github.com/corgigo/corgigo-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

const (
	ReviewActionApprove = "approve"
	ReviewActionReject  = "reject"
)

type ReviewRequest struct {
	ProfileID    uint   `json:"profile_id" binding:"required"`
	Action       string `json:"action" binding:"required,oneof=approve reject"`
	RejectReason string `json:"reject_reason"`
}

// PendingProfileResponse is a review-queue entry with owner and documents
type PendingProfileResponse struct {
	ProfileResponse
	Owner struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"owner"`
	Documents []DocumentResponse `json:"documents"`
}

func toPendingProfileResponse(p *model.RestaurantProfile) PendingProfileResponse {
	item := PendingProfileResponse{
		ProfileResponse: toProfileResponse(p),
		Documents:       toDocumentResponses(p.Documents),
	}
	item.Owner.ID = p.User.ID
	item.Owner.Name = p.User.Name
	item.Owner.Email = p.User.Email
	item.Owner.Phone = p.User.Phone
	return item
}

// ListPending returns the admin review queue, oldest submission first
// GET /api/v1/admin/restaurants/pending
func (ctrl *AdminController) ListPending(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	profiles, err := ctrl.adminService.ListPending()
	if err != nil {
		log.Error("Failed to fetch pending profiles", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	items := make([]PendingProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, toPendingProfileResponse(&profiles[i]))
	}

	log.Info("Pending review queue fetched", map[string]interface{}{
		"count": len(items),
	})

	c.JSON(http.StatusOK, gin.H{
		"profiles": items,
		"count":    len(items),
	})
}

// Review approves or rejects a pending restaurant profile
// POST /api/v1/admin/restaurants/approval
func (ctrl *AdminController) Review(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	adminID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid review request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		return
	}

	var (
		profile *model.RestaurantProfile
		err     error
		message string
	)

	switch req.Action {
	case ReviewActionApprove:
		profile, err = ctrl.adminService.Approve(req.ProfileID, adminID)
		message = "อนุมัติร้านอาหารเรียบร้อยแล้ว"
	case ReviewActionReject:
		profile, err = ctrl.adminService.Reject(req.ProfileID, adminID, req.RejectReason)
		message = "ปฏิเสธการสมัครร้านอาหารเรียบร้อยแล้ว"
	}

	if err != nil {
		switch {
		case errors.Is(err, service.ErrReasonRequired):
			log.Warn("Rejection without reason", map[string]interface{}{
				"profile_id": req.ProfileID,
			})
			apperrors.BadRequest(c, apperrors.ProfileRejectNoReason, "กรุณาระบุเหตุผลในการปฏิเสธ")
		case errors.Is(err, service.ErrProfileNotFound):
			apperrors.NotFound(c, apperrors.ProfileNotFound, "ไม่พบข้อมูลร้านอาหาร")
		case errors.Is(err, service.ErrProfileNotPending):
			apperrors.BadRequest(c, apperrors.ProfileNotPending, "ร้านนี้ไม่ได้อยู่ในสถานะรอการตรวจสอบ")
		default:
			log.Error("Failed to review profile", err, map[string]interface{}{
				"profile_id": req.ProfileID,
				"action":     req.Action,
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	log.Info("Profile reviewed", map[string]interface{}{
		"profile_id": req.ProfileID,
		"action":     req.Action,
		"admin_id":   adminID,
		"status":     profile.Status,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":     message,
		"profile_id":  profile.ID,
		"status":      string(profile.Status),
		"reviewed_at": time.Now().Format(time.RFC3339),
	})
}
