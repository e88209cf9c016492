package controller

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/corgigo/corgigo-backend/internal/app/model"
	"github.com/corgigo/corgigo-backend/internal/app/service"
	apperrors "github.com/corgigo/corgigo-backend/internal/errors"
	"github.com/corgigo/corgigo-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	restaurantService service.RestaurantService
}

func NewRestaurantController(restaurantService service.RestaurantService) *RestaurantController {
	return &RestaurantController{
		restaurantService: restaurantService,
	}
}

// ProfileResponse is the profile summary returned to the owner.
// Documents are intentionally not included; they are fetched where needed.
type ProfileResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	OpenTime    string   `json:"open_time"`
	CloseTime   string   `json:"close_time"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	IsOpen      bool     `json:"is_open"`
	Rating      float64  `json:"rating"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
}

type DocumentResponse struct {
	ID           uint   `json:"id"`
	FileName     string `json:"file_name"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type"`
	FilePath     string `json:"file_path"`
}

func toProfileResponse(p *model.RestaurantProfile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		Phone:       p.Phone,
		OpenTime:    p.OpenTime,
		CloseTime:   p.CloseTime,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		IsOpen:      p.IsOpen,
		Rating:      p.Rating,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func toDocumentResponses(docs []model.RestaurantDocument) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentResponse{
			ID:           d.ID,
			FileName:     d.FileName,
			OriginalName: d.OriginalName,
			Size:         d.Size,
			MimeType:     d.MimeType,
			FilePath:     d.FilePath,
		})
	}
	return out
}

type profileJSONRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	OpenTime    string   `json:"openTime"`
	CloseTime   string   `json:"closeTime"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// parseProfileForm accepts either a multipart form (with files) or a JSON body
func parseProfileForm(c *gin.Context) (service.ProfileInput, []*multipart.FileHeader, error) {
	if c.ContentType() == "application/json" {
		var req profileJSONRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return service.ProfileInput{}, nil, err
		}
		return service.ProfileInput{
			Name:        req.Name,
			Description: req.Description,
			Address:     req.Address,
			Phone:       req.Phone,
			OpenTime:    req.OpenTime,
			CloseTime:   req.CloseTime,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
		}, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return service.ProfileInput{}, nil, err
	}

	in := service.ProfileInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Address:     c.PostForm("address"),
		Phone:       c.PostForm("phone"),
		OpenTime:    c.PostForm("openTime"),
		CloseTime:   c.PostForm("closeTime"),
	}

	if lat := c.PostForm("latitude"); lat != "" {
		if v, err := strconv.ParseFloat(lat, 64); err == nil {
			in.Latitude = &v
		}
	}
	if lng := c.PostForm("longitude"); lng != "" {
		if v, err := strconv.ParseFloat(lng, 64); err == nil {
			in.Longitude = &v
		}
	}

	return in, form.File["files"], nil
}

// respondProfileError maps service errors to user-facing Thai messages
func respondProfileError(c *gin.Context, err error) {
	var capErr *service.DocumentCapError
	switch {
	case errors.Is(err, service.ErrNameRequired):
		apperrors.BadRequest(c, apperrors.ValidationRequired, "กรุณากรอกชื่อร้าน")
	case errors.Is(err, service.ErrAddressRequired):
		apperrors.BadRequest(c, apperrors.ValidationRequired, "กรุณากรอกที่อยู่ร้าน")
	case errors.Is(err, service.ErrPhoneRequired):
		apperrors.BadRequest(c, apperrors.ValidationRequired, "กรุณากรอกเบอร์โทรศัพท์ร้าน")
	case errors.Is(err, service.ErrAlreadyRegistered):
		apperrors.BadRequest(c, apperrors.ProfileAlreadyRegistered, "บัญชีนี้มีร้านอาหารอยู่แล้ว")
	case errors.Is(err, service.ErrProfileNotFound):
		apperrors.NotFound(c, apperrors.ProfileNotFound, "ยังไม่ได้สมัครร้านอาหาร กรุณาสมัครก่อน")
	case errors.As(err, &capErr):
		apperrors.BadRequest(c, apperrors.DocumentCapExceeded,
			"อัปโหลดเอกสารได้อีก "+strconv.Itoa(capErr.Remaining)+" ไฟล์เท่านั้น")
	default:
		apperrors.InternalError(c, "")
	}
}

// GetMyProfile returns the authenticated account's restaurant profile
// GET /api/v1/restaurant/profile
func (ctrl *RestaurantController) GetMyProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	profile, err := ctrl.restaurantService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			log.Debug("No restaurant profile for account", map[string]interface{}{
				"user_id": userID,
			})
			apperrors.NotFound(c, apperrors.ProfileNotFound, "ยังไม่ได้สมัครร้านอาหาร กรุณาสมัครก่อน")
			return
		}
		log.Error("Failed to fetch restaurant profile", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": toProfileResponse(profile),
	})
}

// Register creates a restaurant profile from a multipart submission
// POST /api/v1/restaurant/profile
func (ctrl *RestaurantController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	in, files, err := parseProfileForm(c)
	if err != nil {
		log.Warn("Invalid multipart registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		return
	}

	profile, docs, err := ctrl.restaurantService.Register(userID, in, files)
	if err != nil {
		log.Warn("Restaurant registration failed", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		respondProfileError(c, err)
		return
	}

	log.Info("Restaurant registered", map[string]interface{}{
		"user_id":    userID,
		"profile_id": profile.ID,
		"documents":  len(docs),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "สมัครร้านอาหารสำเร็จ กรุณารอการตรวจสอบจากผู้ดูแลระบบ",
		"profile": toProfileResponse(profile),
		"files":   toDocumentResponses(docs),
	})
}

// Update resubmits the profile, bumping it back to PENDING review
// PUT /api/v1/restaurant/profile
func (ctrl *RestaurantController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	in, files, err := parseProfileForm(c)
	if err != nil {
		log.Warn("Invalid multipart update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		return
	}

	profile, docs, err := ctrl.restaurantService.Resubmit(userID, in, files)
	if err != nil {
		log.Warn("Restaurant resubmission failed", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		respondProfileError(c, err)
		return
	}

	log.Info("Restaurant profile resubmitted", map[string]interface{}{
		"user_id":    userID,
		"profile_id": profile.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "แก้ไขข้อมูลร้านสำเร็จ ร้านของคุณอยู่ระหว่างรอการตรวจสอบ",
		"profile": toProfileResponse(profile),
		"files":   toDocumentResponses(docs),
	})
}
