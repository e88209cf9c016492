package service

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/corgigo/corgigo-backend/internal/app/model"
	"github.com/corgigo/corgigo-backend/internal/app/repository"
	"github.com/corgigo/corgigo-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrNameRequired      = errors.New("restaurant name is required")
	ErrAddressRequired   = errors.New("restaurant address is required")
	ErrPhoneRequired     = errors.New("restaurant phone is required")
	ErrAlreadyRegistered = errors.New("account already has a restaurant profile")
	ErrProfileNotFound   = errors.New("restaurant profile not found")
)

// ProfileInput carries the descriptive fields of a registration or
// resubmission, already parsed from the request
type ProfileInput struct {
	Name        string
	Description string
	Address     string
	Phone       string
	OpenTime    string
	CloseTime   string
	Latitude    *float64
	Longitude   *float64
}

type RestaurantService interface {
	Register(userID uint, in ProfileInput, files []*multipart.FileHeader) (*model.RestaurantProfile, []model.RestaurantDocument, error)
	GetByUserID(userID uint) (*model.RestaurantProfile, error)
	// Resubmit updates the profile fields and unconditionally resets the
	// profile to PENDING, clearing prior decision metadata. New files are
	// additive to previously stored documents.
	Resubmit(userID uint, in ProfileInput, files []*multipart.FileHeader) (*model.RestaurantProfile, []model.RestaurantDocument, error)
}

type restaurantService struct {
	profileRepo repository.RestaurantProfileRepository
	userRepo    repository.UserRepository
	documents   DocumentService
}

func NewRestaurantService(
	profileRepo repository.RestaurantProfileRepository,
	userRepo repository.UserRepository,
	documents DocumentService,
) RestaurantService {
	return &restaurantService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		documents:   documents,
	}
}

func validateProfileInput(in *ProfileInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" {
		return ErrNameRequired
	}
	if in.Address == "" {
		return ErrAddressRequired
	}
	if in.Phone == "" {
		return ErrPhoneRequired
	}
	return nil
}

func (s *restaurantService) Register(userID uint, in ProfileInput, files []*multipart.FileHeader) (*model.RestaurantProfile, []model.RestaurantDocument, error) {
	logger.Info("Registering restaurant profile", map[string]interface{}{
		"user_id": userID,
		"name":    in.Name,
		"files":   len(files),
	})

	if err := validateProfileInput(&in); err != nil {
		return nil, nil, err
	}

	// cap is checked up front so a too-large batch never creates a profile
	if len(files) > model.MaxDocumentsPerProfile {
		return nil, nil, &DocumentCapError{Remaining: model.MaxDocumentsPerProfile}
	}

	hasRole, err := s.userRepo.HasRole(userID, model.RoleRestaurant)
	if err != nil {
		logger.Error("Failed to check restaurant role", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, nil, err
	}
	if hasRole {
		logger.Warn("Registration rejected: account already has restaurant role", map[string]interface{}{
			"user_id": userID,
		})
		return nil, nil, ErrAlreadyRegistered
	}

	profile := &model.RestaurantProfile{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Phone:       in.Phone,
		OpenTime:    in.OpenTime,
		CloseTime:   in.CloseTime,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		IsOpen:      false,
		Rating:      model.DefaultRating,
		Status:      model.StatusPending,
	}

	if err := s.profileRepo.CreateWithRole(profile); err != nil {
		return nil, nil, err
	}

	// Files are processed after the profile transaction commits. A failure
	// here leaves a valid documentless profile (files are optional).
	docs, err := s.documents.StoreBatch(profile.ID, files)
	if err != nil {
		logger.Error("Failed to store documents after registration", err, map[string]interface{}{
			"profile_id": profile.ID,
		})
		return profile, nil, err
	}

	logger.Info("Restaurant profile registered", map[string]interface{}{
		"profile_id": profile.ID,
		"user_id":    userID,
		"documents":  len(docs),
	})

	return profile, docs, nil
}

func (s *restaurantService) GetByUserID(userID uint) (*model.RestaurantProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		logger.Error("Failed to fetch restaurant profile", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return profile, nil
}

func (s *restaurantService) Resubmit(userID uint, in ProfileInput, files []*multipart.FileHeader) (*model.RestaurantProfile, []model.RestaurantDocument, error) {
	logger.Info("Resubmitting restaurant profile", map[string]interface{}{
		"user_id": userID,
		"files":   len(files),
	})

	if err := validateProfileInput(&in); err != nil {
		return nil, nil, err
	}

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, err
	}

	// cumulative cap is validated before the profile row is touched
	existing, err := s.documents.CountByProfile(profile.ID)
	if err != nil {
		return nil, nil, err
	}
	if int(existing)+len(files) > model.MaxDocumentsPerProfile {
		remaining := model.MaxDocumentsPerProfile - int(existing)
		if remaining < 0 {
			remaining = 0
		}
		return nil, nil, &DocumentCapError{Remaining: remaining}
	}

	previousStatus := profile.Status

	profile.Name = in.Name
	profile.Description = in.Description
	profile.Address = in.Address
	profile.Phone = in.Phone
	profile.OpenTime = in.OpenTime
	profile.CloseTime = in.CloseTime
	profile.Latitude = in.Latitude
	profile.Longitude = in.Longitude

	if err := s.profileRepo.ResetToPending(profile); err != nil {
		return nil, nil, err
	}

	profile.Status = model.StatusPending
	profile.IsOpen = false
	profile.ApprovedAt = nil
	profile.ApprovedBy = nil
	profile.RejectedAt = nil
	profile.RejectedBy = nil
	profile.RejectReason = nil

	if _, err := s.documents.StoreBatch(profile.ID, files); err != nil {
		return nil, nil, err
	}

	docs, err := s.documents.ListByProfile(profile.ID)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Restaurant profile resubmitted", map[string]interface{}{
		"profile_id":      profile.ID,
		"previous_status": previousStatus,
		"documents":       len(docs),
	})

	return profile, docs, nil
}
