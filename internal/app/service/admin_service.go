package service

import (
	"errors"
	"strings"
	"time"

	"github.com/corgigo/corgigo-backend/internal/app/model"
	"github.com/corgigo/corgigo-backend/internal/app/repository"
	"github.com/corgigo/corgigo-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProfileNotPending = errors.New("profile is not pending review")
	ErrReasonRequired    = errors.New("rejection reason is required")
)

type AdminService interface {
	// ListPending returns all PENDING profiles with owner and documents,
	// oldest submission first.
	ListPending() ([]model.RestaurantProfile, error)
	Approve(profileID, adminID uint) (*model.RestaurantProfile, error)
	Reject(profileID, adminID uint, reason string) (*model.RestaurantProfile, error)
	CountStalePending(olderThan time.Duration) (int64, error)
}

type adminService struct {
	profileRepo repository.RestaurantProfileRepository
	now         func() time.Time
}

func NewAdminService(profileRepo repository.RestaurantProfileRepository) AdminService {
	return &adminService{
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

func (s *adminService) ListPending() ([]model.RestaurantProfile, error) {
	profiles, err := s.profileRepo.FindPending()
	if err != nil {
		logger.Error("Failed to fetch pending profiles", err, nil)
		return nil, err
	}

	logger.Info("Pending profiles fetched", map[string]interface{}{
		"count": len(profiles),
	})
	return profiles, nil
}

func (s *adminService) Approve(profileID, adminID uint) (*model.RestaurantProfile, error) {
	logger.Info("Approving restaurant profile", map[string]interface{}{
		"profile_id": profileID,
		"admin_id":   adminID,
	})

	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if profile.Status != model.StatusPending {
		logger.Warn("Approval rejected: profile not pending", map[string]interface{}{
			"profile_id": profileID,
			"status":     profile.Status,
		})
		return nil, ErrProfileNotPending
	}

	if err := s.profileRepo.Approve(profileID, adminID, s.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// lost the race against a concurrent decision
			return nil, ErrProfileNotPending
		}
		return nil, err
	}

	updated, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		return nil, err
	}

	logger.Info("Restaurant profile approved", map[string]interface{}{
		"profile_id": profileID,
		"admin_id":   adminID,
	})
	return updated, nil
}

func (s *adminService) Reject(profileID, adminID uint, reason string) (*model.RestaurantProfile, error) {
	// reason is validated before any lookup or mutation
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	logger.Info("Rejecting restaurant profile", map[string]interface{}{
		"profile_id": profileID,
		"admin_id":   adminID,
	})

	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if profile.Status != model.StatusPending {
		logger.Warn("Rejection refused: profile not pending", map[string]interface{}{
			"profile_id": profileID,
			"status":     profile.Status,
		})
		return nil, ErrProfileNotPending
	}

	if err := s.profileRepo.Reject(profileID, adminID, reason, s.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotPending
		}
		return nil, err
	}

	updated, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		return nil, err
	}

	logger.Info("Restaurant profile rejected", map[string]interface{}{
		"profile_id": profileID,
		"admin_id":   adminID,
	})
	return updated, nil
}

func (s *adminService) CountStalePending(olderThan time.Duration) (int64, error) {
	cutoff := s.now().Add(-olderThan)
	return s.profileRepo.CountPendingOlderThan(cutoff)
}
