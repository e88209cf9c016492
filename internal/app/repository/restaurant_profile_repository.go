package repository

import (
	"time"

	"github.com/corgigo/corgigo-backend/internal/app/model"
	"github.com/corgigo/corgigo-backend/pkg/logger"
	"gorm.io/gorm"
)

type RestaurantProfileRepository interface {
	// CreateWithRole creates the profile, adds the RESTAURANT role junction
	// row and promotes the account's primary role tag, all in one transaction.
	CreateWithRole(profile *model.RestaurantProfile) error
	FindByID(id uint) (*model.RestaurantProfile, error)
	FindByUserID(userID uint) (*model.RestaurantProfile, error)
	FindPending() ([]model.RestaurantProfile, error)
	FindAll() ([]model.RestaurantProfile, error)
	// ResetToPending updates descriptive fields and bumps the profile back to
	// PENDING, clearing all approval/rejection metadata.
	ResetToPending(profile *model.RestaurantProfile) error
	// Approve transitions a PENDING profile to APPROVED. Returns
	// gorm.ErrRecordNotFound when the profile is not in PENDING state.
	Approve(id, adminID uint, now time.Time) error
	// Reject transitions a PENDING profile to REJECTED with a reason.
	Reject(id, adminID uint, reason string, now time.Time) error
	CountPendingOlderThan(cutoff time.Time) (int64, error)
}

type restaurantProfileRepository struct {
	db *gorm.DB
}

func NewRestaurantProfileRepository(db *gorm.DB) RestaurantProfileRepository {
	return &restaurantProfileRepository{db: db}
}

func (r *restaurantProfileRepository) CreateWithRole(profile *model.RestaurantProfile) error {
	logger.Debug("Creating restaurant profile in database", map[string]interface{}{
		"name":    profile.Name,
		"user_id": profile.UserID,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		role := model.UserRole{UserID: profile.UserID, Role: model.RoleRestaurant}
		if err := tx.Create(&role).Error; err != nil {
			return err
		}

		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		return tx.Model(&model.User{}).
			Where("id = ?", profile.UserID).
			Update("role", model.RoleRestaurant).Error
	})
	if err != nil {
		logger.Error("Failed to create restaurant profile in database", err, map[string]interface{}{
			"name":    profile.Name,
			"user_id": profile.UserID,
		})
		return err
	}

	logger.Debug("Restaurant profile created in database", map[string]interface{}{
		"profile_id": profile.ID,
		"user_id":    profile.UserID,
	})
	return nil
}

func (r *restaurantProfileRepository) FindByID(id uint) (*model.RestaurantProfile, error) {
	var profile model.RestaurantProfile
	if err := r.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *restaurantProfileRepository) FindByUserID(userID uint) (*model.RestaurantProfile, error) {
	var profile model.RestaurantProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *restaurantProfileRepository) FindPending() ([]model.RestaurantProfile, error) {
	var profiles []model.RestaurantProfile
	err := r.db.
		Preload("User").
		Preload("Documents").
		Where("status = ?", model.StatusPending).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *restaurantProfileRepository) FindAll() ([]model.RestaurantProfile, error) {
	var profiles []model.RestaurantProfile
	err := r.db.
		Preload("User").
		Preload("Documents").
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *restaurantProfileRepository) ResetToPending(profile *model.RestaurantProfile) error {
	logger.Debug("Resetting restaurant profile to pending", map[string]interface{}{
		"profile_id": profile.ID,
		"status":     profile.Status,
	})

	updates := map[string]interface{}{
		"name":          profile.Name,
		"description":   profile.Description,
		"address":       profile.Address,
		"phone":         profile.Phone,
		"open_time":     profile.OpenTime,
		"close_time":    profile.CloseTime,
		"latitude":      profile.Latitude,
		"longitude":     profile.Longitude,
		"status":        model.StatusPending,
		"is_open":       false,
		"approved_at":   nil,
		"approved_by":   nil,
		"rejected_at":   nil,
		"rejected_by":   nil,
		"reject_reason": nil,
	}

	err := r.db.Model(&model.RestaurantProfile{}).
		Where("id = ?", profile.ID).
		Updates(updates).Error
	if err != nil {
		logger.Error("Failed to reset restaurant profile", err, map[string]interface{}{
			"profile_id": profile.ID,
		})
	}
	return err
}

func (r *restaurantProfileRepository) Approve(id, adminID uint, now time.Time) error {
	result := r.db.Model(&model.RestaurantProfile{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Updates(map[string]interface{}{
			"status":      model.StatusApproved,
			"approved_at": now,
			"approved_by": adminID,
			"is_open":     true,
		})
	if result.Error != nil {
		logger.Error("Failed to approve restaurant profile", result.Error, map[string]interface{}{
			"profile_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *restaurantProfileRepository) Reject(id, adminID uint, reason string, now time.Time) error {
	result := r.db.Model(&model.RestaurantProfile{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Updates(map[string]interface{}{
			"status":        model.StatusRejected,
			"rejected_at":   now,
			"rejected_by":   adminID,
			"reject_reason": reason,
		})
	if result.Error != nil {
		logger.Error("Failed to reject restaurant profile", result.Error, map[string]interface{}{
			"profile_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *restaurantProfileRepository) CountPendingOlderThan(cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.RestaurantProfile{}).
		Where("status = ? AND created_at < ?", model.StatusPending, cutoff).
		Count(&count).Error
	return count, err
}
