package db

import (
	"errors"
	"os"

	"github.com/corgigo/corgigo-backend/internal/app/model"
	"github.com/corgigo/corgigo-backend/pkg/logger"
	"github.com/corgigo/corgigo-backend/pkg/util"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.UserRole{},
		&model.RestaurantProfile{},
		&model.RestaurantDocument{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// SeedAdmin creates the initial admin account when it does not exist yet.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Info("Admin seed skipped, ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var existing model.User
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		logger.Info("Admin account already exists, skipping seed", map[string]interface{}{
			"email": email,
		})
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "CorgiGo Admin",
		Role:         model.RoleAdmin,
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		role := model.UserRole{UserID: admin.ID, Role: model.RoleAdmin}
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		logger.Info("Admin account seeded", map[string]interface{}{
			"user_id": admin.ID,
			"email":   email,
		})
		return nil
	})
}
