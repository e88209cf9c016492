package repository

import (
	"github.com/corgigo/corgigo-backend/internal/app/model"
	"gorm.io/gorm"
)

type RestaurantDocumentRepository interface {
	Create(doc *model.RestaurantDocument) error
	CountByProfileID(profileID uint) (int64, error)
	FindByProfileID(profileID uint) ([]model.RestaurantDocument, error)
}

type restaurantDocumentRepository struct {
	db *gorm.DB
}

func NewRestaurantDocumentRepository(db *gorm.DB) RestaurantDocumentRepository {
	return &restaurantDocumentRepository{db: db}
}

func (r *restaurantDocumentRepository) Create(doc *model.RestaurantDocument) error {
	return r.db.Create(doc).Error
}

func (r *restaurantDocumentRepository) CountByProfileID(profileID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.RestaurantDocument{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error
	return count, err
}

func (r *restaurantDocumentRepository) FindByProfileID(profileID uint) ([]model.RestaurantDocument, error) {
	var docs []model.RestaurantDocument
	err := r.db.
		Where("profile_id = ?", profileID).
		Order("created_at ASC").
		Find(&docs).Error
	return docs, err
}
