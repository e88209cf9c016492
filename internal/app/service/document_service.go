package service

import (
	"fmt"
	"mime/multipart"

	"github.com/corgigo/corgigo-backend/internal/app/model"
	"github.com/corgigo/corgigo-backend/internal/app/repository"
	"github.com/corgigo/corgigo-backend/internal/storage"
	"github.com/corgigo/corgigo-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentCapError is returned when a batch would push a profile past the
// document cap. Remaining is how many more files the profile may still add.
type DocumentCapError struct {
	Remaining int
}

func (e *DocumentCapError) Error() string {
	return fmt.Sprintf("document cap exceeded, %d more file(s) may be added", e.Remaining)
}

type DocumentService interface {
	// StoreBatch validates and persists a batch of uploaded files for a
	// profile. The whole batch is rejected when it would exceed the cap;
	// individual files failing size or type checks are skipped, not fatal.
	StoreBatch(profileID uint, files []*multipart.FileHeader) ([]model.RestaurantDocument, error)
	ListByProfile(profileID uint) ([]model.RestaurantDocument, error)
	CountByProfile(profileID uint) (int64, error)
}

type documentService struct {
	db      *gorm.DB
	docRepo repository.RestaurantDocumentRepository
	storage *storage.LocalStorage
}

func NewDocumentService(
	db *gorm.DB,
	docRepo repository.RestaurantDocumentRepository,
	store *storage.LocalStorage,
) DocumentService {
	return &documentService{
		db:      db,
		docRepo: docRepo,
		storage: store,
	}
}

func (s *documentService) StoreBatch(profileID uint, files []*multipart.FileHeader) ([]model.RestaurantDocument, error) {
	if len(files) == 0 {
		return []model.RestaurantDocument{}, nil
	}

	stored := []model.RestaurantDocument{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// The count and the inserts must observe a stable document count for
		// this profile. Postgres serializes concurrent batches via a row lock
		// on the profile; sqlite (tests) has no row locks and runs serially.
		query := tx.Model(&model.RestaurantProfile{})
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var profile model.RestaurantProfile
		if err := query.First(&profile, profileID).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&model.RestaurantDocument{}).
			Where("profile_id = ?", profileID).
			Count(&existing).Error; err != nil {
			return err
		}

		if int(existing)+len(files) > model.MaxDocumentsPerProfile {
			remaining := model.MaxDocumentsPerProfile - int(existing)
			if remaining < 0 {
				remaining = 0
			}
			logger.Warn("Document batch rejected, cap exceeded", map[string]interface{}{
				"profile_id": profileID,
				"existing":   existing,
				"incoming":   len(files),
				"remaining":  remaining,
			})
			return &DocumentCapError{Remaining: remaining}
		}

		for _, file := range files {
			if err := s.storage.ValidateFileSize(file.Size); err != nil {
				logger.Warn("Skipping oversized document", map[string]interface{}{
					"profile_id": profileID,
					"file":       file.Filename,
					"size":       file.Size,
				})
				continue
			}

			mimeType := file.Header.Get("Content-Type")
			if err := s.storage.ValidateFileType(mimeType, file.Filename); err != nil {
				logger.Warn("Skipping document with disallowed type", map[string]interface{}{
					"profile_id": profileID,
					"file":       file.Filename,
					"mime_type":  mimeType,
				})
				continue
			}

			src, err := file.Open()
			if err != nil {
				return fmt.Errorf("failed to open uploaded file %s: %w", file.Filename, err)
			}

			name := s.storage.GenerateFilename(file.Filename)
			publicPath, err := s.storage.Save(profileID, name, src)
			src.Close()
			if err != nil {
				return fmt.Errorf("failed to store file %s: %w", file.Filename, err)
			}

			doc := model.RestaurantDocument{
				ProfileID:    profileID,
				FileName:     name,
				OriginalName: file.Filename,
				Size:         file.Size,
				MimeType:     mimeType,
				FilePath:     publicPath,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}

			stored = append(stored, doc)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Document batch stored", map[string]interface{}{
		"profile_id": profileID,
		"submitted":  len(files),
		"stored":     len(stored),
	})

	return stored, nil
}

func (s *documentService) ListByProfile(profileID uint) ([]model.RestaurantDocument, error) {
	return s.docRepo.FindByProfileID(profileID)
}

func (s *documentService) CountByProfile(profileID uint) (int64, error) {
	return s.docRepo.CountByProfileID(profileID)
}
