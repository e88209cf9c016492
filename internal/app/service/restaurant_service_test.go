package service

import (
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/corgigo/corgigo-backend/internal/app/model"
	"github.com/corgigo/corgigo-backend/internal/app/repository"
	"github.com/corgigo/corgigo-backend/internal/db"
	"github.com/corgigo/corgigo-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRestaurantServiceTest(t *testing.T) (RestaurantService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	profileRepo := repository.NewRestaurantProfileRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	docRepo := repository.NewRestaurantDocumentRepository(testDB)
	store := storage.NewLocalStorage(t.TempDir(), "/uploads")
	docService := NewDocumentService(testDB, docRepo, store)

	return NewRestaurantService(profileRepo, userRepo, docService), testDB
}

func createCustomer(t *testing.T, testDB *gorm.DB) *model.User {
	user := &model.User{
		Email:        fmt.Sprintf("customer-%d@example.com", time.Now().UnixNano()),
		PasswordHash: "hashed-password",
		Name:         "Somchai",
		Phone:        "0812345678",
		Role:         model.RoleCustomer,
	}
	require.NoError(t, testDB.Create(user).Error)
	require.NoError(t, testDB.Create(&model.UserRole{UserID: user.ID, Role: model.RoleCustomer}).Error)
	return user
}

func validInput() ProfileInput {
	return ProfileInput{
		Name:      "ร้านข้าวมันไก่ประตูน้ำ",
		Address:   "55 ถนนเพชรบุรี กรุงเทพฯ",
		Phone:     "021234567",
		OpenTime:  "09:00",
		CloseTime: "21:00",
	}
}

func TestRestaurantService_Register_Validation(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)

	tests := []struct {
		name    string
		mutate  func(in *ProfileInput)
		wantErr error
	}{
		{
			name:    "Missing name",
			mutate:  func(in *ProfileInput) { in.Name = "" },
			wantErr: ErrNameRequired,
		},
		{
			name:    "Whitespace name",
			mutate:  func(in *ProfileInput) { in.Name = "   " },
			wantErr: ErrNameRequired,
		},
		{
			name:    "Missing address",
			mutate:  func(in *ProfileInput) { in.Address = "" },
			wantErr: ErrAddressRequired,
		},
		{
			name:    "Missing phone",
			mutate:  func(in *ProfileInput) { in.Phone = "" },
			wantErr: ErrPhoneRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			profile, docs, err := restaurantService.Register(user.ID, in, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, profile)
			assert.Nil(t, docs)
		})
	}

	// rejected submissions never touch the database
	var profileCount int64
	testDB.Model(&model.RestaurantProfile{}).Count(&profileCount)
	assert.Equal(t, int64(0), profileCount)

	var roleCount int64
	testDB.Model(&model.UserRole{}).
		Where("user_id = ? AND role = ?", user.ID, model.RoleRestaurant).
		Count(&roleCount)
	assert.Equal(t, int64(0), roleCount)
}

func TestRestaurantService_Register_Success(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)

	files := buildFileHeaders(t, []uploadPart{
		{filename: "license.pdf", mimeType: "application/pdf", content: "pdf"},
	})

	profile, docs, err := restaurantService.Register(user.ID, validInput(), files)
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, model.StatusPending, profile.Status)
	assert.False(t, profile.IsOpen)
	assert.Equal(t, model.DefaultRating, profile.Rating)
	assert.Equal(t, user.ID, profile.UserID)
	require.Len(t, docs, 1)
	assert.Equal(t, "license.pdf", docs[0].OriginalName)

	var updated model.User
	require.NoError(t, testDB.First(&updated, user.ID).Error)
	assert.Equal(t, model.RoleRestaurant, updated.Role)
}

func TestRestaurantService_Register_AlreadyRegistered(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)

	_, _, err := restaurantService.Register(user.ID, validInput(), nil)
	require.NoError(t, err)

	profile, docs, err := restaurantService.Register(user.ID, validInput(), nil)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Nil(t, profile)
	assert.Nil(t, docs)

	var count int64
	testDB.Model(&model.RestaurantProfile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRestaurantService_Register_TooManyFiles(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)

	files := make([]*multipart.FileHeader, model.MaxDocumentsPerProfile+1)
	for i := range files {
		files[i] = &multipart.FileHeader{Filename: fmt.Sprintf("doc-%d.pdf", i)}
	}

	profile, _, err := restaurantService.Register(user.ID, validInput(), files)
	assert.Nil(t, profile)

	var capErr *DocumentCapError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, model.MaxDocumentsPerProfile, capErr.Remaining)

	// no profile is created when the batch is over the cap
	var count int64
	testDB.Model(&model.RestaurantProfile{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRestaurantService_GetByUserID(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)

	_, err := restaurantService.GetByUserID(user.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, _, err = restaurantService.Register(user.ID, validInput(), nil)
	require.NoError(t, err)

	profile, err := restaurantService.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ร้านข้าวมันไก่ประตูน้ำ", profile.Name)
	assert.Equal(t, model.StatusPending, profile.Status)
}

func TestRestaurantService_Resubmit_AfterRejection(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)
	admin := createCustomer(t, testDB)

	registered, _, err := restaurantService.Register(user.ID, validInput(), nil)
	require.NoError(t, err)

	profileRepo := repository.NewRestaurantProfileRepository(testDB)
	require.NoError(t, profileRepo.Reject(registered.ID, admin.ID, "เอกสารไม่ครบถ้วน", time.Now()))

	in := validInput()
	in.Name = "ร้านข้าวมันไก่ประตูน้ำ 2"
	files := buildFileHeaders(t, []uploadPart{
		{filename: "license-v2.pdf", mimeType: "application/pdf", content: "pdf"},
	})

	profile, docs, err := restaurantService.Resubmit(user.ID, in, files)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, profile.Status)
	assert.Equal(t, "ร้านข้าวมันไก่ประตูน้ำ 2", profile.Name)
	assert.Nil(t, profile.RejectedAt)
	assert.Nil(t, profile.RejectedBy)
	assert.Nil(t, profile.RejectReason)
	require.Len(t, docs, 1)

	var stored model.RestaurantProfile
	require.NoError(t, testDB.First(&stored, registered.ID).Error)
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.Nil(t, stored.RejectReason)
}

func TestRestaurantService_Resubmit_ApprovedResetsToPending(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)
	admin := createCustomer(t, testDB)

	registered, _, err := restaurantService.Register(user.ID, validInput(), nil)
	require.NoError(t, err)

	profileRepo := repository.NewRestaurantProfileRepository(testDB)
	require.NoError(t, profileRepo.Approve(registered.ID, admin.ID, time.Now()))

	// editing an approved profile sends it back through review and closes the
	// restaurant until a new decision is made
	profile, _, err := restaurantService.Resubmit(user.ID, validInput(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, profile.Status)
	assert.False(t, profile.IsOpen)
	assert.Nil(t, profile.ApprovedAt)
	assert.Nil(t, profile.ApprovedBy)

	var stored model.RestaurantProfile
	require.NoError(t, testDB.First(&stored, registered.ID).Error)
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.False(t, stored.IsOpen)
	assert.Nil(t, stored.ApprovedAt)
	assert.Nil(t, stored.ApprovedBy)
}

func TestRestaurantService_Resubmit_KeepsExistingDocuments(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)

	initial := buildFileHeaders(t, []uploadPart{
		{filename: "license.pdf", mimeType: "application/pdf", content: "v1"},
	})
	_, _, err := restaurantService.Register(user.ID, validInput(), initial)
	require.NoError(t, err)

	extra := buildFileHeaders(t, []uploadPart{
		{filename: "menu.jpg", mimeType: "image/jpeg", content: "jpg"},
	})
	_, docs, err := restaurantService.Resubmit(user.ID, validInput(), extra)
	require.NoError(t, err)

	// resubmission adds files, it never replaces the earlier ones
	require.Len(t, docs, 2)
	assert.Equal(t, "license.pdf", docs[0].OriginalName)
	assert.Equal(t, "menu.jpg", docs[1].OriginalName)
}

func TestRestaurantService_Resubmit_Validation(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)
	admin := createCustomer(t, testDB)

	registered, _, err := restaurantService.Register(user.ID, validInput(), nil)
	require.NoError(t, err)

	profileRepo := repository.NewRestaurantProfileRepository(testDB)
	require.NoError(t, profileRepo.Approve(registered.ID, admin.ID, time.Now()))

	in := validInput()
	in.Name = ""
	_, _, err = restaurantService.Resubmit(user.ID, in, nil)
	assert.ErrorIs(t, err, ErrNameRequired)

	// a rejected resubmission leaves the approved profile untouched
	var stored model.RestaurantProfile
	require.NoError(t, testDB.First(&stored, registered.ID).Error)
	assert.Equal(t, model.StatusApproved, stored.Status)
	assert.True(t, stored.IsOpen)
}

func TestRestaurantService_Resubmit_CapRejectedLeavesProfileUntouched(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)
	admin := createCustomer(t, testDB)

	registered, _, err := restaurantService.Register(user.ID, validInput(), nil)
	require.NoError(t, err)

	profileRepo := repository.NewRestaurantProfileRepository(testDB)
	require.NoError(t, profileRepo.Approve(registered.ID, admin.ID, time.Now()))

	for i := 0; i < 8; i++ {
		doc := model.RestaurantDocument{
			ProfileID:    registered.ID,
			FileName:     fmt.Sprintf("existing-%d.pdf", i),
			OriginalName: fmt.Sprintf("existing-%d.pdf", i),
			Size:         100,
			MimeType:     "application/pdf",
			FilePath:     fmt.Sprintf("/uploads/restaurants/%d/existing-%d.pdf", registered.ID, i),
		}
		require.NoError(t, testDB.Create(&doc).Error)
	}

	files := buildFileHeaders(t, []uploadPart{
		{filename: "a.pdf", mimeType: "application/pdf", content: "a"},
		{filename: "b.pdf", mimeType: "application/pdf", content: "b"},
		{filename: "c.pdf", mimeType: "application/pdf", content: "c"},
	})

	profile, docs, err := restaurantService.Resubmit(user.ID, validInput(), files)
	assert.Nil(t, profile)
	assert.Nil(t, docs)

	var capErr *DocumentCapError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Remaining)

	// the rejected batch must not touch the approved profile
	var stored model.RestaurantProfile
	require.NoError(t, testDB.First(&stored, registered.ID).Error)
	assert.Equal(t, model.StatusApproved, stored.Status)
	assert.True(t, stored.IsOpen)
	assert.NotNil(t, stored.ApprovedAt)
	assert.NotNil(t, stored.ApprovedBy)

	var docCount int64
	testDB.Model(&model.RestaurantDocument{}).Where("profile_id = ?", registered.ID).Count(&docCount)
	assert.Equal(t, int64(8), docCount)
}

func TestRestaurantService_Resubmit_NotFound(t *testing.T) {
	restaurantService, testDB := setupRestaurantServiceTest(t)
	user := createCustomer(t, testDB)

	_, _, err := restaurantService.Resubmit(user.ID, validInput(), nil)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
